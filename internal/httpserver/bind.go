package httpserver

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

var jsonBinder = &echo.DefaultBinder{}

// bindBody reads JSON through echo and form posts through the request's own
// decoder so that absent patch fields stay nil.
func bindBody(c echo.Context, dst transport.FormDecoder) error {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		return jsonBinder.BindBody(c, dst)
	}

	form, err := c.FormParams()
	if err != nil {
		return err
	}
	return dst.DecodeForm(form)
}

func success(data any) echo.Map {
	if data == nil {
		return echo.Map{"success": true}
	}
	return echo.Map{"success": true, "data": data}
}
