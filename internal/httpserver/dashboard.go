package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
)

type DashboardHTTP struct {
	Svc *service.DashboardService
}

func (h *DashboardHTTP) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (h *DashboardHTTP) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard")

	sum, err := h.Svc.Summary(ctx)
	if err != nil {
		return fail(l, "dashboard_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":   echo.Map{"id": c.Get("user_id"), "email": c.Get("email")},
		"counts": sum.Counts,
		"users":  sum.Users,
	})
}
