package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mgalihpp/inventory-dashboard/internal/service"
)

// HTTPErrorHandler renders every error as {"error": "..."}; 5xx details never reach the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := service.MsgInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok && code < http.StatusInternalServerError {
			msg = s
		} else if code < http.StatusInternalServerError {
			msg = http.StatusText(code)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}

// fail maps a service error to an HTTP error and logs it the same way for every handler.
func fail(l *slog.Logger, event string, err error) error {
	msg := service.Message(err)
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", 400, "reason", msg)
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn(event, "status", 401, "reason", msg)
		return echo.NewHTTPError(http.StatusUnauthorized, msg)
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "reason", msg)
		return echo.NewHTTPError(http.StatusNotFound, msg)
	default:
		l.Error(event, "status", 500, "reason", "internal", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, service.MsgInternal).SetInternal(err)
	}
}
