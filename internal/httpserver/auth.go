package httpserver

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"

	jwthelp "github.com/mgalihpp/inventory-dashboard/internal/jwt"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
	"github.com/mgalihpp/inventory-dashboard/internal/tokens"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

//go:embed static/login.html
var loginPage string

type AuthHTTP struct {
	Svc          *service.AuthService
	CookieSecure bool
}

func (h *AuthHTTP) LoginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, loginPage)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "login_failed", err)
	}

	c.SetCookie(jwthelp.CreateCookie(jwthelp.SessionCookie, res.Token, "/", tokens.SessionTTL, h.CookieSecure))
	l.Info("login_successful", "user_id", res.User.ID)

	return c.JSON(http.StatusOK, success(nil))
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "register_error", err)
	}

	l.Info("register_successful", "user_id", user.ID)
	return c.JSON(http.StatusCreated, success(nil))
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth_logout")

	c.SetCookie(jwthelp.DeleteCookie(jwthelp.SessionCookie, "/", h.CookieSecure))

	l.Info("successful_logout")
	return c.JSON(http.StatusOK, success(nil))
}
