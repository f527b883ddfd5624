package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	jwthelp "github.com/mgalihpp/inventory-dashboard/internal/jwt"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/tokens"
)

const LoginPath = "/auth/login"

type Session struct {
	JWTSecret    []byte
	CookieSecure bool
}

func NewSession(secret []byte, secure bool) *Session {
	return &Session{JWTSecret: secret, CookieSecure: secure}
}

// RequireSession sends visitors without a valid session cookie to the login page.
func (m *Session) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context())

		ck, err := c.Cookie(jwthelp.SessionCookie)
		if err != nil || ck.Value == "" {
			l.Info("session_missing", "redirect", LoginPath)
			return c.Redirect(http.StatusSeeOther, LoginPath)
		}

		claims, err := tokens.SessionClaimsFromToken(ck.Value, m.JWTSecret)
		if err != nil {
			l.Warn("session_invalid", "redirect", LoginPath, "error", err)
			c.SetCookie(jwthelp.DeleteCookie(jwthelp.SessionCookie, "/", m.CookieSecure))
			return c.Redirect(http.StatusSeeOther, LoginPath)
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		return next(c)
	}
}
