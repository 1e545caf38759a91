package middleware // reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/twillingtastes/restaurant-ordering/internal/session"
)

// RequireSession returns an Echo middleware that rejects requests while no
// one is logged in. Handlers behind it can read the session from the
// manager directly; the middleware also stores it under "session" in the
// request context for convenience.
func RequireSession(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := m.Current()
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
			}
			c.Set("session", sess)
			return next(c)
		}
	}
}
