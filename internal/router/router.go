package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/twillingtastes/restaurant-ordering/internal/handler"
	"github.com/twillingtastes/restaurant-ordering/internal/middleware"
	"github.com/twillingtastes/restaurant-ordering/internal/session"
)

// RegisterRoutes registers routes that need no dependencies: the health
// check and the public menu. Menu routes carry no auth; guests browse and
// order without an account.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/menu", handler.GetMenu)
	e.GET("/v1/menu/categories", handler.GetCategories)
}

// RegisterAuth registers signup/login/logout and the session probe.
// None of these require an existing session: logout is idempotent and the
// probe reports "no user" rather than failing.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)
	e.GET("/v1/me", a.Me)
}

// RegisterOrdering registers the cart and checkout routes. Carts work for
// guests too; checkout records the order under "guest" when no session
// exists.
func RegisterOrdering(e *echo.Echo, h *handler.CartHandler) {
	e.GET("/v1/cart", h.GetCart)
	e.POST("/v1/cart/items", h.AddItem)
	e.PATCH("/v1/cart/items/:id", h.UpdateItem)
	e.DELETE("/v1/cart", h.ClearCart)
	e.POST("/v1/checkout", h.Checkout)
}

// RegisterReservations registers the booking route.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler) {
	e.POST("/v1/reservations", h.Reserve)
}

// RegisterDashboard registers the protected history view. The session
// middleware rejects the request when no one is logged in.
func RegisterDashboard(e *echo.Echo, h *handler.DashboardHandler, m *session.Manager) {
	g := e.Group("/v1")
	g.Use(middleware.RequireSession(m))
	g.GET("/dashboard", h.Dashboard)
}
