package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/repository"
	"github.com/twillingtastes/restaurant-ordering/internal/session"
)

// DashboardHandler serves the logged-in user's order and reservation
// history. The route is guarded by the session middleware, so a session is
// always present here.
type DashboardHandler struct {
	Sessions *session.Manager
	Orders   *repository.OrderRepo
	Bookings *repository.BookingRepo
}

func NewDashboardHandler(s *session.Manager, o *repository.OrderRepo, b *repository.BookingRepo) *DashboardHandler {
	return &DashboardHandler{Sessions: s, Orders: o, Bookings: b}
}

// Dashboard returns the session user's orders and bookings, newest first.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	sess, ok := h.Sessions.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByEmail(ctx, sess.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load orders failed"})
	}
	bookings, err := h.Bookings.ListByEmail(ctx, sess.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reservations failed"})
	}
	if orders == nil {
		orders = []model.Order{}
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":     userPart{Name: sess.Name, Email: sess.Email},
		"orders":   orders,
		"bookings": bookings,
	})
}
