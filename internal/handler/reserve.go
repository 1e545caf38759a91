package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/queue"
	"github.com/twillingtastes/restaurant-ordering/internal/repository"
	queue_publisher "github.com/twillingtastes/restaurant-ordering/internal/service"
)

// ReservationHandler records table bookings. Reservations do not require a
// session: guests book with just a name and contact email, and the
// dashboard later matches bookings to accounts by email.
type ReservationHandler struct {
	Bookings  *repository.BookingRepo
	Publisher *queue_publisher.Publisher // nil disables event publishing
}

func NewReservationHandler(b *repository.BookingRepo, p *queue_publisher.Publisher) *ReservationHandler {
	return &ReservationHandler{Bookings: b, Publisher: p}
}

type reserveReq struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Notes  string `json:"notes"`
}

// Reserve validates the booking form and appends the booking.
func (h *ReservationHandler) Reserve(c echo.Context) error {
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "please fill all required fields"})
	}
	if req.Guests < 1 || req.Guests > 10 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be between 1 and 10"})
	}

	booking := model.Booking{
		Name:      req.Name,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: time.Now().UnixMilli(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Append(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save reservation failed"})
	}

	if h.Publisher != nil {
		ev := queue.BookingConfirmedEvent{
			Name:        booking.Name,
			Email:       booking.Email,
			Date:        booking.Date,
			Time:        booking.Time,
			Guests:      booking.Guests,
			ConfirmedAt: time.UnixMilli(booking.CreatedAt).UTC().Format(time.RFC3339),
		}
		if err := h.Publisher.PublishBookingConfirmed(ctx, ev); err != nil {
			log.Printf("reserve: publish booking event failed: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "reservation confirmed", "booking": booking})
}
