package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillingtastes/restaurant-ordering/internal/repository"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

func TestReserveValidation(t *testing.T) {
	h := NewReservationHandler(repository.NewBookingRepo(store.NewMemory()), nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"name":"","email":"ada@example.com","date":"2026-09-12","time":"19:00","guests":2}`},
		{"missing date", `{"name":"Ada","email":"ada@example.com","date":"","time":"19:00","guests":2}`},
		{"zero guests", `{"name":"Ada","email":"ada@example.com","date":"2026-09-12","time":"19:00","guests":0}`},
		{"too many guests", `{"name":"Ada","email":"ada@example.com","date":"2026-09-12","time":"19:00","guests":11}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h.Reserve, http.MethodPost, "/v1/reservations", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestReserveAppendsBooking(t *testing.T) {
	bookings := repository.NewBookingRepo(store.NewMemory())
	h := NewReservationHandler(bookings, nil)

	rec := doJSON(t, h.Reserve, http.MethodPost, "/v1/reservations",
		`{"name":"Ada","email":"ada@example.com","date":"2026-09-12","time":"19:00","guests":4,"notes":"window table"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	stored, err := bookings.ListByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 4, stored[0].Guests)
	assert.Equal(t, "window table", stored[0].Notes)
	assert.NotZero(t, stored[0].CreatedAt)
}
