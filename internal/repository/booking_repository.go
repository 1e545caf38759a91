package repository

import (
	"context"
	"sort"

	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

type BookingRepo struct {
	Store store.Store
}

func NewBookingRepo(s store.Store) *BookingRepo { return &BookingRepo{Store: s} }

// Append adds the booking to the reservation history.
func (r *BookingRepo) Append(ctx context.Context, b model.Booking) error {
	var bookings []model.Booking
	if _, err := store.ReadJSON(ctx, r.Store, store.KeyBookings, &bookings); err != nil {
		return err
	}
	bookings = append(bookings, b)
	return store.WriteJSON(ctx, r.Store, store.KeyBookings, bookings)
}

// ListByEmail returns the bookings made under email, newest first.
func (r *BookingRepo) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	var bookings []model.Booking
	if _, err := store.ReadJSON(ctx, r.Store, store.KeyBookings, &bookings); err != nil {
		return nil, err
	}
	out := bookings[:0:0]
	for _, b := range bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
