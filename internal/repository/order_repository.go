// Package repository provides access to the append-only history lists kept
// in the store: orders and bookings. Histories are read back filtered by
// email for the dashboard, newest first.
package repository

import (
	"context"
	"sort"

	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

type OrderRepo struct {
	Store store.Store
}

func NewOrderRepo(s store.Store) *OrderRepo { return &OrderRepo{Store: s} }

// Append adds the order to the history. Orders are immutable once written.
func (r *OrderRepo) Append(ctx context.Context, o model.Order) error {
	var orders []model.Order
	if _, err := store.ReadJSON(ctx, r.Store, store.KeyOrders, &orders); err != nil {
		return err
	}
	orders = append(orders, o)
	return store.WriteJSON(ctx, r.Store, store.KeyOrders, orders)
}

// ListByEmail returns the orders recorded for email, newest first.
func (r *OrderRepo) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	if _, err := store.ReadJSON(ctx, r.Store, store.KeyOrders, &orders); err != nil {
		return nil, err
	}
	out := orders[:0:0]
	for _, o := range orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
