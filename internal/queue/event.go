// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published when a checkout completes. It carries enough
// information for downstream consumers to log, notify, or feed analytics
// without reading the primary store.
type OrderPlacedEvent struct {
	OrderID     int64    `json:"order_id"`
	Email       string   `json:"email"`
	ItemTitles  []string `json:"items"`
	TotalAmount float64  `json:"total"`
	PlacedAt    string   `json:"placed_at"`
}

// BookingConfirmedEvent is published when a table reservation is recorded.
type BookingConfirmedEvent struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Guests      int    `json:"guests"`
	ConfirmedAt string `json:"confirmed_at"`
}
