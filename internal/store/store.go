// Package store provides the shared key-value storage that backs the cart,
// session, account, order and booking state. Values are JSON documents keyed
// by stable string names so that independent contexts (another process, an
// older deployment) can read and write the same entries. Backends are interface-driven so the engines can run against an
// in-memory map in tests, a local JSON file, Redis or MySQL without rewiring.
package store

import (
	"context"
	"encoding/json"
)

// Stable keys shared with every other context that uses the same storage.
// These names must never change: cross-context synchronization and the
// existing stored documents both depend on them.
const (
	KeyAccounts = "tt_users_v1"   // ordered list of accounts
	KeySession  = "tt_session_v1" // the active session record, or absent
	KeyCart     = "tt_cart"       // ordered list of cart lines
	KeyOrders   = "tt_orders"     // append-only order history
	KeyBookings = "tt_bookings"   // append-only booking history
)

// Store is the minimal contract over durable key-value storage. All
// operations are synchronous: they either complete against the backend or
// return an error. Values are raw strings; callers serialize JSON through
// ReadJSON/WriteJSON.
type Store interface {
	// Get returns the stored value and true, or "" and false when the key
	// is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}

// Event describes a write to the shared storage performed by a different
// context. Notifier implementations guarantee that a context never receives
// events for its own writes; consumers rely on that to avoid re-entrant
// reconciliation.
type Event struct {
	Key     string // the key that changed
	Value   string // the new raw value; empty when Removed is true
	Removed bool   // true when the key was deleted
}

// Notifier delivers external-change events. Production wiring attaches the
// Redis backend's pub/sub channel; tests feed synthetic events through the
// memory backend.
type Notifier interface {
	// Subscribe registers fn to be called for every external change.
	// Callbacks run sequentially per notifier.
	Subscribe(fn func(Event))
}

// ReadJSON loads key and unmarshals it into out. Absent keys and malformed
// stored JSON both leave out untouched and return false; storage itself never
// surfaces a parse error to callers. Backend errors are still reported.
//
// Centralizing the parse-or-default rule here keeps every component on the
// same recovery behavior: a truncated or hand-edited document degrades to
// the caller's zero value instead of failing the operation.
func ReadJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, nil
	}
	return true, nil
}

// WriteJSON marshals v and stores it under key.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(b))
}
