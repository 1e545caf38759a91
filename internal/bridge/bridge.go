// Package bridge reconciles local state with writes performed by other
// contexts against the shared store. The notifier it binds to guarantees
// that a context never hears about its own writes; the bridge relies on that
// and performs no self-write filtering of its own.
package bridge

import (
	"context"
	"encoding/json"
	"log"

	"github.com/twillingtastes/restaurant-ordering/internal/cart"
	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/session"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

// Bridge routes external change events to the components that own the
// affected keys. Keys it does not recognize are ignored.
type Bridge struct {
	cart     *cart.Engine
	sessions *session.Manager
}

func New(c *cart.Engine, s *session.Manager) *Bridge {
	return &Bridge{cart: c, sessions: s}
}

// Bind subscribes the bridge to n. Call once during wiring.
func (b *Bridge) Bind(n store.Notifier) {
	n.Subscribe(b.Handle)
}

// Handle applies one external change. Exported so tests can feed synthetic
// events directly.
//
// Cart key: the new value replaces the in-memory cart wholesale, last
// writer wins, no merging. A removed key means an empty cart; a value that
// fails to parse is ignored and the local cart stays as it was.
//
// Session key: the session record is re-read through the directory, which
// covers a login or logout performed in the other context.
func (b *Bridge) Handle(ev store.Event) {
	switch ev.Key {
	case store.KeyCart:
		if ev.Removed {
			b.cart.Replace(nil)
			return
		}
		var lines []model.CartLine
		if err := json.Unmarshal([]byte(ev.Value), &lines); err != nil {
			return
		}
		b.cart.Replace(lines)
	case store.KeySession:
		if err := b.sessions.Reload(context.Background()); err != nil {
			log.Printf("bridge: reload session failed: %v", err)
		}
	}
}
