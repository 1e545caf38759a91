// Package cart owns the authoritative in-memory cart and its write-through
// persistence. The engine is the only writer of the cart entry for the
// lifetime of its context; changes made by other contexts arrive through the
// change bridge as full replacements.
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

// CatalogItem is the shape the serving layer hands to AddItem. The engine
// does not know where menu data comes from; it only copies these fields into
// a cart line.
type CatalogItem struct {
	ID       int
	Title    string
	Price    float64
	ImageRef string
}

// OrderStore receives the order snapshot built at checkout. Satisfied by
// repository.OrderRepo; tests substitute a recording fake.
type OrderStore interface {
	Append(ctx context.Context, o model.Order) error
}

// Engine holds the cart lines in insertion order, at most one line per item
// id, every quantity >= 1. Every mutation persists the whole cart before
// returning; the subtotal is recomputed from current state on demand and
// never cached. A mutex serializes operations so concurrent requests see
// each mutation whole. Change callbacks run after the mutation completes,
// outside the lock.
type Engine struct {
	store  store.Store
	orders OrderStore

	mu          sync.Mutex
	lines       []model.CartLine
	lastOrderID int64
	subs        []func()
}

// NewEngine rehydrates the cart from the store. An absent or malformed cart
// entry starts the engine empty.
func NewEngine(ctx context.Context, s store.Store, orders OrderStore) (*Engine, error) {
	e := &Engine{store: s, orders: orders}
	var lines []model.CartLine
	if _, err := store.ReadJSON(ctx, s, store.KeyCart, &lines); err != nil {
		return nil, err
	}
	e.lines = lines
	return e, nil
}

// AddItem puts one unit of the item in the cart: an existing line for the
// same id gains a unit, otherwise a new line with qty 1 is appended.
func (e *Engine) AddItem(ctx context.Context, it CatalogItem) error {
	e.mu.Lock()
	found := false
	for i := range e.lines {
		if e.lines[i].ID == it.ID {
			e.lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		e.lines = append(e.lines, model.CartLine{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price,
			ImageRef: it.ImageRef,
			Qty:      1,
		})
	}
	return e.persistAndNotify(ctx)
}

// SetQuantity sets the line's quantity, removing the line entirely when qty
// drops to zero or below. An unknown id changes nothing.
func (e *Engine) SetQuantity(ctx context.Context, id, qty int) error {
	e.mu.Lock()
	for i := range e.lines {
		if e.lines[i].ID != id {
			continue
		}
		if qty <= 0 {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
		} else {
			e.lines[i].Qty = qty
		}
		return e.persistAndNotify(ctx)
	}
	e.mu.Unlock()
	return nil
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	e.lines = nil
	return e.persistAndNotify(ctx)
}

// Subtotal sums price * qty over all lines.
func (e *Engine) Subtotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return subtotal(e.lines)
}

// Lines returns a copy of the cart in insertion order.
func (e *Engine) Lines() []model.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Count returns the total number of units across all lines.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, l := range e.lines {
		n += l.Qty
	}
	return n
}

// Checkout snapshots the cart into a new order under email ("guest" when no
// one is logged in), appends it to the order history and clears the cart.
// The order id is derived from the checkout timestamp; a monotonic guard
// keeps ids distinct when two checkouts land in the same millisecond.
func (e *Engine) Checkout(ctx context.Context, email string) (model.Order, error) {
	e.mu.Lock()
	if email == "" {
		email = "guest"
	}
	now := time.Now().UnixMilli()
	id := now
	if id <= e.lastOrderID {
		id = e.lastOrderID + 1
	}
	items := make([]model.CartLine, len(e.lines))
	copy(items, e.lines)
	order := model.Order{
		ID:        id,
		Items:     items,
		Total:     subtotal(e.lines),
		Email:     email,
		CreatedAt: now,
	}
	if err := e.orders.Append(ctx, order); err != nil {
		e.mu.Unlock()
		return model.Order{}, err
	}
	e.lastOrderID = id
	e.lines = nil
	if err := e.persistAndNotify(ctx); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// Replace swaps the in-memory cart for lines, wholesale. The change bridge
// calls this with the value another context persisted; last writer wins, no
// merging. The store is not rewritten; the value came from there.
func (e *Engine) Replace(lines []model.CartLine) {
	e.mu.Lock()
	e.lines = lines
	subs := append([]func(){}, e.subs...)
	e.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// OnChange registers fn to run after every cart change, including
// replacements from other contexts. Callbacks run on the mutating
// goroutine; keep them short.
func (e *Engine) OnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// persistAndNotify writes the cart through to the store, releases the lock
// and runs the change callbacks. Callers enter holding e.mu.
func (e *Engine) persistAndNotify(ctx context.Context) error {
	lines := e.lines
	if lines == nil {
		lines = []model.CartLine{}
	}
	err := store.WriteJSON(ctx, e.store, store.KeyCart, lines)
	subs := append([]func(){}, e.subs...)
	e.mu.Unlock()
	if err != nil {
		return err
	}
	for _, fn := range subs {
		fn()
	}
	return nil
}

func subtotal(lines []model.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}
