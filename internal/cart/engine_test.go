package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

type orderSink struct {
	orders []model.Order
}

func (s *orderSink) Append(_ context.Context, o model.Order) error {
	s.orders = append(s.orders, o)
	return nil
}

var (
	fries = CatalogItem{ID: 1, Title: "Truffle Fries", Price: 450, ImageRef: "fries.jpg"}
	pizza = CatalogItem{ID: 5, Title: "Margherita Pizza", Price: 600, ImageRef: "pizza.jpg"}
)

func newTestEngine(t *testing.T) (*Engine, *store.Memory, *orderSink) {
	t.Helper()
	mem := store.NewMemory()
	sink := &orderSink{}
	e, err := NewEngine(context.Background(), mem, sink)
	require.NoError(t, err)
	return e, mem, sink
}

func TestAddItemAccumulatesQuantities(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)

	require.NoError(t, e.AddItem(ctx, fries))
	require.NoError(t, e.AddItem(ctx, pizza))
	require.NoError(t, e.AddItem(ctx, fries))
	require.NoError(t, e.AddItem(ctx, fries))

	lines := e.Lines()
	require.Len(t, lines, 2)
	// insertion order of the first add is preserved
	assert.Equal(t, 1, lines[0].ID)
	assert.Equal(t, 3, lines[0].Qty)
	assert.Equal(t, 5, lines[1].ID)
	assert.Equal(t, 1, lines[1].Qty)
	assert.Equal(t, 4, e.Count())
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)
	require.NoError(t, e.AddItem(ctx, fries))
	require.NoError(t, e.AddItem(ctx, pizza))

	require.NoError(t, e.SetQuantity(ctx, fries.ID, 4))
	assert.Equal(t, 4, e.Lines()[0].Qty)

	// zero removes the line
	require.NoError(t, e.SetQuantity(ctx, fries.ID, 0))
	require.Len(t, e.Lines(), 1)
	assert.Equal(t, pizza.ID, e.Lines()[0].ID)

	// negative removes too
	require.NoError(t, e.SetQuantity(ctx, pizza.ID, -3))
	assert.Empty(t, e.Lines())

	// unknown id is a no-op
	require.NoError(t, e.AddItem(ctx, fries))
	before := e.Lines()
	require.NoError(t, e.SetQuantity(ctx, 999, 5))
	assert.Equal(t, before, e.Lines())
}

func TestSubtotal(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)
	require.NoError(t, e.AddItem(ctx, fries))
	require.NoError(t, e.AddItem(ctx, pizza))
	require.NoError(t, e.AddItem(ctx, pizza))

	assert.InDelta(t, 450+2*600, e.Subtotal(), 1e-9)
}

func TestCheckoutSnapshotsAndClears(t *testing.T) {
	ctx := context.Background()
	e, _, sink := newTestEngine(t)
	require.NoError(t, e.AddItem(ctx, fries))
	require.NoError(t, e.AddItem(ctx, pizza))
	require.NoError(t, e.AddItem(ctx, pizza))
	want := e.Lines()
	wantTotal := e.Subtotal()

	order, err := e.Checkout(ctx, "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, want, order.Items)
	assert.InDelta(t, wantTotal, order.Total, 1e-9)
	assert.Equal(t, "ada@example.com", order.Email)
	assert.Empty(t, e.Lines())

	require.Len(t, sink.orders, 1)
	assert.Equal(t, order, sink.orders[0])
}

func TestCheckoutWithoutSessionRecordsGuest(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)
	require.NoError(t, e.AddItem(ctx, fries))

	order, err := e.Checkout(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "guest", order.Email)
}

func TestCheckoutIDsNeverCollide(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		require.NoError(t, e.AddItem(ctx, fries))
		order, err := e.Checkout(ctx, "guest")
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "order id %d repeated", order.ID)
		seen[order.ID] = true
	}
}

func TestRehydrationRoundTrip(t *testing.T) {
	ctx := context.Background()
	e, mem, _ := newTestEngine(t)
	require.NoError(t, e.AddItem(ctx, fries))
	require.NoError(t, e.AddItem(ctx, pizza))
	require.NoError(t, e.SetQuantity(ctx, pizza.ID, 3))

	fresh, err := NewEngine(ctx, mem, &orderSink{})
	require.NoError(t, err)
	assert.Equal(t, e.Lines(), fresh.Lines())
}

func TestRehydrationFromMalformedCart(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Set(ctx, store.KeyCart, `[{"id":1,"qty"`))

	e, err := NewEngine(ctx, mem, &orderSink{})
	require.NoError(t, err)
	assert.Empty(t, e.Lines())
	assert.Zero(t, e.Subtotal())
}

func TestOnChangeFiresAfterMutations(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)

	var fired int
	e.OnChange(func() { fired++ })

	require.NoError(t, e.AddItem(ctx, fries))
	require.NoError(t, e.SetQuantity(ctx, fries.ID, 2))
	require.NoError(t, e.Clear(ctx))
	e.Replace([]model.CartLine{{ID: 1, Title: "Truffle Fries", Price: 450, Qty: 1}})

	assert.Equal(t, 4, fired)
}
