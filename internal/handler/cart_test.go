package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillingtastes/restaurant-ordering/internal/account"
	"github.com/twillingtastes/restaurant-ordering/internal/cart"
	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/repository"
	"github.com/twillingtastes/restaurant-ordering/internal/session"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

func newCartHandler(t *testing.T) (*CartHandler, *repository.OrderRepo) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()
	dir := account.NewDirectory(mem)
	sessions, err := session.NewManager(ctx, dir)
	require.NoError(t, err)
	orders := repository.NewOrderRepo(mem)
	engine, err := cart.NewEngine(ctx, mem, orders)
	require.NoError(t, err)
	return NewCartHandler(engine, sessions, nil), orders
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResp {
	t.Helper()
	var resp cartResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAddItemBuildsCartView(t *testing.T) {
	h, _ := newCartHandler(t)

	rec := doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":5}`)
	rec = doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 3, resp.Count)
	assert.InDelta(t, 450+2*600, resp.Subtotal, 1e-9)
}

func TestAddUnknownItem(t *testing.T) {
	h, _ := newCartHandler(t)
	rec := doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateItemQuantity(t *testing.T) {
	h, _ := newCartHandler(t)
	doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":1}`)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items/1", strings.NewReader(`{"qty":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateItem(c))

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 4, resp.Items[0].Qty)

	// qty 0 removes the line
	req = httptest.NewRequest(http.MethodPatch, "/v1/cart/items/1", strings.NewReader(`{"qty":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateItem(c))
	assert.Empty(t, decodeCart(t, rec).Items)
}

func TestClearCart(t *testing.T) {
	h, _ := newCartHandler(t)
	doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":1}`)

	rec := doJSON(t, h.ClearCart, http.MethodDelete, "/v1/cart", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h.GetCart, http.MethodGet, "/v1/cart", "")
	assert.Zero(t, decodeCart(t, rec).Count)
}

func TestCheckoutEmptyCart(t *testing.T) {
	h, _ := newCartHandler(t)
	rec := doJSON(t, h.Checkout, http.MethodPost, "/v1/checkout", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutRecordsGuestOrder(t *testing.T) {
	h, orders := newCartHandler(t)
	doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":1}`)

	rec := doJSON(t, h.Checkout, http.MethodPost, "/v1/checkout", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Order model.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "guest", resp.Order.Email)
	assert.InDelta(t, 450, resp.Order.Total, 1e-9)

	stored, err := orders.ListByEmail(context.Background(), "guest")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.Order.ID, stored[0].ID)
}

func TestCheckoutUsesSessionEmail(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	dir := account.NewDirectory(mem)
	require.NoError(t, dir.Signup(ctx, "Ada", "ada@example.com", "hunter22"))
	sessions, err := session.NewManager(ctx, dir)
	require.NoError(t, err)
	_, err = sessions.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	orders := repository.NewOrderRepo(mem)
	engine, err := cart.NewEngine(ctx, mem, orders)
	require.NoError(t, err)
	h := NewCartHandler(engine, sessions, nil)

	doJSON(t, h.AddItem, http.MethodPost, "/v1/cart/items", `{"id":5}`)
	rec := doJSON(t, h.Checkout, http.MethodPost, "/v1/checkout", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	stored, err := orders.ListByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, stored, 1)
}
