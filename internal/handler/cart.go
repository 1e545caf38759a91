package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/twillingtastes/restaurant-ordering/internal/cart"
	"github.com/twillingtastes/restaurant-ordering/internal/catalog"
	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/queue"
	queue_publisher "github.com/twillingtastes/restaurant-ordering/internal/service"
	"github.com/twillingtastes/restaurant-ordering/internal/session"
)

// CartHandler exposes the cart engine's operations over HTTP. Every
// response that touches the cart returns the full cart view so the client
// can re-render without a second round trip.
type CartHandler struct {
	Cart      *cart.Engine
	Sessions  *session.Manager
	Publisher *queue_publisher.Publisher // nil disables event publishing
}

func NewCartHandler(e *cart.Engine, s *session.Manager, p *queue_publisher.Publisher) *CartHandler {
	return &CartHandler{Cart: e, Sessions: s, Publisher: p}
}

// ----- DTOs -----

type addItemReq struct {
	ID int `json:"id"`
}
type updateItemReq struct {
	Qty int `json:"qty"`
}
type cartResp struct {
	Items    []model.CartLine `json:"items"`
	Subtotal float64          `json:"subtotal"`
	Count    int              `json:"count"`
}

func (h *CartHandler) view() cartResp {
	return cartResp{
		Items:    h.Cart.Lines(),
		Subtotal: h.Cart.Subtotal(),
		Count:    h.Cart.Count(),
	}
}

// GetCart returns the current cart contents and subtotal.
func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.view())
}

// AddItem adds one unit of a menu item, looked up by catalog id.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	it, ok := catalog.ByID(req.ID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown menu item"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Cart.AddItem(ctx, cart.CatalogItem{
		ID:       it.ID,
		Title:    it.Title,
		Price:    it.Price,
		ImageRef: it.ImageRef,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update cart failed"})
	}
	return c.JSON(http.StatusOK, h.view())
}

// UpdateItem sets a line's quantity. Zero or negative removes the line;
// an id not present in the cart leaves it unchanged.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var req updateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Cart.SetQuantity(ctx, id, req.Qty); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update cart failed"})
	}
	return c.JSON(http.StatusOK, h.view())
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Cart.Clear(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear cart failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Checkout turns the cart into an order under the session email, or "guest"
// when no one is logged in. The order event publish is best-effort: the
// order is already stored when it happens.
func (h *CartHandler) Checkout(c echo.Context) error {
	if h.Cart.Count() == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}

	email := "guest"
	if sess, ok := h.Sessions.Current(); ok {
		email = sess.Email
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	order, err := h.Cart.Checkout(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}

	if h.Publisher != nil {
		titles := make([]string, 0, len(order.Items))
		for _, it := range order.Items {
			titles = append(titles, it.Title)
		}
		ev := queue.OrderPlacedEvent{
			OrderID:     order.ID,
			Email:       order.Email,
			ItemTitles:  titles,
			TotalAmount: order.Total,
			PlacedAt:    time.UnixMilli(order.CreatedAt).UTC().Format(time.RFC3339),
		}
		if err := h.Publisher.PublishOrderPlaced(ctx, ev); err != nil {
			log.Printf("checkout: publish order event failed: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"order": order})
}
