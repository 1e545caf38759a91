// This file defines the public menu browsing handlers. The menu is static
// data; no authentication is required and responses contain only display
// fields.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/twillingtastes/restaurant-ordering/internal/catalog"
)

// GetMenu lists menu items, optionally filtered by ?category= and searched
// by ?q= (case-insensitive title substring).
func GetMenu(c echo.Context) error {
	items := catalog.Search(c.QueryParam("category"), c.QueryParam("q"))
	if items == nil {
		items = []catalog.Item{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetCategories lists the menu filter categories in display order.
func GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"categories": catalog.Categories})
}
