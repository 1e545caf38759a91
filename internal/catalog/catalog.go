// Package catalog holds the static menu. The menu is display data owned by
// the serving layer; the cart only ever sees the item shape returned here.
package catalog

import "strings"

// Item is one dish on the menu. ID is the identity the cart keys lines by.
type Item struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"cat"`
	Price    float64 `json:"price"`
	ImageRef string  `json:"img"`
}

// Categories lists the menu filter chips in display order. "All" disables
// category filtering.
var Categories = []string{"All", "Starters", "Mains", "Desserts", "Drinks"}

var items = []Item{
	{ID: 1, Title: "Truffle Fries", Category: "Starters", Price: 450, ImageRef: "https://images.unsplash.com/photo-1544025162-d76694265947"},
	{ID: 2, Title: "Caprese Salad", Category: "Starters", Price: 350, ImageRef: "https://images.unsplash.com/photo-1525351484163-7529414344d8"},
	{ID: 3, Title: "Chilli Chicken", Category: "Starters", Price: 320, ImageRef: "https://i.pinimg.com/736x/c9/75/65/c975650c0d281ca915ebffd91578b26e.jpg"},
	{ID: 4, Title: "Ribeye Steak", Category: "Mains", Price: 1150, ImageRef: "https://images.unsplash.com/photo-1551183053-bf91a1d81141"},
	{ID: 5, Title: "Margherita Pizza", Category: "Mains", Price: 600, ImageRef: "https://www.foodandwine.com/thmb/7BpSJWDh1s-2M2ooRPHoy07apq4=/1500x0/filters:no_upscale():max_bytes(150000):strip_icc()/mozzarella-pizza-margherita-FT-RECIPE0621-11fa41ceb1a5465d9036a23da87dd3d4.jpg"},
	{ID: 6, Title: "Tiramisu", Category: "Desserts", Price: 325, ImageRef: "https://staticcookist.akamaized.net/wp-content/uploads/sites/22/2024/09/THUMB-VIDEO-2_rev1-56.jpeg"},
	{ID: 7, Title: "Crème Brûlée", Category: "Desserts", Price: 350, ImageRef: "https://www.nestleprofessional.in/sites/default/files/2022-07/Vanilla-Creme-Brulee-420x330.webp"},
	{ID: 8, Title: "Choclate Lava", Category: "Desserts", Price: 200, ImageRef: "https://www.melskitchencafe.com/wp-content/uploads/2023/01/updated-lava-cakes7.jpg"},
	{ID: 9, Title: "House Lemonade", Category: "Drinks", Price: 175, ImageRef: "https://images.unsplash.com/photo-1497534446932-c925b458314e"},
	{ID: 10, Title: "Iced Latte", Category: "Drinks", Price: 200, ImageRef: "https://myeverydaytable.com/wp-content/uploads/ICEDLATTE_0_4.jpg"},
}

// Items returns the full menu in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ByID looks an item up by its catalog identity.
func ByID(id int) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Search filters the menu the way the menu page does: an exact category
// match unless category is empty or "All", combined with a case-insensitive
// substring match on the title when query is non-empty.
func Search(category, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Item
	for _, it := range items {
		if category != "" && category != "All" && it.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Title), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}
