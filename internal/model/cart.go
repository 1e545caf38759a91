package model

// CartLine is one menu item in the cart together with its quantity. A cart
// holds at most one line per item id; adding the same item again increments
// Qty instead of appending. Qty is always >= 1; a line driven to zero or
// below is removed from the cart, never kept at zero.
//
// The json names match the stored cart documents other contexts read and
// write (`id`, `title`, `price`, `img`, `qty`).
//
// Fields:
//  ID       - catalog identity of the item.
//  Title    - menu title at the time it was added.
//  Price    - unit price in the shop currency.
//  ImageRef - image reference for display.
//  Qty      - number of units, >= 1.
type CartLine struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageRef string  `json:"img"`
	Qty      int     `json:"qty"`
}

// LineTotal returns Price * Qty for this line.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Qty)
}
