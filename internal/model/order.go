package model

// Order is an immutable record created at checkout. The items are a deep
// snapshot of the cart at that moment; later cart mutations never touch an
// order. Orders are appended to an ever-growing history list in the store
// and only ever read back, newest first, for the dashboard.
//
// Fields:
//  ID        - timestamp-derived identifier (milliseconds since epoch, with
//              a monotonic guard so two checkouts in the same millisecond
//              still get distinct ids).
//  Items     - snapshot of the cart lines at checkout.
//  Total     - subtotal of the snapshot.
//  Email     - session email at checkout, or the literal "guest".
//  CreatedAt - checkout time, milliseconds since epoch.
type Order struct {
	ID        int64      `json:"id"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	Email     string     `json:"email"`
	CreatedAt int64      `json:"createdAt"`
}
