package model

// Booking is a table reservation request. Bookings are appended to their own
// history list in the store and read back filtered by email for the
// dashboard. Date and Time stay strings exactly as submitted; other
// contexts read the history and expect the raw form values.
//
// Fields:
//  Name      - name the table is booked under.
//  Email     - contact email, also the dashboard filter key.
//  Date      - reservation date (YYYY-MM-DD as submitted).
//  Time      - reservation time (HH:MM as submitted).
//  Guests    - party size, 1 through 10.
//  Notes     - optional free-form request.
//  CreatedAt - submission time, milliseconds since epoch.
type Booking struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Guests    int    `json:"guests"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
