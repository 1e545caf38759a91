package model

// Session records who is currently logged in. At most one session exists per
// storage scope at a time; it is created by a successful login, removed by
// logout, and survives restarts until explicitly cleared. Sessions never
// expire on their own.
//
// Fields:
//  Email - email of the authenticated account.
//  Name  - display name copied from the account at login time.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
