package model

// Account is a registered user as stored in the accounts directory entry.
// The full set of accounts lives in one store document as an ordered list;
// accounts are appended at signup and never mutated or deleted afterwards.
//
// The password is stored in plaintext. Older contexts sharing the store
// compare raw credentials, so the field stays readable. A documented
// limitation, not a field to harden here.
//
// Fields:
//  Name     - display name given at signup.
//  Email    - unique key within the directory, matched exactly as stored.
//  Password - plaintext credential compared exactly at login.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
