// Package account manages the registered accounts and the persisted session
// record. It is the only writer of the accounts directory entry and the
// session entry in the store.
package account

import (
	"context"
	"errors"

	"github.com/twillingtastes/restaurant-ordering/internal/model"
	"github.com/twillingtastes/restaurant-ordering/internal/store"
)

// ErrEmailExists is returned by Signup when the email is already registered.
var ErrEmailExists = errors.New("email already registered")

// ErrInvalidCredentials is returned by Login when no account matches the
// email and password pair. Login has no side effects in that case.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Directory owns the account set and the session record. Accounts live in
// one store entry as an ordered list; a missing or malformed entry reads as
// an empty directory.
type Directory struct {
	store store.Store
}

func NewDirectory(s store.Store) *Directory {
	return &Directory{store: s}
}

// Signup appends a new account. The email must not already exist; matching
// is exact, case-sensitive, against the stored value. Field validation
// (presence, password length, confirmation) is the caller's job; this layer
// records what it is given.
func (d *Directory) Signup(ctx context.Context, name, email, password string) error {
	accounts, err := d.accounts(ctx)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Email == email {
			return ErrEmailExists
		}
	}
	accounts = append(accounts, model.Account{Name: name, Email: email, Password: password})
	return store.WriteJSON(ctx, d.store, store.KeyAccounts, accounts)
}

// Login finds the account with exactly this email and password, persists it
// as the active session and returns the session record. On a miss nothing
// is written.
func (d *Directory) Login(ctx context.Context, email, password string) (model.Session, error) {
	accounts, err := d.accounts(ctx)
	if err != nil {
		return model.Session{}, err
	}
	for _, a := range accounts {
		if a.Email == email && a.Password == password {
			sess := model.Session{Email: a.Email, Name: a.Name}
			if err := store.WriteJSON(ctx, d.store, store.KeySession, sess); err != nil {
				return model.Session{}, err
			}
			return sess, nil
		}
	}
	return model.Session{}, ErrInvalidCredentials
}

// ReadSession returns the persisted session record, or false when no one is
// logged in or the stored record is unreadable.
func (d *Directory) ReadSession(ctx context.Context) (model.Session, bool, error) {
	var sess model.Session
	ok, err := store.ReadJSON(ctx, d.store, store.KeySession, &sess)
	if err != nil {
		return model.Session{}, false, err
	}
	if !ok || sess.Email == "" {
		return model.Session{}, false, nil
	}
	return sess, true, nil
}

// ClearSession removes the session record. Clearing an absent session is a
// no-op.
func (d *Directory) ClearSession(ctx context.Context) error {
	return d.store.Remove(ctx, store.KeySession)
}

func (d *Directory) accounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if _, err := store.ReadJSON(ctx, d.store, store.KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
