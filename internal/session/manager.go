// Package session tracks the currently logged-in account as observable
// state. The manager wraps the account directory's session operations and
// fans out a change notification whenever the session flips, so views can
// re-render without polling the store.
package session

import (
	"context"
	"sync"

	"github.com/twillingtastes/restaurant-ordering/internal/account"
	"github.com/twillingtastes/restaurant-ordering/internal/model"
)

// Manager holds the currently-known session. Construction reads the
// persisted record once; afterwards the in-memory copy changes only through
// Login, Logout and Reload. A mutex serializes operations so observers in
// one context always see a consistent session.
type Manager struct {
	dir *account.Directory

	mu      sync.Mutex
	current model.Session
	active  bool
	subs    []func()
}

// NewManager builds a manager seeded from the persisted session record, if
// one exists.
func NewManager(ctx context.Context, dir *account.Directory) (*Manager, error) {
	m := &Manager{dir: dir}
	sess, ok, err := dir.ReadSession(ctx)
	if err != nil {
		return nil, err
	}
	m.current, m.active = sess, ok
	return m, nil
}

// Current returns the known session and whether anyone is logged in.
func (m *Manager) Current() (model.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.active
}

// Login authenticates through the directory and, on success, adopts the new
// session and notifies subscribers.
func (m *Manager) Login(ctx context.Context, email, password string) (model.Session, error) {
	sess, err := m.dir.Login(ctx, email, password)
	if err != nil {
		return model.Session{}, err
	}
	m.set(sess, true)
	return sess, nil
}

// Logout clears the persisted session. Idempotent: logging out while logged
// out leaves everything as is.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.dir.ClearSession(ctx); err != nil {
		return err
	}
	m.set(model.Session{}, false)
	return nil
}

// Reload re-reads the persisted session record. The change bridge calls this
// when another context rewrites the session key (a login or logout over
// there).
func (m *Manager) Reload(ctx context.Context) error {
	sess, ok, err := m.dir.ReadSession(ctx)
	if err != nil {
		return err
	}
	m.set(sess, ok)
	return nil
}

// OnChange registers fn to run after every session change. Callbacks run on
// the mutating goroutine; keep them short.
func (m *Manager) OnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *Manager) set(sess model.Session, active bool) {
	m.mu.Lock()
	changed := m.active != active || m.current != sess
	m.current, m.active = sess, active
	subs := append([]func(){}, m.subs...)
	m.mu.Unlock()
	if !changed {
		return
	}
	for _, fn := range subs {
		fn()
	}
}
