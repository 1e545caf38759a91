package store

import (
	"context"
	"sync"
)

// Memory is an in-process backend. It keeps tests lightweight and favors
// clarity over performance. It also implements Notifier: Emit injects a
// synthetic external change, which is how tests simulate a write performed
// by another context. Regular Set/Remove calls never notify, matching the
// self-write guarantee of the real notification mechanisms.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	subs   []func(Event)
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Subscribe(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Emit delivers ev to all subscribers as if another context had written the
// key, and applies the change to the local map so subsequent reads observe
// the same value the event carried.
func (m *Memory) Emit(ev Event) {
	m.mu.Lock()
	if ev.Removed {
		delete(m.values, ev.Key)
	} else {
		m.values[ev.Key] = ev.Value
	}
	subs := append([]func(Event){}, m.subs...)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}
