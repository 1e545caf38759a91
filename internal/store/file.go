package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// File persists all keys in a single JSON document on disk, the closest
// server-side analog of per-profile browser storage: durable across restarts,
// scoped to one machine, written through on every change. It carries no
// Notifier; a file has no external writers in this deployment shape.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenFile loads the document at path, creating parent directories as
// needed. A missing file starts empty; a malformed file is treated the same
// way rather than refusing to start.
func OpenFile(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f := &File{path: path, values: make(map[string]string)}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}
	if jsonErr := json.Unmarshal(b, &f.values); jsonErr != nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return f.flush()
}

// flush writes the whole document via a temp file and rename so a crash
// mid-write never leaves a truncated store behind. Caller holds f.mu.
func (f *File) flush() error {
	b, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
