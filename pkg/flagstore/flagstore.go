// Package flagstore persists the "already subscribed" flag for a visitor.
// The flag is created once after a successful signup and never cleared.
package flagstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNoVisitor is returned when a store is asked about an empty visitor id.
var ErrNoVisitor = errors.New("visitor id is required")

// Store reads and sets the subscribed flag for a visitor.
type Store interface {
	Load(ctx context.Context, visitorID string) (bool, error)
	Save(ctx context.Context, visitorID string) error
}

// browserOnly keeps no server copy; the browser cookie is the flag.
type browserOnly struct{}

// BrowserOnly returns a Store that never remembers anything server side.
func BrowserOnly() Store {
	return browserOnly{}
}

func (browserOnly) Load(context.Context, string) (bool, error) { return false, nil }
func (browserOnly) Save(context.Context, string) error         { return nil }

// Memory keeps flags in process memory.
type Memory struct {
	mu    sync.RWMutex
	flags map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{flags: make(map[string]struct{})}
}

func (m *Memory) Load(_ context.Context, visitorID string) (bool, error) {
	if visitorID == "" {
		return false, ErrNoVisitor
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.flags[visitorID]
	return ok, nil
}

func (m *Memory) Save(_ context.Context, visitorID string) error {
	if visitorID == "" {
		return ErrNoVisitor
	}
	m.mu.Lock()
	m.flags[visitorID] = struct{}{}
	m.mu.Unlock()
	return nil
}
