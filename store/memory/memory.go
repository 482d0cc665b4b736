// Package memory provides in-memory implementations of the storage
// interfaces (for testing/dev).
package memory

import (
	"context"
	"sync"

	"github.com/srmorg/leave-engine/auth"
	"github.com/srmorg/leave-engine/leave"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Store implements leave.OverrideStore and auth.Directory with maps.
type Store struct {
	mu        sync.RWMutex
	overrides map[string]leave.Override
	users     map[string]auth.User // keyed by uid
}

func New() *Store {
	return &Store{
		overrides: make(map[string]leave.Override),
		users:     make(map[string]auth.User),
	}
}

// =============================================================================
// OVERRIDE STORE
// =============================================================================

func (m *Store) Put(_ context.Context, rec leave.Override) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[rec.Date] = rec
	return nil
}

func (m *Store) Delete(_ context.Context, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.overrides, date)
	return nil
}

func (m *Store) List(_ context.Context) (map[string]leave.Override, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]leave.Override, len(m.overrides))
	for k, v := range m.overrides {
		out[k] = v
	}
	return out, nil
}

// =============================================================================
// USER DIRECTORY
// =============================================================================

func (m *Store) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *Store) FindByUID(_ context.Context, uid string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[uid]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (m *Store) SaveUser(_ context.Context, u auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.UID] = u
	return nil
}

func (m *Store) BumpTokenVersion(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[uid]
	if !ok {
		return nil
	}
	u.TokenVersion++
	m.users[uid] = u
	return nil
}
