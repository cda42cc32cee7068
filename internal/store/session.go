// Package store holds the session state for the TravelGenie backend.
// State lives only in process memory for the lifetime of the session;
// there is no persistence layer. The service layer depends on the
// SessionStore interface, not the concrete implementation, so tests (or a
// future backend) can swap it out.
package store

import (
	"context"
	"sync"

	"github.com/travelgenie/backend/internal/domain"
)

// SessionStore provides atomic access to the session snapshot.
//
// Update applies fn to a deep copy of the current snapshot and installs
// the result only when fn returns a nil error, so no caller ever observes
// a partially applied mutation. fn must be pure: it receives a private
// copy and returns the next snapshot.
type SessionStore interface {
	// View returns a deep copy of the current snapshot.
	View(ctx context.Context) (domain.Session, error)

	// Update atomically replaces the snapshot with fn's result and
	// returns it. When fn returns an error the snapshot is left
	// unchanged and the error is returned as-is.
	Update(ctx context.Context, fn func(domain.Session) (domain.Session, error)) (domain.Session, error)
}

// memoryStore is the in-memory SessionStore implementation.
type memoryStore struct {
	mu      sync.Mutex
	session domain.Session
}

// NewMemoryStore constructs a SessionStore seeded with the starting
// session state (empty pool, one empty day, empty ledger).
func NewMemoryStore() SessionStore {
	return &memoryStore{session: domain.NewSession()}
}

// NewMemoryStoreWith constructs a SessionStore seeded with the given
// snapshot. Useful in tests that need a pre-populated session.
func NewMemoryStoreWith(s domain.Session) SessionStore {
	return &memoryStore{session: s.Clone()}
}

func (m *memoryStore) View(ctx context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Clone(), nil
}

func (m *memoryStore) Update(ctx context.Context, fn func(domain.Session) (domain.Session, error)) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := fn(m.session.Clone())
	if err != nil {
		return domain.Session{}, err
	}
	m.session = next
	return next.Clone(), nil
}
