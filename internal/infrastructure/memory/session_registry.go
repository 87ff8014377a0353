package memory

import (
	"context"
	"sync"
	"time"

	"github.com/minoq/storefront/internal/core/domain"
)

// SessionRegistry tracks granted admin sessions in process memory. Expired
// entries are treated as absent on read and pruned lazily.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]domain.AdminSession
	now      func() time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]domain.AdminSession),
		now:      time.Now,
	}
}

func (r *SessionRegistry) Put(_ context.Context, session domain.AdminSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *SessionRegistry) Get(_ context.Context, id string) (*domain.AdminSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.Expired(r.now()) {
		delete(r.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	clone := session
	return &clone, nil
}
