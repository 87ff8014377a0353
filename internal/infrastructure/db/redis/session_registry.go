package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minoq/storefront/internal/core/domain"
)

const sessionKeyPrefix = "admin_session:"

// SessionRegistry stores granted admin sessions in Redis with a TTL matching
// the session expiry, so entries disappear exactly when the session ends.
type SessionRegistry struct {
	client *redis.Client
}

func NewSessionRegistry(client *redis.Client) *SessionRegistry {
	return &SessionRegistry{client: client}
}

// Put records a granted session until its expiry.
func (r *SessionRegistry) Put(ctx context.Context, session domain.AdminSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err()
}

// Get returns the stored session; expiry is handled by Redis key TTL.
func (r *SessionRegistry) Get(ctx context.Context, id string) (*domain.AdminSession, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var session domain.AdminSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	return &session, nil
}
