package ports

import (
	"context"
	"time"

	"github.com/minoq/storefront/internal/core/domain"
)

// CodeVerifier checks a submitted access code against the configured secret.
// It exists as an interface so the weak client-style equality check can later
// be swapped for a real verifier without touching callers.
type CodeVerifier interface {
	Verify(submittedCode string) bool
}

// SessionRegistry tracks granted admin sessions by id. Entries are transient:
// they end by expiry, never by an explicit revocation (no logout is defined).
type SessionRegistry interface {
	Put(ctx context.Context, session domain.AdminSession) error
	// Get returns the session, or domain.ErrSessionNotFound when absent or
	// already expired.
	Get(ctx context.Context, id string) (*domain.AdminSession, error)
}

// AccessGrant is returned on a successful code submission.
type AccessGrant struct {
	Token     string
	ExpiresAt time.Time
}

// AccessService gates admin mode. Submit performs the Locked → Granted
// transition; a wrong code yields domain.ErrAccessDenied with no session
// state change and no attempt counting.
type AccessService interface {
	Submit(ctx context.Context, submittedCode string) (*AccessGrant, error)
}
