package domain

import "time"

// SessionState is the admin session lifecycle state. The only defined
// transition is Locked → Granted; there is no revocation transition (the
// original behaviour defines no logout), so sessions end by expiry.
type SessionState string

const (
	SessionLocked  SessionState = "locked"
	SessionGranted SessionState = "granted"
)

// AdminSession records one granted admin session. The ID doubles as the JWT
// token id (jti), so middleware can check registry membership per request.
type AdminSession struct {
	ID        string       `json:"id"`
	State     SessionState `json:"state"`
	GrantedAt time.Time    `json:"granted_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given instant.
func (s AdminSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
