package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minoq/storefront/internal/api/metrics"
	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
)

// DefaultAccessCode is the shipped admin code. It is not a security boundary:
// the gate is a documented client-style equality check, kept behind
// ports.CodeVerifier so a real verifier can replace it.
const DefaultAccessCode = "9432144881"

// AccessService implements the admin gate: verify the submitted code, record
// the Locked → Granted session transition, and issue a session token.
type AccessService struct {
	verifier  ports.CodeVerifier
	sessions  ports.SessionRegistry
	ids       ports.IDGenerator
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAccessService(verifier ports.CodeVerifier, sessions ports.SessionRegistry, ids ports.IDGenerator, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AccessService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AccessService{
		verifier:  verifier,
		sessions:  sessions,
		ids:       ids,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Submit checks the code and, when it matches, grants an admin session.
// A wrong code returns domain.ErrAccessDenied with no state change; attempts
// are deliberately unthrottled and uncounted.
func (s *AccessService) Submit(ctx context.Context, submittedCode string) (*ports.AccessGrant, error) {
	if !s.verifier.Verify(submittedCode) {
		metrics.AccessAttemptsTotal.WithLabelValues("denied").Inc()
		s.logger.Info().Msg("admin access denied")
		return nil, domain.ErrAccessDenied
	}

	now := time.Now().UTC()
	session := domain.AdminSession{
		ID:        s.ids.NewID(),
		State:     domain.SessionGranted,
		GrantedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		s.logger.Error().Err(err).Msg("failed to record admin session")
		return nil, err
	}

	token, err := s.generateToken(session)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign session token")
		return nil, err
	}

	metrics.AccessAttemptsTotal.WithLabelValues("granted").Inc()
	s.logger.Info().Str("session_id", session.ID).Time("expires_at", session.ExpiresAt).Msg("admin access granted")

	return &ports.AccessGrant{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

func (s *AccessService) generateToken(session domain.AdminSession) (string, error) {
	claims := jwt.MapClaims{
		"jti":  session.ID,
		"role": "admin",
		"iat":  session.GrantedAt.Unix(),
		"exp":  session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// PlainCodeVerifier is the documented behaviour: exact string equality
// against one fixed code shipped with the deployment.
type PlainCodeVerifier struct {
	code string
}

func NewPlainCodeVerifier(code string) PlainCodeVerifier {
	if code == "" {
		code = DefaultAccessCode
	}
	return PlainCodeVerifier{code: code}
}

func (v PlainCodeVerifier) Verify(submittedCode string) bool {
	return submittedCode == v.code
}

// BcryptCodeVerifier compares against a bcrypt hash so the plain code never
// has to appear in configuration.
type BcryptCodeVerifier struct {
	hash []byte
}

func NewBcryptCodeVerifier(hash string) BcryptCodeVerifier {
	return BcryptCodeVerifier{hash: []byte(hash)}
}

func (v BcryptCodeVerifier) Verify(submittedCode string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(submittedCode)) == nil
}
