package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/minoq/storefront/internal/api/metrics"
	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
)

// NoteKey is the fixed storage key for the admin change note.
const NoteKey = "admin-change-notes"

// NoteService keeps the admin change note with best-effort persistence. The
// in-memory value is authoritative within a session; the repository is only
// ever a persistence attempt. Storage failures are logged and absorbed —
// editing must never be blocked or crashed by storage trouble.
type NoteService struct {
	repo   ports.NoteRepository
	logger zerolog.Logger

	mu     sync.Mutex
	cached string
	loaded bool
}

func NewNoteService(repo ports.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, logger: logger}
}

// Read returns the current note. The first call attempts to load from the
// repository; absence or any read failure falls back to the empty string.
func (s *NoteService) Read(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cached
	}

	text, err := s.repo.Read(ctx, NoteKey)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			s.logger.Debug().Msg("no stored change note, starting empty")
		} else {
			s.logger.Warn().Err(err).Str("key", NoteKey).Msg("change note read failed, starting empty")
		}
		text = ""
	}

	s.cached = text
	s.loaded = true
	return s.cached
}

// Write updates the in-memory note and attempts to persist it. A failed
// persist logs a warning and leaves the service operating in-memory for the
// rest of the session; no retry, no user-visible error.
func (s *NoteService) Write(ctx context.Context, text string) {
	s.mu.Lock()
	s.cached = text
	s.loaded = true
	s.mu.Unlock()

	if err := s.repo.Write(ctx, NoteKey, text); err != nil {
		metrics.NotePersistFailuresTotal.Inc()
		s.logger.Warn().Err(err).Str("key", NoteKey).Msg("change note persist failed, keeping in-memory value")
	}
}
