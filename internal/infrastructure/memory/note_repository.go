package memory

import (
	"context"
	"sync"

	"github.com/minoq/storefront/internal/core/domain"
)

// NoteRepository is the non-persistent note backing used when MongoDB is not
// configured. Notes survive the process only.
type NoteRepository struct {
	mu    sync.RWMutex
	notes map[string]string
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[string]string)}
}

func (r *NoteRepository) Read(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	text, ok := r.notes[key]
	if !ok {
		return "", domain.ErrNoteNotFound
	}
	return text, nil
}

func (r *NoteRepository) Write(_ context.Context, key, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[key] = text
	return nil
}
