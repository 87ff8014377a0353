package ports

import "context"

// NoteRepository is the persistent key/value backing for the change note.
// Read returns domain.ErrNoteNotFound when the key has never been written.
type NoteRepository interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, text string) error
}

// NoteService exposes the admin change note with best-effort persistence:
// storage failures are logged and downgraded to in-memory behaviour, never
// surfaced to callers.
type NoteService interface {
	Read(ctx context.Context) string
	Write(ctx context.Context, text string)
}
