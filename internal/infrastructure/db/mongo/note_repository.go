package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minoq/storefront/internal/core/domain"
)

const collectionNotes = "notes"

// NoteRepository persists the admin change note as a single upserted
// document keyed by the storage key. The service layer treats every failure
// here as non-fatal, so methods just return the driver error.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(collectionNotes)}
}

type noteDocument struct {
	Key       string    `bson:"_id"`
	Text      string    `bson:"text"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Read fetches the note text stored under key.
func (r *NoteRepository) Read(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc noteDocument
	err := r.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrNoteNotFound
		}
		return "", err
	}
	return doc.Text, nil
}

// Write upserts the note text under key.
func (r *NoteRepository) Write(ctx context.Context, key, text string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"text": text, "updated_at": time.Now().UTC()}}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	return err
}
