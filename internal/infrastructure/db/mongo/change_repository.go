package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

const collectionChanges = "store_changes"

// ChangeRepository implements ports.ChangeRepository using MongoDB.
type ChangeRepository struct {
	col *mongo.Collection
}

// NewChangeRepository creates a new ChangeRepository.
func NewChangeRepository(db *mongo.Database) *ChangeRepository {
	return &ChangeRepository{col: db.Collection(collectionChanges)}
}

// InsertChange appends a change to the store_changes audit collection.
func (r *ChangeRepository) InsertChange(ctx context.Context, c domain.Change) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"_id":         c.ID.String(),
		"kind":        string(c.Kind),
		"at":          c.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if c.EntityID != 0 {
		doc["entity_id"] = c.EntityID
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// EnsureIndexes creates the indexes used to browse the audit trail.
func (r *ChangeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "at", Value: 1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "entity_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

var _ ports.ChangeRepository = (*ChangeRepository)(nil)
