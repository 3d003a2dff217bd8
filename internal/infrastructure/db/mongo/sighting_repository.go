package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
)

const collectionSightings = "sightings"

// SightingRepository implements ports.SightingRepository using MongoDB.
type SightingRepository struct {
	db *mongo.Database
}

func NewSightingRepository(db *mongo.Database) ports.SightingRepository {
	return &SightingRepository{db: db}
}

// AppendToItem atomically pushes a sighting entry onto the item's history and
// bumps updated_at.
func (r *SightingRepository) AppendToItem(ctx context.Context, itemID string, entry domain.SightingEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"sighting_history": entry},
		"$set":  bson.M{"updated_at": entry.Timestamp.UTC()},
	}

	res, err := r.db.Collection(collectionItems).UpdateOne(ctx, byID(itemID), update)
	if err != nil {
		return fmt.Errorf("append sighting: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// InsertAudit persists the sighting to the sightings audit collection.
func (r *SightingRepository) InsertAudit(ctx context.Context, in ports.SightingInput) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"item_id":      in.ItemID,
		"reporter_id":  in.ReporterID,
		"note":         in.Note,
		"timestamp":    in.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if in.Location != nil {
		doc["location"] = bson.M{"lat": in.Location.Lat, "lng": in.Location.Lng}
	}

	_, err := r.db.Collection(collectionSightings).InsertOne(ctx, doc)
	return err
}
