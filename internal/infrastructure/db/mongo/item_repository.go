package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

const collectionItems = "items"

// ItemRepository implements ports.ItemRepository on a MongoDB collection.
type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(collectionItems)}
}

// mongoItem is the persisted document shape.
type mongoItem struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty"`
	OwnerID         string                 `bson:"owner_id"`
	Type            domain.ItemType        `bson:"type"`
	Title           string                 `bson:"title"`
	Description     string                 `bson:"description,omitempty"`
	PhotoURL        string                 `bson:"photo_url,omitempty"`
	Location        geo.Coordinate         `bson:"location"`
	Status          domain.ItemStatus      `bson:"status"`
	CreatedAt       time.Time              `bson:"created_at"`
	UpdatedAt       time.Time              `bson:"updated_at"`
	SightingHistory []domain.SightingEntry `bson:"sighting_history"`
}

func (mi *mongoItem) toDomain() *domain.Item {
	history := mi.SightingHistory
	if history == nil {
		history = []domain.SightingEntry{}
	}
	return &domain.Item{
		ID:              mi.ID.Hex(),
		OwnerID:         mi.OwnerID,
		Type:            mi.Type,
		Title:           mi.Title,
		Description:     mi.Description,
		PhotoURL:        mi.PhotoURL,
		Location:        mi.Location,
		Status:          mi.Status,
		CreatedAt:       mi.CreatedAt.UTC(),
		UpdatedAt:       mi.UpdatedAt.UTC(),
		SightingHistory: history,
	}
}

// Create inserts a new item document and returns it with the generated ID.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoItem{
		OwnerID:         item.OwnerID,
		Type:            item.Type,
		Title:           item.Title,
		Description:     item.Description,
		PhotoURL:        item.PhotoURL,
		Location:        item.Location,
		Status:          item.Status,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
		SightingHistory: item.SightingHistory,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoItem
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return mi.toDomain(), nil
}

// List returns a page of items matching filter, newest first, plus the total
// count for pagination.
func (r *ItemRepository) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	items, err := decodeItems(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListByStatuses returns every item in one of the given statuses.
func (r *ItemRepository) ListByStatuses(ctx context.Context, statuses []domain.ItemStatus) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"status": bson.M{"$in": statuses}})
	if err != nil {
		return nil, fmt.Errorf("list items by status: %w", err)
	}
	defer cur.Close(ctx)

	return decodeItems(ctx, cur)
}

func decodeItems(ctx context.Context, cur *mongo.Cursor) ([]*domain.Item, error) {
	var docs []mongoItem
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]*domain.Item, len(docs))
	for i := range docs {
		items[i] = docs[i].toDomain()
	}
	return items, nil
}

func (r *ItemRepository) UpdateStatus(ctx context.Context, id string, status domain.ItemStatus, updatedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{
		"$set": bson.M{"status": status, "updated_at": updatedAt},
	})
	if err != nil {
		return fmt.Errorf("update item status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the list and nearby queries rely on.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
