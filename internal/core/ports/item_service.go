package ports

import (
	"context"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

// ReportItemInput carries all data needed to file a new report.
type ReportItemInput struct {
	OwnerID     string
	Type        string
	Title       string
	Description string
	PhotoURL    string
	Location    geo.Coordinate
}

// ListItemsInput carries all parameters for the list endpoint.
type ListItemsInput struct {
	Type   string
	Status string
	Search string
	Page   int
	Limit  int
}

// ListItemsResult is returned by ListItems.
type ListItemsResult struct {
	Items      []*domain.Item
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NearbyItem is an item annotated with its distance from the query point.
type NearbyItem struct {
	Item       *domain.Item
	DistanceKm float64
}

// ItemService defines use-case operations for item reports.
type ItemService interface {
	Report(ctx context.Context, input ReportItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, input ListItemsInput) (*ListItemsResult, error)
	// Nearby returns active items within radiusKm of origin, closest first.
	Nearby(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]NearbyItem, error)
	// UpdateStatus transitions an item's lifecycle state. Only the owner may
	// transition their report.
	UpdateStatus(ctx context.Context, id, requesterID string, next domain.ItemStatus) (*domain.Item, error)
}
