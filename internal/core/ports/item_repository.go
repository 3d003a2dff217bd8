package ports

import (
	"context"
	"time"

	"github.com/findly-app/lostfound-api/internal/core/domain"
)

// ListItemsFilter carries all query parameters for listing reports.
type ListItemsFilter struct {
	Type   string // optional: "lost" or "found"
	Status string // optional: filter by lifecycle status
	Search string // optional: partial match on title
	Page   int    // 1-based
	Limit  int    // rows per page (capped by the service)
}

// ItemRepository defines persistence operations for item reports.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// List returns a page of items matching filter and the total count.
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, int64, error)
	// ListByStatuses returns every item currently in one of the given
	// statuses; used by the nearby search.
	ListByStatuses(ctx context.Context, statuses []domain.ItemStatus) ([]*domain.Item, error)
	UpdateStatus(ctx context.Context, id string, status domain.ItemStatus, updatedAt time.Time) error
}
