package ports

import (
	"context"
	"time"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

// SightingInput is the DTO passed from the transport layer to the
// sighting pipeline.
type SightingInput struct {
	ItemID     string
	ReporterID string
	Location   *geo.Coordinate // optional
	Note       string
	Timestamp  time.Time
}

// SightingService processes community sighting reports.
type SightingService interface {
	Process(ctx context.Context, in SightingInput) error
}

// SightingRepository appends sightings to items and keeps the audit trail.
type SightingRepository interface {
	// AppendToItem atomically pushes a sighting entry onto the item's history
	// and bumps updated_at.
	AppendToItem(ctx context.Context, itemID string, entry domain.SightingEntry) error
	// InsertAudit persists the sighting to the audit collection.
	InsertAudit(ctx context.Context, in SightingInput) error
}
