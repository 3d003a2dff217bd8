package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/findly-app/lostfound-api/internal/api/metrics"
	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, in ports.SightingInput) (bool, error)
	Mark(ctx context.Context, in ports.SightingInput) error
}

type sightingService struct {
	itemRepo     ports.ItemRepository
	sightingRepo ports.SightingRepository
	dedup        DedupChecker
	log          zerolog.Logger
}

// NewSightingService returns a SightingService implementation.
func NewSightingService(
	itemRepo ports.ItemRepository,
	sightingRepo ports.SightingRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.SightingService {
	return &sightingService{
		itemRepo:     itemRepo,
		sightingRepo: sightingRepo,
		dedup:        dedup,
		log:          log,
	}
}

// Process validates, deduplicates, and persists a single sighting report.
func (s *sightingService) Process(ctx context.Context, in ports.SightingInput) error {
	// 1. Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Str("item_id", in.ItemID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.SightingsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("item_id", in.ItemID).Str("reporter_id", in.ReporterID).Msg("duplicate sighting skipped")
		return nil
	} else {
		metrics.SightingsDedupTotal.WithLabelValues("miss").Inc()
	}

	// 2. The item must exist and still accept sightings.
	item, err := s.itemRepo.FindByID(ctx, in.ItemID)
	if err != nil {
		return fmt.Errorf("process sighting: %w", err)
	}
	if item.Status.Terminal() {
		return fmt.Errorf("process sighting: %w (item is %s)", domain.ErrInvalidTransition, item.Status)
	}

	// 3. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in); markErr != nil {
		s.log.Warn().Err(markErr).Str("item_id", in.ItemID).Msg("failed to set dedup key")
	}

	// 4. Atomically append to the item's sighting history.
	entry := domain.SightingEntry{
		ReporterID: in.ReporterID,
		Location:   in.Location,
		Note:       in.Note,
		Timestamp:  in.Timestamp,
	}
	if err := s.sightingRepo.AppendToItem(ctx, in.ItemID, entry); err != nil {
		return fmt.Errorf("process sighting: append: %w", err)
	}

	// 5. Audit trail insert (non-fatal on failure).
	if err := s.sightingRepo.InsertAudit(ctx, in); err != nil {
		s.log.Warn().Err(err).Str("item_id", in.ItemID).Msg("failed to insert sighting audit record")
	}

	s.log.Info().
		Str("item_id", in.ItemID).
		Str("reporter_id", in.ReporterID).
		Msg("sighting processed")

	return nil
}
