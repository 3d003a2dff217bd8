package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

// Report files a new lost-or-found report in the open state.
func (s *ItemService) Report(ctx context.Context, input ports.ReportItemInput) (*domain.Item, error) {
	itemType := domain.ItemType(input.Type)
	if itemType != domain.ItemLost && itemType != domain.ItemFound {
		return nil, fmt.Errorf("%w: type must be lost or found", domain.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	item := &domain.Item{
		OwnerID:         input.OwnerID,
		Type:            itemType,
		Title:           input.Title,
		Description:     input.Description,
		PhotoURL:        input.PhotoURL,
		Location:        input.Location,
		Status:          domain.StatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
		SightingHistory: []domain.SightingEntry{},
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("type", input.Type).Str("owner_id", input.OwnerID).Msg("item reported")
	return created, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of reports matching the filters.
func (s *ItemService) List(ctx context.Context, input ports.ListItemsInput) (*ports.ListItemsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListItemsFilter{
		Type:   input.Type,
		Status: input.Status,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListItemsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Nearby returns active (open or claimed) items within radiusKm of origin,
// sorted closest first. Distances come from the haversine helper so results
// match what the map renders.
func (s *ItemService) Nearby(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]ports.NearbyItem, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", domain.ErrValidation)
	}

	items, err := s.repo.ListByStatuses(ctx, []domain.ItemStatus{domain.StatusOpen, domain.StatusClaimed})
	if err != nil {
		return nil, err
	}

	out := make([]ports.NearbyItem, 0, len(items))
	for _, item := range items {
		loc := item.Location
		d := geo.DistanceKm(&origin, &loc)
		if d == nil || *d > radiusKm {
			continue
		}
		out = append(out, ports.NearbyItem{Item: item, DistanceKm: *d})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}

// UpdateStatus transitions an item's lifecycle state on behalf of its owner.
func (s *ItemService) UpdateStatus(ctx context.Context, id, requesterID string, next domain.ItemStatus) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}
	if !item.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, item.Status, next)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, next, now); err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", id).Str("status", string(next)).Msg("item status updated")

	item.Status = next
	item.UpdatedAt = now
	return item, nil
}
