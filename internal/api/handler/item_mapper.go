package handler

import (
	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

// --- Domain → HTTP response ---

func toItemResponse(item *domain.Item) itemResponse {
	history := make([]sightingEntryResponse, len(item.SightingHistory))
	for i, s := range item.SightingHistory {
		history[i] = sightingEntryResponse{
			ReporterID: s.ReporterID,
			Location:   s.Location,
			Note:       s.Note,
			Timestamp:  s.Timestamp.UTC(),
		}
	}

	return itemResponse{
		ID:              item.ID,
		OwnerID:         item.OwnerID,
		Type:            string(item.Type),
		Title:           item.Title,
		Description:     item.Description,
		PhotoURL:        item.PhotoURL,
		Location:        item.Location,
		Status:          string(item.Status),
		Marker:          geo.MarkerIcon(geo.Category(item.Type), nil),
		CreatedAt:       item.CreatedAt.UTC(),
		UpdatedAt:       item.UpdatedAt.UTC(),
		SightingHistory: history,
	}
}

func toNearbyResponse(items []ports.NearbyItem) []nearbyItemResponse {
	out := make([]nearbyItemResponse, len(items))
	for i, n := range items {
		d := n.DistanceKm
		out[i] = nearbyItemResponse{
			itemResponse:  toItemResponse(n.Item),
			DistanceKm:    d,
			DistanceLabel: geo.FormatDistance(&d),
		}
	}
	return out
}

func toListResponse(r *ports.ListItemsResult) listItemsResponse {
	items := make([]itemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = toItemResponse(item)
	}
	return listItemsResponse{
		Items: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
