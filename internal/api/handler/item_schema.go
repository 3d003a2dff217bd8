package handler

import (
	"time"

	"github.com/findly-app/lostfound-api/pkg/geo"
)

type coordinateRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

type reportItemRequest struct {
	Type        string            `json:"type"        validate:"required,oneof=lost found"`
	Title       string            `json:"title"       validate:"required"`
	Description string            `json:"description"`
	PhotoURL    string            `json:"photo_url"   validate:"omitempty,url"`
	Location    coordinateRequest `json:"location"`
}

type updateItemStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=claimed returned closed"`
}

type sightingRequest struct {
	Location *coordinateRequest `json:"location"`
	Note     string             `json:"note" validate:"max=500"`
}

// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type sightingEntryResponse struct {
	ReporterID string          `json:"reporter_id"`
	Location   *geo.Coordinate `json:"location,omitempty"`
	Note       string          `json:"note,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

type itemResponse struct {
	ID              string                  `json:"id"`
	OwnerID         string                  `json:"owner_id"`
	Type            string                  `json:"type"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description,omitempty"`
	PhotoURL        string                  `json:"photo_url,omitempty"`
	Location        geo.Coordinate          `json:"location"`
	Status          string                  `json:"status"`
	Marker          geo.Icon                `json:"marker"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	SightingHistory []sightingEntryResponse `json:"sighting_history"`
}

// nearbyItemResponse annotates an item with its distance from the query point.
type nearbyItemResponse struct {
	itemResponse
	DistanceKm    float64 `json:"distance_km"`
	DistanceLabel string  `json:"distance_label"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listItemsResponse struct {
	Items      []itemResponse     `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}
