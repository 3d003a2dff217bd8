package domain

import (
	"time"

	"github.com/findly-app/lostfound-api/pkg/geo"
)

// ItemType distinguishes reports of lost property from found property.
// It is the same tag the map layer keys marker icons on.
type ItemType string

const (
	ItemLost  ItemType = "lost"
	ItemFound ItemType = "found"
)

// ItemStatus represents the lifecycle state of a report.
type ItemStatus string

const (
	StatusOpen     ItemStatus = "open"
	StatusClaimed  ItemStatus = "claimed"
	StatusReturned ItemStatus = "returned"
	StatusClosed   ItemStatus = "closed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[ItemStatus][]ItemStatus{
	StatusOpen:    {StatusClaimed, StatusClosed},
	StatusClaimed: {StatusReturned, StatusClosed},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the item no longer accepts sightings.
func (s ItemStatus) Terminal() bool {
	return s == StatusReturned || s == StatusClosed
}

// SightingEntry records a single community sighting on an item.
type SightingEntry struct {
	ReporterID string          `json:"reporter_id" bson:"reporter_id"`
	Location   *geo.Coordinate `json:"location,omitempty" bson:"location,omitempty"`
	Note       string          `json:"note,omitempty" bson:"note,omitempty"`
	Timestamp  time.Time       `json:"timestamp" bson:"timestamp"`
}

// Item is the aggregate root for a lost-or-found report. Persistence maps it
// to its own document type; only the embedded SightingEntry is stored as-is.
type Item struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"owner_id"`
	Type            ItemType        `json:"type"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	PhotoURL        string          `json:"photo_url,omitempty"`
	Location        geo.Coordinate  `json:"location"`
	Status          ItemStatus      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	SightingHistory []SightingEntry `json:"sighting_history"`
}
