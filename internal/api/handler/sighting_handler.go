package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/findly-app/lostfound-api/internal/core/ports"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

// SightingDispatcher is the interface the handler uses to enqueue sightings.
// Enqueue reports false when the queue cannot accept more work.
type SightingDispatcher interface {
	Enqueue(in ports.SightingInput) bool
}

// SightingHandler handles community sighting ingestion. Reports are accepted
// immediately and processed asynchronously, one item at a time.
type SightingHandler struct {
	dispatcher SightingDispatcher
}

func NewSightingHandler(dispatcher SightingDispatcher) *SightingHandler {
	return &SightingHandler{dispatcher: dispatcher}
}

// Receive handles POST /api/items/:id/sightings — enqueues one sighting,
// returns 202.
//
// @Summary      Report a sighting of a listed item
// @Tags         sightings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Item ID"
// @Param        body  body      sightingRequest  true  "Sighting details"
// @Success      202   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Failure      503   {object}  errorEnvelope
// @Router       /api/items/{id}/sightings [post]
func (h *SightingHandler) Receive(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req sightingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.SightingInput{
		ItemID:     c.Param("id"),
		ReporterID: userID,
		Note:       req.Note,
		Timestamp:  time.Now().UTC(),
	}
	if req.Location != nil {
		in.Location = &geo.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	if !h.dispatcher.Enqueue(in) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "sighting queue is full, retry later")
	}
	return respondMessage(c, http.StatusAccepted, "sighting accepted")
}
