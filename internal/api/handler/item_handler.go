package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/findly-app/lostfound-api/internal/api/metrics"
	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

// ItemHandler handles HTTP requests for lost-and-found reports.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// Report handles POST /api/items.
//
// @Summary      File a lost or found report
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reportItemRequest  true  "Report details"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/items [post]
func (h *ItemHandler) Report(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req reportItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Report(c.Request().Context(), ports.ReportItemInput{
		OwnerID:     userID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Location:    geo.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng},
	})
	if err != nil {
		return err
	}

	metrics.ItemsReportedTotal.WithLabelValues(req.Type).Inc()
	return respond(c, http.StatusCreated, toItemResponse(item))
}

// Get handles GET /api/items/:id. The route is public.
//
// @Summary      Get a report by ID
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  successEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toItemResponse(item))
}

// List handles GET /api/items with optional type/status/search filters and
// pagination.
//
// @Summary      List reports
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        type    query     string  false  "Filter by type (lost|found)"
// @Param        status  query     string  false  "Filter by status"
// @Param        search  query     string  false  "Partial title match"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  successEnvelope
// @Failure      401     {object}  errorEnvelope
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListItemsInput{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toListResponse(result))
}

// Nearby handles GET /api/items/nearby?lat=&lng=&radius_km=. The route is
// public so the map can be browsed anonymously.
//
// @Summary      List active reports near a point
// @Tags         items
// @Produce      json
// @Param        lat        query     number  true  "Latitude"
// @Param        lng        query     number  true  "Longitude"
// @Param        radius_km  query     number  true  "Search radius in kilometres"
// @Success      200        {object}  successEnvelope
// @Failure      400        {object}  errorEnvelope
// @Router       /api/items/nearby [get]
func (h *ItemHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return echo.NewHTTPError(http.StatusBadRequest, "lat must be a number in [-90,90]")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		return echo.NewHTTPError(http.StatusBadRequest, "lng must be a number in [-180,180]")
	}
	radius, err := strconv.ParseFloat(c.QueryParam("radius_km"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "radius_km must be a number")
	}

	items, err := h.service.Nearby(c.Request().Context(), geo.Coordinate{Lat: lat, Lng: lng}, radius)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toNearbyResponse(items))
}

// UpdateStatus handles PUT /api/items/:id/status. Only the owner may
// transition their report.
//
// @Summary      Transition a report's status
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Item ID"
// @Param        body  body      updateItemStatusRequest  true  "Target status"
// @Success      200   {object}  successEnvelope
// @Failure      403   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Failure      422   {object}  errorEnvelope
// @Router       /api/items/{id}/status [put]
func (h *ItemHandler) UpdateStatus(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateItemStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), userID, domain.ItemStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toItemResponse(item))
}
