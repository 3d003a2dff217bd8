package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
	"github.com/findly-app/lostfound-api/pkg/geo"
)

type stubItemService struct {
	reportFn       func(ctx context.Context, input ports.ReportItemInput) (*domain.Item, error)
	getFn          func(ctx context.Context, id string) (*domain.Item, error)
	listFn         func(ctx context.Context, input ports.ListItemsInput) (*ports.ListItemsResult, error)
	nearbyFn       func(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]ports.NearbyItem, error)
	updateStatusFn func(ctx context.Context, id, requesterID string, next domain.ItemStatus) (*domain.Item, error)
}

func (s *stubItemService) Report(ctx context.Context, input ports.ReportItemInput) (*domain.Item, error) {
	return s.reportFn(ctx, input)
}

func (s *stubItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemService) List(ctx context.Context, input ports.ListItemsInput) (*ports.ListItemsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubItemService) Nearby(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]ports.NearbyItem, error) {
	return s.nearbyFn(ctx, origin, radiusKm)
}

func (s *stubItemService) UpdateStatus(ctx context.Context, id, requesterID string, next domain.ItemStatus) (*domain.Item, error) {
	return s.updateStatusFn(ctx, id, requesterID, next)
}

func sampleItem() *domain.Item {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Item{
		ID:              "item_1",
		OwnerID:         "user_1",
		Type:            domain.ItemLost,
		Title:           "Black wallet",
		Location:        geo.Coordinate{Lat: 19.43, Lng: -99.13},
		Status:          domain.StatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
		SightingHistory: []domain.SightingEntry{},
	}
}

func TestItemHandler_Report(t *testing.T) {
	stub := &stubItemService{
		reportFn: func(_ context.Context, input ports.ReportItemInput) (*domain.Item, error) {
			if input.OwnerID != "user_1" || input.Type != "lost" || input.Title != "Black wallet" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Location.Lat != 19.43 || input.Location.Lng != -99.13 {
				t.Fatalf("location not forwarded: %+v", input.Location)
			}
			return sampleItem(), nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/items",
		`{"type":"lost","title":"Black wallet","location":{"lat":19.43,"lng":-99.13}}`)
	c.Set("user_id", "user_1")

	if err := h.Report(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["status"] != "open" {
		t.Fatalf("unexpected status: %v", data["status"])
	}
	marker, ok := data["marker"].(map[string]any)
	if !ok || marker["image_uri"] == "" {
		t.Fatalf("expected a marker icon in the payload")
	}
}

func TestItemHandler_Report_BadType(t *testing.T) {
	stub := &stubItemService{
		reportFn: func(context.Context, ports.ReportItemInput) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewItemHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/items",
		`{"type":"stolen","title":"x","location":{"lat":0,"lng":0}}`)
	c.Set("user_id", "user_1")
	if code := httpStatus(t, h.Report(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestItemHandler_Report_ZeroCoordinatesAccepted(t *testing.T) {
	// Null Island is a valid position and must not be rejected by validation.
	stub := &stubItemService{
		reportFn: func(_ context.Context, input ports.ReportItemInput) (*domain.Item, error) {
			return sampleItem(), nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/items",
		`{"type":"found","title":"Bottle","location":{"lat":0,"lng":0}}`)
	c.Set("user_id", "user_1")

	if err := h.Report(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestItemHandler_Get_NotFound(t *testing.T) {
	stub := &stubItemService{
		getFn: func(context.Context, string) (*domain.Item, error) {
			return nil, domain.ErrItemNotFound
		},
	}
	h := NewItemHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/items/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemHandler_List_ForwardsFilters(t *testing.T) {
	var got ports.ListItemsInput
	stub := &stubItemService{
		listFn: func(_ context.Context, input ports.ListItemsInput) (*ports.ListItemsResult, error) {
			got = input
			return &ports.ListItemsResult{Items: []*domain.Item{sampleItem()}, Total: 1, Page: 2, Limit: 5, TotalPages: 1}, nil
		},
	}
	h := NewItemHandler(stub)

	q := url.Values{}
	q.Set("type", "lost")
	q.Set("status", "open")
	q.Set("search", "wallet")
	q.Set("page", "2")
	q.Set("limit", "5")
	c, rec := newTestContext(t, http.MethodGet, "/api/items?"+q.Encode(), "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Type != "lost" || got.Status != "open" || got.Search != "wallet" || got.Page != 2 || got.Limit != 5 {
		t.Fatalf("filters not forwarded: %+v", got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	pagination, ok := data["pagination"].(map[string]any)
	if !ok || pagination["total"] != float64(1) {
		t.Fatalf("unexpected pagination: %+v", data["pagination"])
	}
}

func TestItemHandler_Nearby(t *testing.T) {
	stub := &stubItemService{
		nearbyFn: func(_ context.Context, origin geo.Coordinate, radiusKm float64) ([]ports.NearbyItem, error) {
			if origin.Lat != 19.43 || origin.Lng != -99.13 || radiusKm != 5 {
				t.Fatalf("unexpected args: %+v %v", origin, radiusKm)
			}
			return []ports.NearbyItem{{Item: sampleItem(), DistanceKm: 1.2}}, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/items/nearby?lat=19.43&lng=-99.13&radius_km=5", "")

	if err := h.Nearby(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].([]any)
	first := data[0].(map[string]any)
	if first["distance_km"] != 1.2 {
		t.Fatalf("unexpected distance: %v", first["distance_km"])
	}
	if first["distance_label"] != "1.2 km" {
		t.Fatalf("unexpected label: %v", first["distance_label"])
	}
}

func TestItemHandler_PublicReadsNeedNoUser(t *testing.T) {
	// Map browsing works before login: neither lookup nor the nearby search
	// consults the authenticated user.
	item := sampleItem()
	stub := &stubItemService{
		getFn: func(_ context.Context, _ string) (*domain.Item, error) {
			return item, nil
		},
		nearbyFn: func(_ context.Context, _ geo.Coordinate, _ float64) ([]ports.NearbyItem, error) {
			return []ports.NearbyItem{{Item: item, DistanceKm: 0.4}}, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/items/item_1", "")
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	if err := h.Get(c); err != nil {
		t.Fatalf("anonymous get failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newTestContext(t, http.MethodGet, "/api/items/nearby?lat=19.43&lng=-99.13&radius_km=5", "")
	if err := h.Nearby(c); err != nil {
		t.Fatalf("anonymous nearby failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestItemHandler_Nearby_BadParams(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	cases := []string{
		"/api/items/nearby?lat=91&lng=0&radius_km=5",
		"/api/items/nearby?lat=0&lng=181&radius_km=5",
		"/api/items/nearby?lat=abc&lng=0&radius_km=5",
		"/api/items/nearby?lat=0&lng=0",
	}
	for _, target := range cases {
		c, _ := newTestContext(t, http.MethodGet, target, "")
		if code := httpStatus(t, h.Nearby(c)); code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, code)
		}
	}
}

func TestItemHandler_UpdateStatus(t *testing.T) {
	stub := &stubItemService{
		updateStatusFn: func(_ context.Context, id, requesterID string, next domain.ItemStatus) (*domain.Item, error) {
			if id != "item_1" || requesterID != "user_1" || next != domain.StatusClaimed {
				t.Fatalf("unexpected args: %s %s %s", id, requesterID, next)
			}
			item := sampleItem()
			item.Status = domain.StatusClaimed
			return item, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/items/item_1/status", `{"status":"claimed"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	c.Set("user_id", "user_1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestItemHandler_UpdateStatus_Forbidden(t *testing.T) {
	stub := &stubItemService{
		updateStatusFn: func(context.Context, string, string, domain.ItemStatus) (*domain.Item, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewItemHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/items/item_1/status", `{"status":"claimed"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	c.Set("user_id", "user_2")
	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestItemHandler_UpdateStatus_BadTarget(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	// "open" is not a valid transition target.
	c, _ := newTestContext(t, http.MethodPut, "/api/items/item_1/status", `{"status":"open"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	c.Set("user_id", "user_1")
	if code := httpStatus(t, h.UpdateStatus(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

type stubDispatcher struct {
	enqueued []ports.SightingInput
	full     bool
}

func (d *stubDispatcher) Enqueue(in ports.SightingInput) bool {
	if d.full {
		return false
	}
	d.enqueued = append(d.enqueued, in)
	return true
}

func TestSightingHandler_Receive(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewSightingHandler(dispatcher)

	c, rec := newTestContext(t, http.MethodPost, "/api/items/item_1/sightings",
		`{"location":{"lat":19.43,"lng":-99.13},"note":"seen at the park"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	c.Set("user_id", "user_2")

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	if len(dispatcher.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued sighting, got %d", len(dispatcher.enqueued))
	}
	got := dispatcher.enqueued[0]
	if got.ItemID != "item_1" || got.ReporterID != "user_2" {
		t.Fatalf("unexpected sighting: %+v", got)
	}
	if got.Location == nil || got.Location.Lat != 19.43 {
		t.Fatalf("location not forwarded: %+v", got.Location)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("timestamp must be set on ingestion")
	}
}

func TestSightingHandler_Receive_NoLocation(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewSightingHandler(dispatcher)

	c, rec := newTestContext(t, http.MethodPost, "/api/items/item_1/sightings", `{"note":"maybe"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	c.Set("user_id", "user_2")

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if dispatcher.enqueued[0].Location != nil {
		t.Fatalf("omitted location must stay nil")
	}
}

func TestSightingHandler_Receive_NoteTooLong(t *testing.T) {
	h := NewSightingHandler(&stubDispatcher{})

	c, _ := newTestContext(t, http.MethodPost, "/api/items/item_1/sightings",
		`{"note":"`+strings.Repeat("x", 501)+`"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	c.Set("user_id", "user_2")
	if code := httpStatus(t, h.Receive(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestSightingHandler_Receive_QueueFull(t *testing.T) {
	dispatcher := &stubDispatcher{full: true}
	h := NewSightingHandler(dispatcher)

	c, _ := newTestContext(t, http.MethodPost, "/api/items/item_1/sightings", `{"note":"seen"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	c.Set("user_id", "user_1")

	if code := httpStatus(t, h.Receive(c)); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when the queue is full, got %d", code)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatalf("nothing should be enqueued on rejection")
	}
}

func TestSightingHandler_Receive_Unauthenticated(t *testing.T) {
	h := NewSightingHandler(&stubDispatcher{})

	c, _ := newTestContext(t, http.MethodPost, "/api/items/item_1/sightings", `{"note":"x"}`)
	var he *echo.HTTPError
	if err := h.Receive(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
