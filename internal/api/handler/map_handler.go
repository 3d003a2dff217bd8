package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/findly-app/lostfound-api/pkg/geo"
)

// MapHandler serves the rendering configuration clients need before they can
// draw the map: the tiles API key, the dark style sheet, and the marker icon
// for each report category.
type MapHandler struct {
	apiKey string
}

func NewMapHandler(apiKey string) *MapHandler {
	return &MapHandler{apiKey: apiKey}
}

type mapConfigResponse struct {
	APIKey  string              `json:"api_key,omitempty"`
	Theme   string              `json:"theme"`
	Style   []geo.StyleRule     `json:"style"`
	Markers map[string]geo.Icon `json:"markers"`
}

// Config handles GET /api/map/config. The endpoint is public: clients render
// the map before any account exists.
//
// @Summary      Map rendering configuration
// @Tags         map
// @Produce      json
// @Success      200  {object}  successEnvelope
// @Router       /api/map/config [get]
func (h *MapHandler) Config(c echo.Context) error {
	return respond(c, http.StatusOK, mapConfigResponse{
		APIKey: h.apiKey,
		Theme:  "dark",
		Style:  geo.DarkMapStyle(),
		Markers: map[string]geo.Icon{
			string(geo.CategoryLost):  geo.MarkerIcon(geo.CategoryLost, nil),
			string(geo.CategoryFound): geo.MarkerIcon(geo.CategoryFound, nil),
		},
	})
}
