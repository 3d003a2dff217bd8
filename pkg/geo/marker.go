package geo

import (
	"fmt"
	"net/url"
)

// Category selects the marker variant. It matches the item type tag.
type Category string

const (
	CategoryLost  Category = "lost"
	CategoryFound Category = "found"
)

// Base pin geometry before scaling.
const (
	baseIconSize = 36.0
	anchorXRatio = 0.5 // pin tip is bottom-center
)

var markerPalette = map[Category]struct {
	fill  string
	glyph string
}{
	CategoryLost:  {fill: "#E53935", glyph: "?"},
	CategoryFound: {fill: "#43A047", glyph: "✓"},
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a pixel offset inside the icon image.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style captures the visual parameters the icon was rendered with.
type Style struct {
	FillColor    string  `json:"fill_color"`
	FillOpacity  float64 `json:"fill_opacity"`
	StrokeWeight float64 `json:"stroke_weight"`
}

// Icon is the renderable marker description handed to the map layer.
type Icon struct {
	ImageURI string `json:"image_uri"`
	Size     Size   `json:"size"`
	Anchor   Point  `json:"anchor"`
	Style    Style  `json:"style"`
}

// MarkerOptions override the icon defaults. Nil fields fall back to
// Scale 1, FillOpacity 1, StrokeWeight 2; an explicit 0 is honored for
// opacity and stroke weight. Scale must be positive, a non-positive
// value falls back to 1.
type MarkerOptions struct {
	Scale        *float64
	FillOpacity  *float64
	StrokeWeight *float64
}

// resolved holds the concrete rendering parameters after defaults apply.
type resolvedOptions struct {
	scale        float64
	fillOpacity  float64
	strokeWeight float64
}

func (o *MarkerOptions) resolve() resolvedOptions {
	out := resolvedOptions{scale: 1, fillOpacity: 1, strokeWeight: 2}
	if o == nil {
		return out
	}
	if o.Scale != nil && *o.Scale > 0 {
		out.scale = *o.Scale
	}
	if o.FillOpacity != nil {
		out.fillOpacity = *o.FillOpacity
	}
	if o.StrokeWeight != nil {
		out.strokeWeight = *o.StrokeWeight
	}
	return out
}

// MarkerIcon builds the pin icon for a report category. The function is pure
// and deterministic: both categories share the same pin geometry, differing
// only in fill color and glyph, and size and anchor scale linearly with the
// Scale option.
func MarkerIcon(category Category, opts *MarkerOptions) Icon {
	o := opts.resolve()

	p, ok := markerPalette[category]
	if !ok {
		p = markerPalette[CategoryLost]
	}

	side := baseIconSize * o.scale
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 36 36">`+
			`<path d="M18 2c-6.6 0-12 5.4-12 12 0 9 12 20 12 20s12-11 12-20c0-6.6-5.4-12-12-12z"`+
			` fill="%s" fill-opacity="%g" stroke="#FFFFFF" stroke-width="%g"/>`+
			`<text x="18" y="19" font-size="13" font-family="sans-serif" font-weight="bold"`+
			` fill="#FFFFFF" text-anchor="middle">%s</text>`+
			`</svg>`,
		p.fill, o.fillOpacity, o.strokeWeight, p.glyph,
	)

	return Icon{
		ImageURI: "data:image/svg+xml;utf8," + url.PathEscape(svg),
		Size:     Size{Width: side, Height: side},
		Anchor:   Point{X: side * anchorXRatio, Y: side},
		Style: Style{
			FillColor:    p.fill,
			FillOpacity:  o.fillOpacity,
			StrokeWeight: o.strokeWeight,
		},
	}
}
