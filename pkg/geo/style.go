package geo

// Styler is a single display directive inside a style rule.
type Styler struct {
	Color string `json:"color"`
}

// StyleRule targets one feature/element pair on the base map.
type StyleRule struct {
	FeatureType string   `json:"featureType,omitempty"`
	ElementType string   `json:"elementType,omitempty"`
	Stylers     []Styler `json:"stylers"`
}

// darkMapStyle is applied verbatim, in order, by the rendering layer when the
// dark theme is active. Order matters: later rules override earlier ones.
var darkMapStyle = []StyleRule{
	{ElementType: "geometry", Stylers: []Styler{{Color: "#242f3e"}}},
	{ElementType: "labels.text.stroke", Stylers: []Styler{{Color: "#242f3e"}}},
	{ElementType: "labels.text.fill", Stylers: []Styler{{Color: "#746855"}}},
	{FeatureType: "administrative.locality", ElementType: "labels.text.fill", Stylers: []Styler{{Color: "#d59563"}}},
	{FeatureType: "poi", ElementType: "labels.text.fill", Stylers: []Styler{{Color: "#d59563"}}},
	{FeatureType: "poi.park", ElementType: "geometry", Stylers: []Styler{{Color: "#263c3f"}}},
	{FeatureType: "poi.park", ElementType: "labels.text.fill", Stylers: []Styler{{Color: "#6b9a76"}}},
	{FeatureType: "road", ElementType: "geometry", Stylers: []Styler{{Color: "#38414e"}}},
	{FeatureType: "road", ElementType: "geometry.stroke", Stylers: []Styler{{Color: "#212a37"}}},
	{FeatureType: "road", ElementType: "labels.text.fill", Stylers: []Styler{{Color: "#9ca5b3"}}},
	{FeatureType: "road.highway", ElementType: "geometry", Stylers: []Styler{{Color: "#746855"}}},
	{FeatureType: "road.highway", ElementType: "geometry.stroke", Stylers: []Styler{{Color: "#1f2835"}}},
	{FeatureType: "road.highway", ElementType: "labels.text.fill", Stylers: []Styler{{Color: "#f3d19c"}}},
	{FeatureType: "transit", ElementType: "geometry", Stylers: []Styler{{Color: "#2f3948"}}},
	{FeatureType: "water", ElementType: "geometry", Stylers: []Styler{{Color: "#17263c"}}},
	{FeatureType: "water", ElementType: "labels.text.fill", Stylers: []Styler{{Color: "#515c6d"}}},
}

// DarkMapStyle returns the fixed, ordered dark-theme style sheet. Callers
// receive a fresh copy so the canonical list cannot be mutated.
func DarkMapStyle() []StyleRule {
	out := make([]StyleRule, len(darkMapStyle))
	copy(out, darkMapStyle)
	return out
}
