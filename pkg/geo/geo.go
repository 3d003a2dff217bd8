// Package geo provides the pure geospatial helpers used across the
// lost-and-found service: great-circle distance, human-readable distance
// formatting, device location acquisition, marker icon construction, and the
// dark map style sheet.
package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Coordinate is a geographic point. Lat is in [-90, 90], Lng in [-180, 180].
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// DistanceKm returns the great-circle distance between a and b in kilometres,
// computed with the haversine formula and rounded to one decimal place.
// It returns nil when either input is absent. The result is symmetric and
// zero when both points are equal.
func DistanceKm(a, b *Coordinate) *float64 {
	if a == nil || b == nil {
		return nil
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	d := math.Round(earthRadiusKm*c*10) / 10
	return &d
}

// FormatDistance renders a distance in kilometres for display.
//
//	nil        → "Unknown distance"
//	< 0.1 km   → "Very close"
//	< 1 km     → metres rounded to an integer, e.g. "500 m"
//	otherwise  → kilometres to one decimal, e.g. "2.3 km"
func FormatDistance(km *float64) string {
	switch {
	case km == nil:
		return "Unknown distance"
	case *km < 0.1:
		return "Very close"
	case *km < 1:
		return fmt.Sprintf("%d m", int(math.Round(*km*1000)))
	default:
		return fmt.Sprintf("%.1f km", *km)
	}
}
