package geo

import "math"

const earthRadiusM = 6371008.8

// Distance returns the great-circle distance in metres between two WGS84
// points using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := math.Pi / 180.0
	dLat := (lat2 - lat1) * toRad
	dLon := (lon2 - lon1) * toRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*toRad)*math.Cos(lat2*toRad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusM * math.Asin(math.Min(1, math.Sqrt(a)))
}

// Bounds is a lat/lon bounding box. The zero value is empty.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
	Valid  bool    `json:"-"`
}

// Extend grows the box to include the point.
func (b *Bounds) Extend(lat, lon float64) {
	if !b.Valid {
		*b = Bounds{MinLat: lat, MaxLat: lat, MinLon: lon, MaxLon: lon, Valid: true}
		return
	}
	b.MinLat = math.Min(b.MinLat, lat)
	b.MaxLat = math.Max(b.MaxLat, lat)
	b.MinLon = math.Min(b.MinLon, lon)
	b.MaxLon = math.Max(b.MaxLon, lon)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

// Pad enlarges the box on every side by ratio of its span.
func (b Bounds) Pad(ratio float64) Bounds {
	if !b.Valid {
		return b
	}
	dLat := (b.MaxLat - b.MinLat) * ratio
	dLon := (b.MaxLon - b.MinLon) * ratio

	return Bounds{
		MinLat: b.MinLat - dLat,
		MaxLat: b.MaxLat + dLat,
		MinLon: b.MinLon - dLon,
		MaxLon: b.MaxLon + dLon,
		Valid:  true,
	}
}
