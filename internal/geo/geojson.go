// Package geo handles GeoJSON structures and coordinate math for trailheads.
package geo

import "github.com/woozymasta/trails/internal/trail"

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
// Geometry is nil for features the source published without a location.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Geometry   *Geometry              `json:"geometry" yaml:"geometry"`
	Type       string                 `json:"type" yaml:"type"`
}

// Geometry represents a Point geometry.
type Geometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// LatLon returns the point position. ok is false when fewer than two
// coordinates are present.
func (g *Geometry) LatLon() (lat, lon float64, ok bool) {
	if g == nil || len(g.Coordinates) < 2 {
		return 0, 0, false
	}
	return g.Coordinates[1], g.Coordinates[0], true
}

// FromRecords builds a Point FeatureCollection. Records without both
// coordinates are left out.
func FromRecords(records []trail.Record) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(records)),
	}

	for _, r := range records {
		if !r.HasLocation() {
			continue
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: &Geometry{
				Type:        "Point",
				Coordinates: []float64{*r.Longitude, *r.Latitude},
			},
			Properties: map[string]interface{}{
				trail.ColumnFID:        r.FID,
				trail.ColumnAccessName: r.AccessName,
				trail.ColumnAddress:    r.Address,
				trail.ColumnBikeTrail:  r.BikeTrail,
				trail.ColumnFishing:    r.Fishing,
				trail.ColumnADATrail:   r.ADATrail,
			},
		})
	}

	return fc
}

// RecordBounds returns the bounding box of the located records.
func RecordBounds(records []trail.Record) Bounds {
	var b Bounds
	for _, r := range records {
		if r.HasLocation() {
			b.Extend(*r.Latitude, *r.Longitude)
		}
	}
	return b
}
