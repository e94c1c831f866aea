package geo

import (
	"testing"

	"github.com/woozymasta/trails/internal/trail"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	// Boulder to Denver, roughly 39 km.
	d := Distance(40.0150, -105.2705, 39.7392, -104.9903)
	assert.InDelta(t, 38_500, d, 1_000)

	assert.Zero(t, Distance(40, -105, 40, -105))
}

func TestBounds(t *testing.T) {
	var b Bounds
	assert.False(t, b.Valid)
	assert.Equal(t, b, b.Pad(0.1))

	b.Extend(40, -105)
	b.Extend(41, -106)
	b.Extend(40.5, -105.5)

	assert.True(t, b.Valid)
	assert.Equal(t, Bounds{MinLat: 40, MaxLat: 41, MinLon: -106, MaxLon: -105, Valid: true}, b)

	lat, lon := b.Center()
	assert.InDelta(t, 40.5, lat, 1e-9)
	assert.InDelta(t, -105.5, lon, 1e-9)

	p := b.Pad(0.1)
	assert.InDelta(t, 39.9, p.MinLat, 1e-9)
	assert.InDelta(t, 41.1, p.MaxLat, 1e-9)
	assert.InDelta(t, -106.1, p.MinLon, 1e-9)
	assert.InDelta(t, -104.9, p.MaxLon, 1e-9)
}

func TestRecordBoundsAndFeatures(t *testing.T) {
	lat, lon := 40.0, -105.0
	records := []trail.Record{
		{Attributes: trail.Attributes{FID: 1, AccessName: "A"}, Latitude: &lat, Longitude: &lon},
		{Attributes: trail.Attributes{FID: 2, AccessName: "B"}},
	}

	b := RecordBounds(records)
	assert.True(t, b.Valid)
	assert.Equal(t, 40.0, b.MinLat)

	fc := FromRecords(records)
	assert.Equal(t, "FeatureCollection", fc.Type)
	if assert.Len(t, fc.Features, 1) {
		f := fc.Features[0]
		assert.Equal(t, "Point", f.Geometry.Type)
		assert.Equal(t, []float64{-105.0, 40.0}, f.Geometry.Coordinates)
		assert.Equal(t, "A", f.Properties[trail.ColumnAccessName])

		gotLat, gotLon, ok := f.Geometry.LatLon()
		assert.True(t, ok)
		assert.Equal(t, lat, gotLat)
		assert.Equal(t, lon, gotLon)
	}

	var nilGeom *Geometry
	_, _, ok := nilGeom.LatLon()
	assert.False(t, ok)
}
