package fetch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/woozymasta/trails/internal/geo"
	"github.com/woozymasta/trails/internal/trail"
)

// Property names of the trailheads layer.
const (
	PropObjectID  = "OBJECTID"
	PropName      = "THNAME"
	PropAddress   = "ADDRESS"
	PropBikeTrail = "BIKETRAIL"
	PropFishing   = "FISHING"
	PropADA       = "ADA"
)

// Flatten maps one feature to a record. It never fails: absent text
// properties become "" and a missing point leaves both coordinates nil.
func Flatten(f geo.Feature) trail.Record {
	props := f.Properties

	rec := trail.Record{
		Attributes: trail.Attributes{
			FID:        intProperty(props, PropObjectID),
			AccessName: stringProperty(props, PropName),
			Address:    stringProperty(props, PropAddress),
			BikeTrail:  stringProperty(props, PropBikeTrail),
			Fishing:    stringProperty(props, PropFishing),
			ADATrail:   stringProperty(props, PropADA),
		},
	}

	if lat, lon, ok := f.Geometry.LatLon(); ok {
		rec.Latitude = &lat
		rec.Longitude = &lon
	}

	return rec
}

// stringProperty returns the trimmed text form of a property, "" when absent or null.
func stringProperty(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// intProperty returns a numeric property as int, 0 when absent or not integral.
func intProperty(props map[string]interface{}, key string) int {
	switch v := props[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(v)
	}
	return 0
}
