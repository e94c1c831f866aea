// Package trail holds the trailhead record shapes shared by the converters.
package trail

import (
	"fmt"
	"strconv"
	"strings"
)

// Column and property names of the trailhead attribute table.
const (
	ColumnFID        = "FID"
	ColumnAccessName = "AccessName"
	ColumnAddress    = "Address"
	ColumnBikeTrail  = "BikeTrail"
	ColumnFishing    = "FISHING"
	ColumnADATrail   = "ADAtrail"
)

// Attributes is the coordinate-free trailhead shape.
// It never serializes Latitude or Longitude keys.
type Attributes struct {
	FID        int    `json:"FID" yaml:"FID"`
	AccessName string `json:"AccessName" yaml:"AccessName"`
	Address    string `json:"Address" yaml:"Address"`
	BikeTrail  string `json:"BikeTrail" yaml:"BikeTrail"`
	Fishing    string `json:"FISHING" yaml:"FISHING"`
	ADATrail   string `json:"ADAtrail" yaml:"ADAtrail"`
}

// Record is a trailhead with optional coordinates.
// Latitude and Longitude are always emitted, as null when unknown.
type Record struct {
	Attributes `yaml:",inline"`
	Latitude   *float64 `json:"Latitude" yaml:"Latitude"`
	Longitude  *float64 `json:"Longitude" yaml:"Longitude"`
}

// HasLocation reports whether both coordinates are set.
func (r Record) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// FieldGetter looks up a named column of a tabular row.
type FieldGetter interface {
	Field(name string) (string, error)
}

// FromRow builds Attributes from a tabular row. FID must parse as an integer
// and every column must be present; text values are trimmed.
func FromRow(row FieldGetter) (Attributes, error) {
	var a Attributes

	rawFID, err := row.Field(ColumnFID)
	if err != nil {
		return a, err
	}
	fid, err := strconv.Atoi(strings.TrimSpace(rawFID))
	if err != nil {
		return a, fmt.Errorf("invalid %s %q: %w", ColumnFID, rawFID, err)
	}
	a.FID = fid

	text := []struct {
		dst  *string
		name string
	}{
		{&a.AccessName, ColumnAccessName},
		{&a.Address, ColumnAddress},
		{&a.BikeTrail, ColumnBikeTrail},
		{&a.Fishing, ColumnFishing},
		{&a.ADATrail, ColumnADATrail},
	}
	for _, f := range text {
		v, err := row.Field(f.name)
		if err != nil {
			return a, err
		}
		*f.dst = strings.TrimSpace(v)
	}

	return a, nil
}
