package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotNumeric is returned for a coordinate value that is not a JSON number,
// such as a quoted "40.5".
var ErrNotNumeric = errors.New("value is not numeric")

// Coordinate keys of the coordinates file entries.
const (
	KeyLatitude  = "Latitude"
	KeyLongitude = "Longitude"
)

// Coordinate is one entry of the coordinates file. Values are kept raw so a
// malformed entry only fails the row it is paired with.
type Coordinate map[string]json.RawMessage

// Value decodes the named key. A JSON null yields a nil pointer.
func (c Coordinate) Value(key string) (*float64, error) {
	raw, ok := c[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingField, key)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s %s: %w", key, raw, ErrNotNumeric)
	}
	return &v, nil
}

// ReadCoordinates parses a JSON array of {Latitude, Longitude} objects.
func ReadCoordinates(data []byte) ([]Coordinate, error) {
	var coords []Coordinate
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, fmt.Errorf("decode coordinates: %w", err)
	}
	if coords == nil {
		coords = []Coordinate{}
	}
	return coords, nil
}

// ReadCoordinatesFile loads a coordinates file from disk.
func ReadCoordinatesFile(path string) ([]Coordinate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadCoordinates(data)
}
