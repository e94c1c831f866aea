package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCoordinates(t *testing.T) {
	coords, err := ReadCoordinates([]byte(`[
		{"Latitude": 40.0, "Longitude": -105.28},
		{"Latitude": null, "Longitude": -105.1},
		{"Longitude": -105.2},
		{"Latitude": "north", "Longitude": 1},
		{"Latitude": "40.5", "Longitude": -105.2}
	]`))
	require.NoError(t, err)
	require.Len(t, coords, 5)

	lat, err := coords[0].Value(KeyLatitude)
	require.NoError(t, err)
	require.NotNil(t, lat)
	assert.InDelta(t, 40.0, *lat, 1e-9)

	lat, err = coords[1].Value(KeyLatitude)
	require.NoError(t, err)
	assert.Nil(t, lat)

	_, err = coords[2].Value(KeyLatitude)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = coords[3].Value(KeyLatitude)
	assert.ErrorIs(t, err, ErrNotNumeric)
	assert.NotErrorIs(t, err, ErrMissingField)

	_, err = coords[4].Value(KeyLatitude)
	require.ErrorIs(t, err, ErrNotNumeric)
	assert.Contains(t, err.Error(), `Latitude "40.5": value is not numeric`)
}

func TestReadCoordinates_Invalid(t *testing.T) {
	_, err := ReadCoordinates([]byte(`{"Latitude": 1}`))
	assert.Error(t, err)

	coords, err := ReadCoordinates([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, coords)
}
