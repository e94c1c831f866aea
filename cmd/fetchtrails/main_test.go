package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/trails/internal/fetch"
	"github.com/woozymasta/trails/internal/trail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trailheads = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-105.2819, 39.9994]},
      "properties": {"OBJECTID": 12, "THNAME": "Chautauqua", "ADDRESS": "900 Baseline Rd", "BIKETRAIL": "No", "FISHING": null, "ADA": "Yes"}
    }
  ]
}`

func newEndpoint(t *testing.T, status int, body string) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv.URL
}

func TestRun(t *testing.T) {
	endpoint := newEndpoint(t, http.StatusOK, trailheads)
	out := filepath.Join(t.TempDir(), "trails.json")

	require.NoError(t, run(context.Background(), []string{"--url", endpoint, out}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var records []trail.Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, 12, records[0].FID)
	assert.Equal(t, "", records[0].Fishing)
	require.NotNil(t, records[0].Longitude)
	assert.InDelta(t, -105.2819, *records[0].Longitude, 1e-9)
}

func TestRun_WrongArgumentCount(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), nil, &stdout)

	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stdout.String(), "<output.json>")
}

func TestRun_FetchFailureWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: fetch.ErrFetch},
		{name: "not json", status: http.StatusOK, body: "<html>", wantErr: fetch.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := newEndpoint(t, tt.status, tt.body)
			out := filepath.Join(t.TempDir(), "trails.json")

			err := run(context.Background(), []string{"--url", endpoint, out}, &bytes.Buffer{})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoFileExists(t, out)
		})
	}
}

func TestRun_WriteFailure(t *testing.T) {
	endpoint := newEndpoint(t, http.StatusOK, trailheads)
	out := filepath.Join(t.TempDir(), "missing", "trails.json")

	err := run(context.Background(), []string{"--url", endpoint, out}, &bytes.Buffer{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, errUsage)
}
