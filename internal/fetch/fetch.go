// Package fetch downloads trailheads from an ArcGIS feature service query
// endpoint and flattens the GeoJSON features into records.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/woozymasta/trails/internal/geo"
	"github.com/woozymasta/trails/internal/trail"
)

// DefaultEndpoint is the Boulder County trailheads layer query URL.
const DefaultEndpoint = "https://maps.bouldercounty.org/arcgis/rest/services/ParksOpenSpace/REC_BoulderAreaTrailheads/MapServer/0/query"

// Errors wrapped by Fetch so callers can tell transport and payload problems apart.
var (
	ErrFetch  = errors.New("error fetching data from the API")
	ErrDecode = errors.New("error decoding JSON response")
)

// Internal structure for the ArcGIS error envelope, sent with HTTP 200.
type arcgisError struct {
	Error *struct {
		Message string   `json:"message"`
		Details []string `json:"details"`
		Code    int      `json:"code"`
	} `json:"error"`
}

// QueryURL appends the fixed "all fields, all records, as GeoJSON" query.
func QueryURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("outFields", "*")
	q.Set("where", "1=1")
	q.Set("f", "geojson")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Fetch issues a single GET against endpoint and flattens every feature.
// Nothing is returned unless the whole response was fetched and decoded.
func Fetch(ctx context.Context, client *http.Client, endpoint string) ([]trail.Record, error) {
	fc, err := fetchCollection(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}

	records := make([]trail.Record, 0, len(fc.Features))
	for _, f := range fc.Features {
		records = append(records, Flatten(f))
	}

	return records, nil
}

func fetchCollection(ctx context.Context, client *http.Client, endpoint string) (geo.FeatureCollection, error) {
	target, err := QueryURL(endpoint)
	if err != nil {
		return geo.FeatureCollection{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return geo.FeatureCollection{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return geo.FeatureCollection{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return geo.FeatureCollection{}, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return geo.FeatureCollection{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var remote arcgisError
	if err := json.Unmarshal(body, &remote); err != nil {
		return geo.FeatureCollection{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if remote.Error != nil {
		return geo.FeatureCollection{}, fmt.Errorf("%w: remote error %d: %s",
			ErrFetch, remote.Error.Code, remote.Error.Message)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fc geo.FeatureCollection
	if err := dec.Decode(&fc); err != nil {
		return geo.FeatureCollection{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return fc, nil
}
