// Package server handles HTTP requests and middleware of the trail viewer.
package server

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/trails/internal/config"
	"github.com/woozymasta/trails/internal/geo"
	"github.com/woozymasta/trails/internal/trail"

	"github.com/rs/zerolog/log"
)

const (
	etagCap       = 64
	defaultRadius = 5000.0 // metres
)

// DatasetInfo describes a dataset in the /api/datasets listing.
type DatasetInfo struct {
	config.Dataset
	Bounds  *geo.Bounds `json:"bounds,omitempty"`
	Center  []float64   `json:"center,omitempty"` // [Lat, Lon]
	Records int         `json:"records"`
}

// ViewInfo is the /api/datasets response.
type ViewInfo struct {
	Datasets []DatasetInfo `json:"datasets"`
	Center   []float64     `json:"center"`
	Zoom     int           `json:"zoom"`
}

// near restricts results to a radius around a point.
type near struct {
	Lat, Lon, Radius float64
}

// Routes registers every handler and wraps them with the request logger.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/datasets", s.HandleDatasetsList)
	mux.HandleFunc("/api/trails/", s.HandleTrails)
	mux.HandleFunc("/trails/", s.HandleGeoJSON)
	mux.HandleFunc("/data/", s.HandleData)
	mux.HandleFunc("/", s.HandleIndex)

	return RequestLogger(mux)
}

// HandleDatasetsList serves the available datasets with their extent.
func (s *ServerContext) HandleDatasetsList(w http.ResponseWriter, r *http.Request) {
	view := ViewInfo{
		Datasets: make([]DatasetInfo, 0, len(s.Config.Datasets)),
		Center:   []float64{config.DefaultCenterLat, config.DefaultCenterLon},
		Zoom:     s.Config.Zoom,
	}
	if len(s.Config.Center) == 2 {
		view.Center = s.Config.Center
	}

	for _, ds := range s.Config.Datasets {
		info := DatasetInfo{Dataset: ds}

		records, err := s.Store.Records(ds.Name)
		if err != nil {
			log.Error().Err(err).Str("dataset", ds.Name).Msg("Failed to load dataset")
		} else {
			info.Records = len(records)
			if b := geo.RecordBounds(records); b.Valid {
				lat, lon := b.Center()
				info.Bounds = &b
				info.Center = []float64{lat, lon}
			}
		}

		view.Datasets = append(view.Datasets, info)
	}

	writeJSON(w, http.StatusOK, view)
}

// HandleTrails serves the filtered records of a dataset.
// Path: /api/trails/{dataset}
func (s *ServerContext) HandleTrails(w http.ResponseWriter, r *http.Request) {
	records, ok := s.recordsFor(w, r, strings.TrimPrefix(r.URL.Path, "/api/trails/"))
	if !ok {
		return
	}

	filter, nearby, err := parseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := filter.Apply(records)
	if nearby != nil {
		out = withinRadius(out, *nearby)
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleGeoJSON serves a dataset as a Point FeatureCollection.
// Path: /trails/{dataset}.geojson
func (s *ServerContext) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/trails/")
	if !strings.HasSuffix(name, ".geojson") {
		http.NotFound(w, r)
		return
	}

	records, ok := s.recordsFor(w, r, strings.TrimSuffix(name, ".geojson"))
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(geo.FromRecords(records))
}

// HandleData serves the raw dataset file.
// Path: /data/{dataset}.json
func (s *ServerContext) HandleData(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/data/")
	if !strings.HasSuffix(name, ".json") {
		http.NotFound(w, r)
		return
	}

	ds, ok := s.dataset(strings.TrimSuffix(name, ".json"))
	if !ok || !s.serveFile(w, r, ds.Path, "application/json") {
		http.NotFound(w, r)
	}
}

// HandleIndex serves the map viewer page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && strings.Contains(r.URL.Path, ".") {
		http.NotFound(w, r)
		return
	}

	etag := contentETag(s.IndexHTML)

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// recordsFor resolves a dataset and loads it, answering 404/500 itself.
func (s *ServerContext) recordsFor(w http.ResponseWriter, r *http.Request, requested string) ([]trail.Record, bool) {
	ds, ok := s.dataset(requested)
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}

	records, err := s.Store.Records(ds.Name)
	if err != nil {
		log.Error().Err(err).Str("dataset", ds.Name).Msg("Failed to load dataset")
		http.Error(w, "dataset unavailable", http.StatusInternalServerError)
		return nil, false
	}

	return records, true
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}

// parseQuery reads the trail filter and the optional near/radius restriction.
func parseQuery(q url.Values) (trail.Filter, *near, error) {
	f := trail.Filter{
		Search:    strings.TrimSpace(q.Get("search")),
		BikeTrail: isTrue(q.Get("bike")),
		Fishing:   isTrue(q.Get("fishing")),
	}

	for _, v := range q["difficulty"] {
		for _, d := range strings.Split(v, ",") {
			if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
				f.Difficulty = append(f.Difficulty, d)
			}
		}
	}

	raw := q.Get("near")
	if raw == "" {
		return f, nil, nil
	}

	latStr, lonStr, found := strings.Cut(raw, ",")
	if !found {
		return f, nil, fmt.Errorf("near must be lat,lon")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return f, nil, fmt.Errorf("invalid near latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return f, nil, fmt.Errorf("invalid near longitude: %w", err)
	}

	n := &near{Lat: lat, Lon: lon, Radius: defaultRadius}
	if rs := q.Get("radius"); rs != "" {
		if n.Radius, err = strconv.ParseFloat(rs, 64); err != nil || n.Radius <= 0 {
			return f, nil, fmt.Errorf("radius must be a positive number of metres")
		}
	}

	return f, n, nil
}

// contentETag derives a strong ETag from the page bytes.
func contentETag(b []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return fmt.Sprintf(`"%x"`, h.Sum64())
}

func withinRadius(records []trail.Record, n near) []trail.Record {
	out := make([]trail.Record, 0, len(records))
	for _, r := range records {
		if r.HasLocation() && geo.Distance(n.Lat, n.Lon, *r.Latitude, *r.Longitude) <= n.Radius {
			out = append(out, r)
		}
	}
	return out
}

func isTrue(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
