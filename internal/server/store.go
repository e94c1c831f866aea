package server

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/woozymasta/trails/internal/trail"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog/log"
)

// Store loads dataset files on demand and keeps them for a while, so files
// regenerated by the converters show up without a restart.
type Store struct {
	cache gcache.Cache
	paths map[string]string
}

// NewStore creates a store over dataset name -> file path.
func NewStore(paths map[string]string, size int, ttl time.Duration) *Store {
	s := &Store{paths: paths}
	s.cache = gcache.New(size).
		LRU().
		Expiration(ttl).
		LoaderFunc(func(key interface{}) (interface{}, error) {
			return s.load(key.(string))
		}).
		Build()
	return s
}

// Records returns the records of a dataset.
func (s *Store) Records(name string) ([]trail.Record, error) {
	v, err := s.cache.Get(name)
	if err != nil {
		return nil, err
	}
	return v.([]trail.Record), nil
}

func (s *Store) load(name string) ([]trail.Record, error) {
	path, ok := s.paths[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []trail.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if records == nil {
		records = []trail.Record{}
	}

	log.Debug().
		Str("dataset", name).
		Str("path", path).
		Int("records", len(records)).
		Msg("Dataset loaded")

	return records, nil
}
