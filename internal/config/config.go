// Package config handles configuration loading for the trail viewer.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Boulder, CO. Used when no dataset has located records.
const (
	DefaultCenterLat = 40.0150
	DefaultCenterLon = -105.2705
	DefaultZoom      = 11
)

// Config represents the root configuration file structure.
type Config struct {
	Attribution string        `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Datasets    []Dataset     `yaml:"datasets" json:"datasets"`
	Center      []float64     `yaml:"center,omitempty" json:"center,omitempty"` // [Lat, Lon]
	CacheTTL    time.Duration `yaml:"cache_ttl,omitempty" json:"-"`
	CacheSize   int           `yaml:"cache_size,omitempty" json:"-"`
	Zoom        int           `yaml:"zoom,omitempty" json:"zoom"`
}

// Dataset represents a single trail JSON file produced by the converters.
type Dataset struct {
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`

	Name        string   `yaml:"name" json:"name"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Path        string   `yaml:"path" json:"-"`
	Attribution string   `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty" json:"-"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	for i, d := range cfg.Datasets {
		if d.Name == "" || d.Path == "" {
			return nil, fmt.Errorf("dataset #%d: name and path are required", i)
		}
	}

	if cfg.Center != nil && len(cfg.Center) != 2 {
		return nil, fmt.Errorf("center must be [lat, lon], got %d values", len(cfg.Center))
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = DefaultZoom
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 32
	}

	return &cfg, nil
}
