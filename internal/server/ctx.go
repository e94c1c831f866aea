package server

import (
	"os"
	"sort"

	"github.com/woozymasta/trails/internal/config"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config              *config.Config
	Store               *Store
	DatasetNameResolver map[string]string
	IndexHTML           []byte
}

// NewServerContext initializes the context and processes the dataset configuration.
// It filters out datasets whose file is missing and sets up the name resolver.
func NewServerContext(cfg *config.Config, indexHTML []byte) *ServerContext {
	log.Info().Int("config_datasets_count", len(cfg.Datasets)).Msg("Initializing server context")

	resolver := make(map[string]string)
	paths := make(map[string]string)
	valid := make([]config.Dataset, 0, len(cfg.Datasets))

	for i := range cfg.Datasets {
		ds := &cfg.Datasets[i]

		if ds.Attribution == "" {
			ds.Attribution = cfg.Attribution
		}
		if ds.Title == "" {
			ds.Title = ds.Name
		}

		info, err := os.Stat(ds.Path)
		if err != nil || info.IsDir() {
			log.Warn().
				Str("dataset", ds.Name).
				Str("path", ds.Path).
				Msg("Skipping dataset: file not found")
			continue
		}

		resolver[ds.Name] = ds.Name
		for _, alias := range ds.Aliases {
			resolver[alias] = ds.Name
		}
		paths[ds.Name] = ds.Path

		log.Debug().
			Str("dataset", ds.Name).
			Str("path", ds.Path).
			Msg("Dataset validated and added to context")

		valid = append(valid, *ds)
	}

	cfg.Datasets = valid

	sort.Slice(cfg.Datasets, func(i, j int) bool {
		idxI, idxJ := 999999, 999999
		if cfg.Datasets[i].Index != nil {
			idxI = *cfg.Datasets[i].Index
		}
		if cfg.Datasets[j].Index != nil {
			idxJ = *cfg.Datasets[j].Index
		}
		if idxI != idxJ {
			return idxI < idxJ
		}

		return cfg.Datasets[i].Name < cfg.Datasets[j].Name
	})

	log.Info().
		Int("valid_datasets_count", len(cfg.Datasets)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:              cfg,
		Store:               NewStore(paths, cfg.CacheSize, cfg.CacheTTL),
		DatasetNameResolver: resolver,
		IndexHTML:           indexHTML,
	}
}

// dataset returns the configuration of a resolved dataset name.
func (s *ServerContext) dataset(requested string) (config.Dataset, bool) {
	name, ok := s.DatasetNameResolver[requested]
	if !ok {
		return config.Dataset{}, false
	}
	for _, ds := range s.Config.Datasets {
		if ds.Name == name {
			return ds, true
		}
	}
	return config.Dataset{}, false
}
