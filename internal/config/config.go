// Package config loads the wordvec CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file the CLI looks for when -config is not set.
const DefaultPath = "wordvec.yaml"

// Embeddings configures where raw word vectors are read from.
type Embeddings struct {
	// Path of the embedding file (GloVe text or CSV).
	Path string `yaml:"path"`
	// Format is one of auto, glove, csv. Empty means auto.
	Format string `yaml:"format"`
}

// Cache configures the optional SQLite store cache.
type Cache struct {
	// Path of the SQLite database holding a previously saved store. When set
	// and present on disk, the CLI loads it instead of reparsing embeddings.
	Path string `yaml:"path"`
}

// Config is the root CLI configuration.
type Config struct {
	Embeddings Embeddings `yaml:"embeddings"`
	Cache      Cache      `yaml:"cache"`
	// TopN is the default result count for neighbors and analogy queries.
	TopN int `yaml:"top_n"`
}

// Load reads a config from path. An empty path falls back to DefaultPath,
// and a missing file yields defaults rather than an error so the CLI works
// with flags alone.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Embeddings: Embeddings{Format: "auto"},
		TopN:       10,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Embeddings.Format == "" {
		cfg.Embeddings.Format = "auto"
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}
}
