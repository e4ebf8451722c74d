package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level money-insights.yaml configuration.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Rules     RulesConfig     `yaml:"rules"`
	Cache     CacheConfig     `yaml:"cache"`
	Normalize NormalizeConfig `yaml:"normalize"`
}

// InputConfig locates the transaction export files.
type InputConfig struct {
	// Dir is the root holding one subdirectory per source type.
	Dir string `yaml:"dir"`
}

// RulesConfig locates the category rule definition file.
type RulesConfig struct {
	Path string `yaml:"path"`
}

// CacheConfig locates the category cache file.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// NormalizeConfig controls normalization behavior.
type NormalizeConfig struct {
	// DateOffsetMinutes is added to every parsed transaction date to avoid
	// midnight collisions in downstream bucketing.
	DateOffsetMinutes int `yaml:"date_offset_minutes"`
	// DedupeByID drops repeated transaction ids across files, keeping the
	// first occurrence in discovery order.
	DedupeByID bool `yaml:"dedupe_by_id"`
}

// Load reads a money-insights.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config pointing at the conventional data layout under
// dataDir.
func Default(dataDir string) *Config {
	return &Config{
		Input: InputConfig{
			Dir: filepath.Join(dataDir, "transactions"),
		},
		Rules: RulesConfig{
			Path: filepath.Join(dataDir, "categories", "categories_conditions.csv"),
		},
		Cache: CacheConfig{
			Path: filepath.Join(dataDir, "cache", "categories_cache.csv"),
		},
		Normalize: NormalizeConfig{
			DateOffsetMinutes: 1,
		},
	}
}
