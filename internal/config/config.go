// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Resume          string `json:"resume,omitempty"`           // Path to résumé text file
	Posting         string `json:"posting,omitempty"`          // Path to job posting text or HTML file
	Company         string `json:"company,omitempty"`          // Hiring company name (suppressed from matching)
	TaxonomyOverlay string `json:"taxonomy_overlay,omitempty"` // Path to taxonomy overlay JSON

	// Behavior
	APIKey         string  `json:"api_key,omitempty"`         // Gemini API key (embeddings)
	EmbeddingModel string  `json:"embedding_model,omitempty"` // Embedding model name
	CacheSize      int     `json:"cache_size,omitempty"`      // Embedding cache capacity
	EvidenceCap    float64 `json:"evidence_cap,omitempty"`    // Max evidence strength per mention
	Verbose        bool    `json:"verbose,omitempty"`         // Print detailed report

	// Server
	Listen      string `json:"listen,omitempty"`       // Address for serve mode (e.g. :8080)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for score history
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	if c.EvidenceCap < 0 {
		return fmt.Errorf("config error: 'evidence_cap' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Posting != "" {
		if _, err := os.Stat(c.Posting); os.IsNotExist(err) {
			return fmt.Errorf("config error: posting file not found: %s", c.Posting)
		}
	}
	if c.TaxonomyOverlay != "" {
		if _, err := os.Stat(c.TaxonomyOverlay); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy overlay file not found: %s", c.TaxonomyOverlay)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Posting == "" {
		result.Posting = defaults.Posting
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.TaxonomyOverlay == "" {
		result.TaxonomyOverlay = defaults.TaxonomyOverlay
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.Listen == "" {
		result.Listen = defaults.Listen
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}
	if result.EvidenceCap == 0 {
		result.EvidenceCap = defaults.EvidenceCap
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
