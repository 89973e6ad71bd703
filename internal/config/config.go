// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Resume   string `json:"resume,omitempty"`    // Path to resume facts JSON file
	ResumeID string `json:"resume_id,omitempty"` // Resume UUID (for DB-backed runs)
	Job      string `json:"job,omitempty"`       // Path to job description text file
	JobURL   string `json:"job_url,omitempty"`   // URL to fetch job description from

	// Services
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL

	// Scoring
	Weights *types.WeightConfig `json:"weights,omitempty"` // Component weights (defaults when omitted)

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print the formatted report and debug logs
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv fills service settings from environment variables when unset.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = os.Getenv("EMBEDDING_MODEL")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.Resume != "" && c.ResumeID != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_id' are mutually exclusive")
	}
	if c.ResumeID != "" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'resume_id' requires 'database_url'")
	}

	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: invalid weights: %w", err)
		}
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// ResolveWeights returns the configured weights, or the defaults when none
// were supplied.
func (c *Config) ResolveWeights() types.WeightConfig {
	if c.Weights == nil || c.Weights.IsZero() {
		return types.DefaultWeights()
	}
	return *c.Weights
}
