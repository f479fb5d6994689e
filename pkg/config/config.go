// Package config loads tool configuration from a YAML file with environment
// variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/schemascope/schemascope/pkg/apperrors"
)

// Config holds all configuration for a schema generation run.
// Values come from a YAML file (config.yaml by default) or environment
// variables; environment variables win. Secrets (the connection string and the
// Anthropic key) must only come from the environment.
type Config struct {
	Log LogConfig `yaml:"log"`

	// MongoDB connection settings
	MongoDB MongoDBConfig `yaml:"mongodb"`

	// Schema sampling settings
	Schema SchemaConfig `yaml:"schema"`

	// Output artifact settings
	Output OutputConfig `yaml:"output"`

	// Anthropic correction settings (optional)
	Anthropic AnthropicConfig `yaml:"anthropic"`
}

// LogConfig controls process logging.
type LogConfig struct {
	Level string `yaml:"level" env:"SCHEMASCOPE_LOG_LEVEL" env-default:"info"`
}

// MongoDBConfig holds the source database settings.
type MongoDBConfig struct {
	// URI is the full connection string. Secret - environment only.
	URI      string `yaml:"-" env:"MONGODB_URI"`
	Database string `yaml:"database" env:"MONGODB_DATABASE" env-default:""`
}

// SchemaConfig holds sampling and field-filter settings.
type SchemaConfig struct {
	SampleSize    int      `yaml:"sample_size" env:"SCHEMA_SAMPLE_SIZE" env-default:"100"`
	IncludeFields []string `yaml:"include_fields" env:"SCHEMA_INCLUDE_FIELDS"`
	ExcludeFields []string `yaml:"exclude_fields" env:"SCHEMA_EXCLUDE_FIELDS"`
}

// OutputConfig holds artifact location settings.
type OutputConfig struct {
	Directory string `yaml:"directory" env:"OUTPUT_DIRECTORY" env-default:"schemas"`
	// Format is the artifact file extension, e.g. "md" or "mmd".
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"md"`
}

// AnthropicConfig holds settings for the optional correction pass.
// An empty APIKey disables the pass entirely.
type AnthropicConfig struct {
	// APIKey is secret - environment only.
	APIKey         string        `yaml:"-" env:"ANTHROPIC_API_KEY"`
	Model          string        `yaml:"model" env:"ANTHROPIC_MODEL" env-default:"claude-3-opus-20240229"`
	MaxTokens      int           `yaml:"max_tokens" env:"ANTHROPIC_MAX_TOKENS" env-default:"4096"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"ANTHROPIC_REQUEST_TIMEOUT" env-default:"60s"`
}

// Load reads configuration from the given YAML file with environment variable
// overrides and validates the required fields.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields required before any database access.
func (c *Config) Validate() error {
	if c.MongoDB.URI == "" {
		return apperrors.ErrMissingDatabaseURI
	}
	if c.MongoDB.Database == "" {
		return apperrors.ErrMissingDatabase
	}
	if c.Output.Directory == "" {
		return apperrors.ErrMissingOutputDir
	}
	if c.Schema.SampleSize <= 0 {
		return fmt.Errorf("schema sample_size must be positive, got %d", c.Schema.SampleSize)
	}
	return nil
}

// CorrectionEnabled reports whether the Anthropic correction pass should run.
func (c *Config) CorrectionEnabled() bool {
	return c.Anthropic.APIKey != ""
}
