// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast
// on misconfiguration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	HubSpot HubSpotConfig
	Source  SourceConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// HubSpotConfig holds CRM API settings.
type HubSpotConfig struct {
	// AccessToken is the bearer token for the HubSpot API. Not required
	// at load time: commands that never touch the CRM (validate,
	// cleanup-products) run without it, and sync refuses to start when
	// it is missing.
	AccessToken string `env:"HUBSPOT_ACCESS_TOKEN" envAlt:"HUBSPOT_TOKEN"`

	// BaseURL is the API host (default: the production HubSpot API).
	BaseURL string `env:"HUBSPOT_BASE_URL" default:"https://api.hubapi.com"`

	// Timeout is the per-request HTTP timeout (default: 30s)
	Timeout time.Duration `env:"HUBSPOT_TIMEOUT" default:"30s"`
}

// SourceConfig holds spreadsheet source settings.
type SourceConfig struct {
	// Dir is the directory containing the Impress export workbooks
	// (default: "data for upload", matching the shared-drive layout)
	Dir string `env:"SOURCE_DIR" default:"data for upload"`

	// SampleDir is an alternate directory of reduced workbooks used
	// for rehearsal runs with --sample (default: samples)
	SampleDir string `env:"SAMPLE_DIR" default:"samples"`
}

// OutputConfig holds report artifact settings.
type OutputConfig struct {
	// Dir is where the error report workbook is written (default: output)
	Dir string `env:"OUTPUT_DIR" default:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.HubSpot.BaseURL == "" {
		errs = append(errs, "HUBSPOT_BASE_URL must not be empty")
	}
	if c.HubSpot.Timeout <= 0 {
		errs = append(errs, "HUBSPOT_TIMEOUT must be positive")
	}

	if strings.TrimSpace(c.Source.Dir) == "" {
		errs = append(errs, "SOURCE_DIR must not be empty")
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		errs = append(errs, "OUTPUT_DIR must not be empty")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be debug, info, warn, or error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be text or json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
