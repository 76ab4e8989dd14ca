// Package config provides configuration for the tracker. Values come from
// an optional YAML file and from environment variables (a .env file in the
// current directory is loaded first, when present); environment variables
// win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the book file used when nothing else is configured.
	DefaultFile = "transactions.csv"
	// DefaultCurrency is the display currency used when nothing else is
	// configured. It affects rendering only, never the stored amounts.
	DefaultCurrency = "USD"

	defaultConfigFile = "fintrack.yaml"
)

// Config is the tracker configuration.
type Config struct {
	// File is the path to the book file.
	File string `yaml:"file"`
	// Currency is the ISO 4217 code used to display amounts.
	Currency string `yaml:"currency"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Load builds the configuration: defaults, then the YAML config file
// (FINTRACK_CONFIG or ./fintrack.yaml, optional), then the environment
// (FINTRACK_FILE, FINTRACK_CURRENCY, FINTRACK_VERBOSE).
func Load() (*Config, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		File:     DefaultFile,
		Currency: DefaultCurrency,
	}

	path := os.Getenv("FINTRACK_CONFIG")
	if path == "" {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// the config file is optional
	case err != nil:
		return nil, fmt.Errorf("could not read config file %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %q: %w", path, err)
		}
	}

	if v := os.Getenv("FINTRACK_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("FINTRACK_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("FINTRACK_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FINTRACK_VERBOSE %q: %w", v, err)
		}
		cfg.Verbose = verbose
	}

	if cfg.File == "" {
		return nil, fmt.Errorf("book file path cannot be empty")
	}
	return cfg, nil
}
