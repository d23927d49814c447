// Package config loads API credentials for the camoo-payment CLI from the
// environment (optionally seeded by a .env file) and an optional YAML
// profile file. Environment variables win over the file.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envAPIKey     = "CAMOO_API_KEY"
	envAPISecret  = "CAMOO_API_SECRET"
	envAPIVersion = "CAMOO_API_VERSION"
	envDebug      = "CAMOO_DEBUG"
)

var ErrMissingCredentials = errors.New("config: CAMOO_API_KEY and CAMOO_API_SECRET are required")

type Config struct {
	APIKey     string `yaml:"api_key"`
	APISecret  string `yaml:"api_secret"`
	APIVersion string `yaml:"api_version"`
	Debug      bool   `yaml:"debug"`
}

// Load resolves the configuration. path points at a YAML profile file and
// may be empty; a missing .env file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(envAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(envAPISecret); v != "" {
		cfg.APISecret = v
	}
	if v := os.Getenv(envAPIVersion); v != "" {
		cfg.APIVersion = v
	}
	if v := os.Getenv(envDebug); v == "true" || v == "1" {
		cfg.Debug = true
	}

	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrMissingCredentials
	}
	return cfg, nil
}
