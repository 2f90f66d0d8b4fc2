// Package config resolves runtime settings for the docchat client.
// Settings come from three layers: built-in defaults, the persisted
// config file, and DOCCHAT_* environment variables. Environment
// variables win, the config file is next, defaults fill the rest.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
)

// Config key names within the persisted config file.
const (
	KeyAPIURL  = "api.url"
	KeyVerbose = "verbose"
)

// Config holds the resolved runtime settings.
type Config struct {
	// APIURL is the base URL of the remote document service.
	APIURL string `env:"DOCCHAT_API_URL"`

	// ConfigDir overrides the default ~/.docchat directory.
	ConfigDir string `env:"DOCCHAT_CONFIG_DIR"`

	// Timeout bounds each gateway round trip.
	Timeout time.Duration `env:"DOCCHAT_TIMEOUT" envDefault:"120s"`

	// Verbose enables debug logging.
	Verbose bool `env:"DOCCHAT_VERBOSE"`
}

// Load resolves the configuration. A .env file in the working directory
// is read first if present; its values act as environment variables.
// store may be nil, in which case only environment and defaults apply.
func Load(store driven.ConfigStore) (*Config, error) {
	// Absence of a .env file is the common case, not an error.
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if store != nil {
		if cfg.APIURL == "" {
			cfg.APIURL = store.GetString(KeyAPIURL)
		}
		if !cfg.Verbose {
			cfg.Verbose = store.GetBool(KeyVerbose)
		}
	}

	return cfg, nil
}
