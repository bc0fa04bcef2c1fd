package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envConfig collects the LIBRACLI_* environment variables. Zero values mean
// "not set" and leave the previous layer's value in place.
type envConfig struct {
	ServerBaseURL  string        `envconfig:"SERVER_BASE_URL"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	DatabaseDSN    string        `envconfig:"DATABASE_DSN"`
	Verbose        *bool         `envconfig:"VERBOSE"`
}

// parseEnv overlays cfg with environment variables, loading a local .env
// file first when one exists.
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var ec envConfig
	if err := envconfig.Process("libracli", &ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.Verbose != nil {
		cfg.Verbose = *ec.Verbose
	}
}
