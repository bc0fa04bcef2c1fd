package config

import "time"

// Config holds runtime settings for the libracli client.
//
// Fields:
//   - ServerBaseURL: base URL of the library-management REST service.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabaseDSN: path/DSN of the local SQLite database holding the
//     session tokens.
//   - Verbose: enables debug logging.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabaseDSN    string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/library_management"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "libracli.db"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
