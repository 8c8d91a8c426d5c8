// Package config assembles the CLI runtime settings in three layers:
// built-in defaults, an env-style config file, then command-line flags.
// Later layers win.
package config

import "time"

// Config holds runtime settings for the uTender CLI.
type Config struct {
	// BaseURL is the portal root, e.g. "http://localhost:3000". The
	// "/api" prefix is added by the API client.
	BaseURL string
	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration
	// PageLimit is the fixed tender-list page size.
	PageLimit int
	// SearchDebounce is the quiet interval before search text is promoted.
	SearchDebounce time.Duration
	// StatePath is the sqlite file holding persisted session state.
	StatePath string
	// LogLevel is one of debug/info/warn/error.
	LogLevel string
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.RequestTimeout = 15 * time.Second
	c.PageLimit = 50
	c.SearchDebounce = 500 * time.Millisecond
	c.StatePath = "utender.db"
	c.LogLevel = "info"
}

// Load constructs a Config from defaults, config file and flags, in that
// order of precedence (lowest first).
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
