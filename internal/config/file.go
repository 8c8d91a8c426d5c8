package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/utender/utender-cli/internal/flagx"
)

// fileConfig is the DTO viper unmarshals the env-style file into.
// Durations are plain integers (seconds / milliseconds) so the file stays
// editable without duration syntax.
type fileConfig struct {
	BaseURL           string `mapstructure:"API_BASE_URL"`
	RequestTimeoutSec int    `mapstructure:"REQUEST_TIMEOUT_SEC"`
	PageLimit         int    `mapstructure:"PAGE_LIMIT"`
	SearchDebounceMs  int    `mapstructure:"SEARCH_DEBOUNCE_MS"`
	StatePath         string `mapstructure:"STATE_PATH"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
}

// parseFile overlays cfg with values from the config file. The path comes
// from -c/-config; without the flag, an app.env in the working directory is
// used when present. A missing file is not an error.
func parseFile(cfg *Config) {
	v := viper.New()
	v.SetConfigType("env")

	if path := flagx.ConfigFileFlag(); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("app")
	}

	if err := v.ReadInConfig(); err != nil {
		return
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(fc.RequestTimeoutSec) * time.Second
	}
	if fc.PageLimit > 0 {
		cfg.PageLimit = fc.PageLimit
	}
	if fc.SearchDebounceMs > 0 {
		cfg.SearchDebounce = time.Duration(fc.SearchDebounceMs) * time.Millisecond
	}
	if fc.StatePath != "" {
		cfg.StatePath = fc.StatePath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
