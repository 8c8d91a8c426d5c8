package config

import (
	"flag"
	"os"
	"time"

	"github.com/utender/utender-cli/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags:
//
//	-a string   portal base URL
//	-t int      request timeout in seconds
//	-l int      tender-list page size
//	-d int      search debounce in milliseconds
//	-s string   state database path
//	-v string   log level
//
// Args are filtered through flagx so the -c/-config flag handled by the
// file stage does not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l", "-d", "-s", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "portal base URL")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (seconds)")
	fs.IntVar(&cfg.PageLimit, "l", cfg.PageLimit, "tender list page size")
	debounceMs := fs.Int("d", int(cfg.SearchDebounce.Milliseconds()), "search debounce (milliseconds)")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "state database path")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	cfg.SearchDebounce = time.Duration(*debounceMs) * time.Millisecond
}
