package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Options are the global flags shared by every subcommand.
type Options struct {
	// HTTP service
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Normalization
	FeedsFile   string `long:"feeds-file" env:"FEEDS_FILE" description:"YAML feed registry (built-in registry when empty)"`
	ItemCap     int    `long:"item-cap" env:"ITEM_CAP" default:"0" description:"Maximum RSS items normalized per batch (0 = no limit)"`
	Topic       string `long:"topic" env:"TOPIC" description:"Fixed topic used as origin hint for AI completions"`
	DatabaseURL string `long:"database-url" env:"DATABASE_URL" description:"Postgres URL for the read-only next-topic lookup (optional)"`

	// Logging
	LogFile       string `long:"log-file" env:"LOG_FILE" description:"Also write logs to this file, rotated"`
	LogMaxSize    int    `long:"log-max-size" env:"LOG_MAX_SIZE" default:"10" description:"Log file size in megabytes before rotation"`
	LogMaxBackups int    `long:"log-max-backups" env:"LOG_MAX_BACKUPS" default:"3" description:"Rotated log files to keep"`
	LogMaxAge     int    `long:"log-max-age" env:"LOG_MAX_AGE" default:"28" description:"Days to keep rotated log files"`
	Debug         bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for log timestamps (e.g., UTC, America/New_York)"`
}

// LoadDotEnv reads .env style files into the environment. Variables that are
// already set win, and missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Build validates parsed options. An unknown timezone is logged and leaves the
// process timezone untouched.
func (o *Options) Build() (*Cfg, error) {
	if o.ItemCap < 0 {
		return nil, fmt.Errorf("invalid item cap %d: must not be negative", o.ItemCap)
	}

	cfg := &Cfg{
		Port:          o.Port,
		APIAccessKey:  o.APIAccessKey,
		FeedsFile:     o.FeedsFile,
		ItemCap:       o.ItemCap,
		Topic:         o.Topic,
		DatabaseURL:   o.DatabaseURL,
		LogFile:       o.LogFile,
		LogMaxSize:    o.LogMaxSize,
		LogMaxBackups: o.LogMaxBackups,
		LogMaxAge:     o.LogMaxAge,
		Debug:         o.Debug,
		Timezone:      o.Timezone,
		Version:       GetVersion(),
	}

	if loc, err := loadLocation(cfg.Timezone); err != nil {
		slog.Warn("Invalid timezone, using system default", "timezone", cfg.Timezone, "error", err)
	} else if loc != nil {
		time.Local = loc
	}

	return cfg, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
