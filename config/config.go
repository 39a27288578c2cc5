// Package config loads the ledger configuration from YAML and builds the
// blob store it describes.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hupe1980/mstledger"
	"github.com/hupe1980/mstledger/codec"
	"github.com/hupe1980/mstledger/footer"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendLocal  = "local"
	BackendMemory = "memory"
	BackendMinIO  = "minio"
	BackendS3     = "s3"
)

// Config holds all ledger configuration.
type Config struct {
	Store       StoreConfig       `yaml:"store"`
	Codec       string            `yaml:"codec"` // none, zstd, lz4
	Logging     LoggingConfig     `yaml:"logging"`
	Paths       PathsConfig       `yaml:"paths"`
	PrettyPrint PrettyPrintConfig `yaml:"pretty_print"`
}

// StoreConfig selects and configures the blob store holding the logs.
type StoreConfig struct {
	Backend string `yaml:"backend"` // local, memory, minio, s3
	Root    string `yaml:"root"`    // local backend root directory

	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`

	// Remote request throttling; 0 disables it.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// LoggingConfig configures the ledger logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// PathsConfig locates the files the ledger reads besides its logs.
type PathsConfig struct {
	Inputs      string `yaml:"inputs"`       // generated inputs root
	TrackedRevs string `yaml:"tracked_revs"` // tracked-revisions file
}

// PrettyPrintConfig configures how input paths are rendered.
type PrettyPrintConfig struct {
	Fast bool `yaml:"fast"` // skip footer extraction
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendLocal,
			Root:    ".",
			Region:  "us-east-1",
			Burst:   1,
		},
		Codec: "none",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Paths: PathsConfig{
			Inputs:      "inputs/",
			TrackedRevs: "tools/conf/tracked_revs",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies MSTLEDGER_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("MSTLEDGER_ROOT"); v != "" {
		c.Store.Root = v
	}
	if v := os.Getenv("MSTLEDGER_BACKEND"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("MSTLEDGER_BUCKET"); v != "" {
		c.Store.Bucket = v
	}
	if v := os.Getenv("MSTLEDGER_ENDPOINT"); v != "" {
		c.Store.Endpoint = v
	}
	if v := os.Getenv("MSTLEDGER_CODEC"); v != "" {
		c.Codec = v
	}
	if v := os.Getenv("MSTLEDGER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MSTLEDGER_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid MSTLEDGER_RPS %q: %w", v, err)
		}
		c.Store.RequestsPerSecond = rps
	}
	return nil
}

// Validate checks the configuration for values no component accepts.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendLocal:
		if c.Store.Root == "" {
			return fmt.Errorf("store.root is required for the %s backend", BackendLocal)
		}
	case BackendMemory:
	case BackendMinIO:
		if c.Store.Endpoint == "" {
			return fmt.Errorf("store.endpoint is required for the %s backend", BackendMinIO)
		}
		fallthrough
	case BackendS3:
		if c.Store.Bucket == "" {
			return fmt.Errorf("store.bucket is required for the %s backend", c.Store.Backend)
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Store.RequestsPerSecond < 0 {
		return fmt.Errorf("store.requests_per_second must not be negative, got %g", c.Store.RequestsPerSecond)
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		return fmt.Errorf("unknown codec %q (known: %s)", c.Codec, strings.Join(codec.Names(), ", "))
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unknown logging level %q", s)
	}
	return level, nil
}

// NewLogger builds the configured logger. verbose forces debug level.
func (c *Config) NewLogger(verbose bool) *mstledger.Logger {
	level, err := parseLevel(c.Logging.Level)
	if err != nil || verbose {
		level = slog.LevelDebug
	}
	if c.Logging.Format == "json" {
		return mstledger.NewJSONLogger(level)
	}
	return mstledger.NewTextLogger(level)
}

// PrettyPrintMode returns the configured footer.Mode.
func (c *Config) PrettyPrintMode() footer.Mode {
	if c.PrettyPrint.Fast {
		return footer.ModeFast
	}
	return footer.ModeFooter
}
