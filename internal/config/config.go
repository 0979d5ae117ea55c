// Package config loads showdown settings from an HCL file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/showdown/internal/render"
	"github.com/lox/showdown/internal/showdown"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "showdown.hcl"

// Environment variable overrides, applied after the file.
const (
	EnvWorkers  = "SHOWDOWN_WORKERS"
	EnvFormat   = "SHOWDOWN_FORMAT"
	EnvOnError  = "SHOWDOWN_ON_ERROR"
	EnvLogLevel = "SHOWDOWN_LOG_LEVEL"
)

// Config represents the complete showdown configuration
type Config struct {
	Rank  *RankSettings  `hcl:"rank,block"`
	Log   *LogSettings   `hcl:"log,block"`
	Serve *ServeSettings `hcl:"serve,block"`
	Watch *WatchSettings `hcl:"watch,block"`
}

// RankSettings controls batch ranking.
type RankSettings struct {
	Workers int    `hcl:"workers,optional"`
	OnError string `hcl:"on_error,optional"`
	Format  string `hcl:"format,optional"`
	Strict  bool   `hcl:"strict,optional"`
}

// LogSettings controls the logger.
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// ServeSettings configures the websocket ranking service.
type ServeSettings struct {
	Address string `hcl:"address,optional"`
}

// WatchSettings configures file watching.
type WatchSettings struct {
	DebounceMs int `hcl:"debounce_ms,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Rank == nil {
		c.Rank = &RankSettings{}
	}
	if c.Rank.OnError == "" {
		c.Rank.OnError = string(showdown.Abort)
	}
	if c.Rank.Format == "" {
		c.Rank.Format = string(render.Text)
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Serve == nil {
		c.Serve = &ServeSettings{}
	}
	if c.Serve.Address == "" {
		c.Serve.Address = ":8080"
	}
	if c.Watch == nil {
		c.Watch = &WatchSettings{}
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = 100
	}
}

// ApplyEnv overrides settings from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		c.Rank.Workers = n
	}
	if v := getenv(EnvFormat); v != "" {
		c.Rank.Format = v
	}
	if v := getenv(EnvOnError); v != "" {
		c.Rank.OnError = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return c.Validate()
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if c.Rank.Workers < 0 {
		return fmt.Errorf("rank.workers must not be negative, got %d", c.Rank.Workers)
	}
	if _, err := showdown.ParseErrorPolicy(c.Rank.OnError); err != nil {
		return fmt.Errorf("rank.on_error: %w", err)
	}
	if _, err := render.ParseFormat(c.Rank.Format); err != nil {
		return fmt.Errorf("rank.format: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMs)
	}
	return nil
}

// Debounce returns the watch debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}
