package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/showdown"
	"github.com/lox/showdown/poker"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"showdown.hcl" help:"Path to HCL config file (missing file means defaults)"`
	Debug   bool             `help:"Enable debug logging"`
}

// setup loads config and environment overrides and builds the logger.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level, g.Debug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// newLogger builds the process logger. Each invocation gets a short run id so
// interleaved logs from concurrent runs can be told apart.
func newLogger(w io.Writer, level string, debug bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if debug {
		lvl = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return logger.With("run", uuid.NewString()[:8]), nil
}

// parser picks the hand parser for the strictness setting.
func parser(strict bool) showdown.ParseFunc {
	if strict {
		return poker.ParseHandStrict
	}
	return poker.ParseHand
}
