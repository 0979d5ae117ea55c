package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/render"
	"github.com/lox/showdown/internal/showdown"
	"github.com/lox/showdown/poker"
)

// stdinName selects standard input in a file list.
const stdinName = "-"

// RankCmd ranks every line of its inputs.
type RankCmd struct {
	Files   []string `arg:"" optional:"" name:"file" help:"Files of hand lines; stdin when none or -"`
	Summary bool     `help:"Log line counts and elapsed time when done"`

	RankFlags `embed:""`
}

// RankFlags are the ranking flags shared by rank and watch.
type RankFlags struct {
	Format  string `short:"f" help:"Output format: text, styled or json (default from config)"`
	Color   string `default:"auto" enum:"auto,always,never" help:"Colour for styled output"`
	Workers *int   `short:"w" help:"Concurrent evaluators, 0 for one per CPU (default from config)"`
	OnError string `name:"on-error" help:"Bad line handling: abort, skip or report (default from config)"`
	Strict  bool   `help:"Reject characters after the suit in a card"`
}

// rankOptions is the merged view of config, environment and flags.
type rankOptions struct {
	format  render.Format
	color   render.ColorMode
	policy  showdown.ErrorPolicy
	workers int
	strict  bool
}

// resolve applies flags on top of cfg. Flags win.
func (c *RankFlags) resolve(cfg *config.Config) (rankOptions, error) {
	opts := rankOptions{
		workers: cfg.Rank.Workers,
		strict:  cfg.Rank.Strict || c.Strict,
	}
	if c.Workers != nil {
		if *c.Workers < 0 {
			return opts, fmt.Errorf("--workers must not be negative, got %d", *c.Workers)
		}
		opts.workers = *c.Workers
	}

	format := cfg.Rank.Format
	if c.Format != "" {
		format = c.Format
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return opts, err
	}
	opts.format = f

	policy := cfg.Rank.OnError
	if c.OnError != "" {
		policy = c.OnError
	}
	p, err := showdown.ParseErrorPolicy(policy)
	if err != nil {
		return opts, err
	}
	opts.policy = p

	color := c.Color
	if color == "" {
		color = string(render.ColorAuto)
	}
	cm, err := render.ParseColorMode(color)
	if err != nil {
		return opts, err
	}
	opts.color = cm
	return opts, nil
}

func (o rankOptions) runner(logger *log.Logger) *showdown.Runner {
	return &showdown.Runner{
		Workers: o.workers,
		Policy:  o.policy,
		Parse:   parser(o.strict),
		Logger:  logger.WithPrefix("rank"),
	}
}

func (c *RankCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	opts, err := c.resolve(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	runner := opts.runner(logger)
	out := render.New(opts.format, os.Stdout, opts.color)
	sum, err := rankFiles(ctx, runner, c.Files, os.Stdin, out, logger)

	level := log.DebugLevel
	if c.Summary {
		level = log.InfoLevel
	}
	logger.Log(level, "Ranking complete",
		"lines", sum.Lines,
		"ranked", sum.Ranked,
		"ties", sum.Ties,
		"failed", sum.Failed,
		"skipped", sum.Skipped,
		"elapsed", sum.Elapsed,
	)
	for _, cat := range poker.Categories {
		if n := sum.Categories[cat]; n > 0 {
			logger.Log(level, "Winning category", "category", cat, "lines", n)
		}
	}
	if err != nil {
		return err
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d lines could not be ranked", sum.Failed, sum.Lines)
	}
	return nil
}

// rankFiles runs each input in turn, reading stdin for "-" or an empty list.
// Line numbers restart for every file.
func rankFiles(ctx context.Context, runner *showdown.Runner, files []string, stdin io.Reader, out render.Writer, logger *log.Logger) (showdown.Summary, error) {
	if len(files) == 0 {
		files = []string{stdinName}
	}

	var total showdown.Summary
	for _, name := range files {
		sum, err := rankFile(ctx, runner, name, stdin, out)
		total.Add(sum)
		if err != nil {
			if name == stdinName {
				return total, err
			}
			return total, fmt.Errorf("%s: %w", name, err)
		}
		logger.Debug("Ranked input", "file", name, "lines", sum.Lines, "elapsed", sum.Elapsed)
	}
	return total, nil
}

func rankFile(ctx context.Context, runner *showdown.Runner, name string, stdin io.Reader, out render.Writer) (showdown.Summary, error) {
	if name == stdinName {
		return runner.Run(ctx, stdin, out.Write)
	}
	f, err := os.Open(name)
	if err != nil {
		return showdown.Summary{}, err
	}
	defer f.Close()
	return runner.Run(ctx, f, out.Write)
}
