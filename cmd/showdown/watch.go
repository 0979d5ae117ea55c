package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lox/showdown/internal/render"
	"github.com/lox/showdown/internal/showdown"
	"github.com/lox/showdown/internal/watch"
)

// WatchCmd re-ranks a file whenever it is written.
type WatchCmd struct {
	File  string `arg:"" name:"file" help:"File of hand lines to watch"`
	Clear bool   `default:"true" negatable:"" help:"Clear the terminal before each run"`

	RankFlags `embed:""`
}

func (c *WatchCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	opts, err := c.resolve(cfg)
	if err != nil {
		return err
	}
	if opts.policy == showdown.Abort {
		// A half-edited file should not stop the watch.
		opts.policy = showdown.Report
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	runner := opts.runner(logger)
	w := &watch.Watcher{
		Path:     c.File,
		Debounce: cfg.Debounce(),
		Logger:   logger,
		OnChange: func(ctx context.Context) error {
			if c.Clear {
				fmt.Print("\033[H\033[2J")
			}
			f, err := os.Open(c.File)
			if err != nil {
				return err
			}
			defer f.Close()
			sum, err := runner.Run(ctx, f, render.New(opts.format, os.Stdout, opts.color).Write)
			logger.Info("Ranked", "file", c.File, "lines", sum.Lines, "ties", sum.Ties, "failed", sum.Failed, "elapsed", sum.Elapsed)
			return err
		},
	}

	logger.Info("Watching", "file", c.File, "debounce", w.Debounce)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
