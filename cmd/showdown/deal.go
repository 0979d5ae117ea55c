package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/showdown/internal/fileutil"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/showdown"
)

// DealCmd prints random lines suitable as rank input.
type DealCmd struct {
	Tables int    `kong:"default='10',help='Number of lines to deal'"`
	Hands  int    `kong:"default='2',help='Hands per line (1 to 10)'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Out    string `short:"o" help:"Write to this file atomically instead of stdout"`
}

func (c *DealCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed, time.Now())
	if c.Seed != nil {
		logger.Debug("Using deterministic seed", "seed", seed)
	} else {
		logger.Debug("Using random seed", "seed", seed)
	}
	dealer := showdown.NewDealer(randutil.New(seed))
	if c.Out == "" {
		return deal(os.Stdout, dealer, c.Tables, c.Hands)
	}
	err = fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error {
		return deal(w, dealer, c.Tables, c.Hands)
	})
	if err != nil {
		return err
	}
	logger.Info("Dealt", "file", c.Out, "tables", c.Tables, "hands", c.Hands, "seed", seed)
	return nil
}

func deal(w io.Writer, dealer *showdown.Dealer, tables, hands int) error {
	if tables < 0 {
		return fmt.Errorf("--tables must not be negative, got %d", tables)
	}
	for range tables {
		line, err := dealer.Line(hands)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
