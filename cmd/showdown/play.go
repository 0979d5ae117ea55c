package main

import (
	"io"
	"os"
	"time"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/showdown"
	"github.com/lox/showdown/internal/tui"
)

// playLogFile receives logs while the TUI owns the terminal.
const playLogFile = "showdown-play.log"

// PlayCmd opens the interactive ranker.
type PlayCmd struct {
	Strict bool   `help:"Reject characters after the suit in a card"`
	Seed   *int64 `kong:"help='Deterministic RNG seed for the deal command (optional)'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	if g.Debug {
		f, err := os.Create(playLogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	dealer := showdown.NewDealer(randutil.New(randutil.Seed(c.Seed, time.Now())))
	model := tui.NewModel(logger, parser(cfg.Rank.Strict || c.Strict), dealer)
	return tui.Run(ctx, model)
}
