package main

import (
	"github.com/lox/showdown/internal/server"
)

// ServeCmd runs the WebSocket ranking service.
type ServeCmd struct {
	Addr   string `help:"Server address (default from config, :8080)"`
	Strict bool   `help:"Reject characters after the suit in a card"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	addr := cfg.Serve.Address
	if c.Addr != "" {
		addr = c.Addr
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	s := server.NewServer(addr, logger, parser(cfg.Rank.Strict || c.Strict))
	return s.Serve(ctx)
}
