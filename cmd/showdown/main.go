package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Rank  RankCmd  `cmd:"" default:"withargs" help:"Rank hand lines from files or stdin"`
	Deal  DealCmd  `cmd:"" help:"Print random hand lines"`
	Watch WatchCmd `cmd:"" help:"Re-rank a file every time it changes"`
	Play  PlayCmd  `cmd:"" help:"Rank hands interactively"`
	Serve ServeCmd `cmd:"" help:"Rank hands over WebSocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Pick the winning five-card poker hands on each line"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
