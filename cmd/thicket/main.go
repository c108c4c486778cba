// Command thicket inspects, converts and previews TGA and PCX art.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/phanxgames/thicket"
	"github.com/phanxgames/thicket/internal/parallel"
)

type CLI struct {
	Verbose bool `help:"Log decoder details" short:"v"`
	Workers int  `help:"Parallel workers for batch commands, 0 for one per CPU" default:"0"`

	Info    InfoCmd    `cmd:"" help:"Print image dimensions"`
	Convert ConvertCmd `cmd:"" help:"Convert images to png, bmp or tiff"`
	View    ViewCmd    `cmd:"" help:"Preview an image or animation strip in a window"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("thicket"),
		kong.Description("Inspect, convert and preview TGA and PCX art."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	thicket.SetLogger(logger)

	pool := parallel.Start(cli.Workers)
	slog.Debug("worker pool", "workers", pool.Workers())
	kctx.FatalIfErrorf(kctx.Run(pool))
}
