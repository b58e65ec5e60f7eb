package main

import (
	"log/slog"
	"os"

	"hdrchecker/generate"
	"hdrchecker/list"
	"hdrchecker/parallel"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose  bool            `help:"Log debug output" short:"v"`
	Workers  int             `help:"Number of images written in parallel, 0 for one per CPU" default:"0"`
	Config   kong.ConfigFlag `help:"Load flag defaults from a JSON file"`
	Generate generate.CLICmd `cmd:"" help:"Render the mosaic and single-patch test images"`
	List     list.CLICmd     `cmd:"" help:"List built-in charts, color spaces, adaptations and transfers"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("hdrchecker"),
		kong.Description("Renders ColorChecker charts as 16-bit HDR test images."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "hdrchecker.json"),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(c.Workers)
	if err := kctx.Run(pool.Do, pool.Wait); err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
