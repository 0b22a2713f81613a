// csvbench generates synthetic CSV data files and measures read/write
// throughput of the customcsv codec against the encoding/csv reference
// implementation.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

var cli struct {
	Verbose int `short:"v" type:"counter" help:"Increase log verbosity, can use multiple."`

	Gen   genCmd   `cmd:"" help:"Generate a synthetic CSV data file with the reference writer."`
	Bench benchCmd `cmd:"" help:"Time repeated full read/write passes and report averages."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("csvbench"),
		kong.Description("Synthetic data generation and throughput measurement for the customcsv codec."),
		kong.UsageOnError(),
	)

	setupLogging(cli.Verbose)

	ctx.FatalIfErrorf(ctx.Run())
}

func setupLogging(verbosity int) {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	})))
}
