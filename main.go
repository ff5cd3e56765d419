package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hgaensbauer/ddsdata/config"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const usage = `Usage: %s [flags] [<path> <ptsperfile>]

Generates the sine/cosine test pattern for the DDS board and writes it as
data0.dat, data1.dat, ... into <path>, <ptsperfile> records per file.
Without arguments the data goes to %s, %d records per file.

Flags:
`

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the os.Exit, it returns the process exit code.
func run(name string, args []string, stdout, stderr io.Writer) int {
	defaults := config.Default()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintf(stdout, usage, name, defaults.Dir, defaults.PointsPerFile)
		fs.PrintDefaults()
	}
	legacy := fs.Bool("legacy", false, "write .txt files with a trailing comma on every line")
	verify := fs.Bool("verify", false, "read the files back after writing and compare them to the samples")
	dbPath := fs.String("db", "", "record every written address in this SQLite database")
	configPath := fs.String("config", "", "read defaults from this YAML file")
	debug := fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stdout, err)
		fs.Usage()
		return 1
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().Timestamp().
		Logger()
	ctx := logger.WithContext(context.Background())

	cfg := defaults
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error().Err(err).Str("path", *configPath).Msg("loading config")
			return 1
		}
	}
	if *legacy {
		cfg.Format = "legacy"
	}
	if *dbPath != "" {
		cfg.DB = *dbPath
	}

	switch fs.NArg() {
	case 0:
	case 2:
		if fs.Arg(0) == "" {
			fmt.Fprintln(stdout, "path must be a non-empty string")
			return 1
		}
		n, err := strconv.Atoi(fs.Arg(1))
		if err != nil || n < 1 {
			fmt.Fprintf(stdout, "ptsperfile must be a positive integer, got %q\n", fs.Arg(1))
			return 1
		}
		cfg.Dir, cfg.PointsPerFile = fs.Arg(0), n
	default:
		fs.Usage()
		return 1
	}

	opts, err := cfg.Options()
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	if opts.PointsPerFile < 1 {
		fmt.Fprintf(stdout, "ptsperfile must be a positive integer, got %d\n", opts.PointsPerFile)
		return 1
	}

	res, err := GenerateFiles(ctx, opts, cfg.DB, *verify)
	if err != nil {
		logger.Error().Err(err).Msg("generating data files")
		return 1
	}

	fmt.Fprintf(stdout, "%d files successfully written\n", len(res.Files))
	return 0
}
