// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command triebench measures the per operation latency of the keytrie
// string containers over a word list and prints percentiles and a
// sparkline histogram per phase.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	app := cli.Command{
		Name:      "triebench",
		Usage:     "latency benchmark for keytrie string containers",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Sources: cli.EnvVars("TRIEBENCH_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run the benchmark phases and print the latency report",
				Action: runBenchCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "words",
						Usage:   "word list, one word per line, gzipped if the name ends with .gz",
						Value:   "/usr/share/dict/words",
						Sources: cli.EnvVars("TRIEBENCH_WORDS"),
					},
					&cli.IntFlag{
						Name:    "count",
						Usage:   "max number of words",
						Value:   65536,
						Sources: cli.EnvVars("TRIEBENCH_COUNT"),
					},
					&cli.BoolFlag{
						Name:    "synthetic",
						Usage:   "generate the words instead of reading the word list",
						Sources: cli.EnvVars("TRIEBENCH_SYNTHETIC"),
					},
					&cli.IntFlag{
						Name:    "seed",
						Usage:   "seed for the synthetic words, 0 is random",
						Value:   1,
						Sources: cli.EnvVars("TRIEBENCH_SEED"),
					},
					&cli.IntFlag{
						Name:    "readers",
						Usage:   "number of concurrent readers in the mixed phase",
						Value:   4,
						Sources: cli.EnvVars("TRIEBENCH_READERS"),
					},
					&cli.StringFlag{
						Name:    "format",
						Usage:   "report format: table or markdown",
						Value:   "table",
						Sources: cli.EnvVars("TRIEBENCH_FORMAT"),
					},
					&cli.StringFlag{
						Name:    "metrics-listen",
						Usage:   "IP or address, and port, to serve prometheus metrics on during the run",
						Sources: cli.EnvVars("TRIEBENCH_METRICS_LISTEN"),
					},
				},
			},
			{
				Name:   "generate",
				Usage:  "write synthetic words, one per line",
				Action: runGenerateCmd,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Usage:   "number of words",
						Value:   65536,
						Sources: cli.EnvVars("TRIEBENCH_COUNT"),
					},
					&cli.IntFlag{
						Name:    "seed",
						Usage:   "seed for the generator, 0 is random",
						Value:   1,
						Sources: cli.EnvVars("TRIEBENCH_SEED"),
					},
					&cli.StringFlag{
						Name:    "out",
						Usage:   "output file, default stdout",
						Sources: cli.EnvVars("TRIEBENCH_OUT"),
					},
				},
			},
		},
	}

	return app.Run(context.Background(), args)
}

func configLogger(cmd *cli.Command, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cmd.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func runBenchCmd(ctx context.Context, cmd *cli.Command) error {
	logger := configLogger(cmd, cmd.Root().ErrWriter)

	cfg := Config{
		Logger:        logger,
		WordsFile:     cmd.String("words"),
		Count:         cmd.Int("count"),
		Synthetic:     cmd.Bool("synthetic"),
		Seed:          int64(cmd.Int("seed")),
		Readers:       cmd.Int("readers"),
		MetricsListen: cmd.String("metrics-listen"),
	}

	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	if cfg.MetricsListen != "" {
		stop := runMetrics(logger, cfg.MetricsListen)
		defer stop()
	}

	words, err := cfg.loadWords()
	if err != nil {
		return err
	}
	logger.Info("words loaded", "count", len(words), "synthetic", cfg.Synthetic)

	results, err := runBench(ctx, cfg, words)
	if err != nil {
		return err
	}

	observe(results)

	return renderReport(cmd.Root().Writer, results, format)
}

func runGenerateCmd(ctx context.Context, cmd *cli.Command) error {
	logger := configLogger(cmd, cmd.Root().ErrWriter)

	count := cmd.Int("count")
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	words, err := generateWords(int64(cmd.Int("seed")), count)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if path := cmd.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeWords(out, words); err != nil {
		return err
	}

	logger.Info("words generated", "count", len(words))
	return nil
}
