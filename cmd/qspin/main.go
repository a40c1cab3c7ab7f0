// SPDX-License-Identifier: MIT

// Command qspin prints the computation traces of the qspin models:
// complex/matrix algebra, electron spin, light polarisation and two dice.
//
// Usage:
//
//	qspin [-demo spin,dice] [-log-level debug] [-pretty=false]
//
// Settings default to the QSPIN_* environment variables (and an optional
// .env file); flags override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qspin/internal/config"
	"github.com/katalvlaran/qspin/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(logger.Config{Level: "info", Pretty: true})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err = applyFlags(cfg, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log.Debug().
		Strs("demos", cfg.Demos).
		Float64("epsilon", cfg.Epsilon).
		Float64("snap", cfg.Snap).
		Msg("configuration loaded")

	if err = run(os.Stdout, cfg, log); err != nil {
		log.Error().Err(err).Msg("qspin finished with errors")
		os.Exit(1)
	}
}

// applyFlags overrides cfg with command-line flags and re-validates it.
func applyFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("qspin", flag.ContinueOnError)
	demos := fs.String("demo", strings.Join(cfg.Demos, ","), "comma-separated demos: "+strings.Join(config.AllDemos, ", ")+" or all")
	level := fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	pretty := fs.Bool("pretty", cfg.LogPretty, "human-readable log output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q: %w", fs.Args(), config.ErrInvalidConfig)
	}

	cfg.Demos = config.ParseDemos(*demos)
	cfg.LogLevel = strings.ToLower(*level)
	cfg.LogPretty = *pretty

	return cfg.Validate()
}

// run executes the configured demos in order. A failing demo is logged
// and the remaining demos still run; all failures are returned joined.
func run(w io.Writer, cfg *config.Config, log zerolog.Logger) error {
	var errs []error
	for _, name := range cfg.Demos {
		demo, ok := demos[name]
		if !ok {
			errs = append(errs, fmt.Errorf("demo %q: %w", name, config.ErrInvalidConfig))
			continue
		}
		start := time.Now()
		log.Debug().Str("demo", name).Msg("demo started")
		if err := demo(w, cfg); err != nil {
			log.Error().Err(err).Str("demo", name).Msg("demo failed")
			errs = append(errs, fmt.Errorf("demo %q: %w", name, err))
			continue
		}
		log.Debug().Str("demo", name).Dur("took", time.Since(start)).Msg("demo finished")
	}

	return errors.Join(errs...)
}
