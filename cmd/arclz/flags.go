// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

// environment carries process-wide state into subcommands.
type environment struct {
	logger *slog.Logger
	level  *slog.LevelVar
	stdout io.Writer
}

// commonFlags are the flags shared by every subcommand.
type commonFlags struct {
	configPath string
	input      string
	output     string
	format     string
	strategy   string
	frameSize  int
	workers    int
}

// newFlagSet returns a flag set for a subcommand with the shared flags registered.
func newFlagSet(name string) (*pflag.FlagSet, *commonFlags) {
	flags := &commonFlags{}
	flagSet := pflag.NewFlagSet("arclz "+name, pflag.ContinueOnError)

	flagSet.StringVar(&flags.configPath, "config", "", "YAML configuration file")
	flagSet.StringVarP(&flags.input, "input", "i", "-", "input file (- for stdin)")
	flagSet.StringVarP(&flags.output, "output", "o", "-", "output file (- for stdout)")
	flagSet.StringVar(&flags.format, "format", "", "wire format: advanced or legacy")
	flagSet.StringVar(&flags.strategy, "strategy", "", "encoder: greedy or optimal")
	flagSet.IntVar(&flags.frameSize, "frame-size", 0, "raw bytes per chunk")
	flagSet.IntVarP(&flags.workers, "workers", "j", 0, "number of worker goroutines")

	return flagSet, flags
}

// parseFlags parses args. It reports false when the caller should stop without error,
// which happens after --help.
func parseFlags(flagSet *pflag.FlagSet, args []string) (bool, error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// resolve loads the configuration, applies flags that were set explicitly and
// configures the log level.
func (f *commonFlags) resolve(flagSet *pflag.FlagSet, env *environment) (*Config, error) {
	cfg := Default()
	if f.configPath != "" {
		loaded, err := LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagSet.Changed("format") {
		cfg.Format = f.format
	}
	if flagSet.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if flagSet.Changed("frame-size") {
		cfg.FrameSize = f.frameSize
	}
	if flagSet.Changed("workers") {
		cfg.Workers = f.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if os.Getenv("ARCLZ_DEBUG") == "" {
		level, _ := cfg.slogLevel()
		env.level.Set(level)
	}

	env.logger.Debug("configuration resolved",
		"format", cfg.Format,
		"strategy", cfg.Strategy,
		"frame_size", cfg.FrameSize,
		"workers", cfg.Workers,
	)

	return cfg, nil
}

// readInput reads the input file, or stdin for "-".
func (f *commonFlags) readInput() ([]byte, error) {
	if f.input == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(f.input)
}

// writeOutput writes data to the output file, or to stdout for "-".
func (f *commonFlags) writeOutput(env *environment, data []byte) error {
	if f.output == "-" {
		_, err := env.stdout.Write(data)
		return err
	}

	return os.WriteFile(f.output, data, 0o644) //nolint:gosec // G306: output files are not secret
}
