// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/arclz"
)

// Config is the arclz command configuration. Values come from Default, then an optional
// YAML file, then command-line flags.
type Config struct {
	// Format is the wire format for compress: "advanced" or "legacy".
	Format string `yaml:"format"`

	// Strategy is the encoder for compress: "greedy" or "optimal".
	Strategy string `yaml:"strategy"`

	// FrameSize is the raw bytes per chunk.
	FrameSize int `yaml:"frame_size"`

	// Workers is the number of goroutines that compress or decode chunks.
	Workers int `yaml:"workers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:    arclz.FormatAdvanced.String(),
		Strategy:  arclz.StrategyGreedy.String(),
		FrameSize: arclz.DefaultFrameSize,
		Workers:   runtime.GOMAXPROCS(0),
		LogLevel:  "info",
	}
}

// LoadFile loads configuration from a YAML file, merged over Default.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if _, err := arclz.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := arclz.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.FrameSize < 1 || c.FrameSize > arclz.MaxFrameSize {
		return fmt.Errorf("frame_size %d out of range 1..%d", c.FrameSize, arclz.MaxFrameSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}

	return nil
}

// CompressOptions converts the configuration to library options. Call Validate first.
func (c *Config) CompressOptions() *arclz.CompressOptions {
	format, _ := arclz.ParseFormat(c.Format)
	strategy, _ := arclz.ParseStrategy(c.Strategy)

	return &arclz.CompressOptions{
		Format:    format,
		Strategy:  strategy,
		FrameSize: c.FrameSize,
	}
}

// slogLevel parses LogLevel.
func (c *Config) slogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}

	return level, nil
}
