package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/arclz"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}

	opts := cfg.CompressOptions()
	if opts.Format != arclz.FormatAdvanced || opts.Strategy != arclz.StrategyGreedy {
		t.Fatalf("unexpected default options: %+v", opts)
	}
	if opts.FrameSize != arclz.DefaultFrameSize {
		t.Fatalf("FrameSize = %d, want %d", opts.FrameSize, arclz.DefaultFrameSize)
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arclz.yaml")
	content := "format: legacy\nstrategy: optimal\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	opts := cfg.CompressOptions()
	if opts.Format != arclz.FormatLegacy || opts.Strategy != arclz.StrategyOptimal {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if cfg.FrameSize != arclz.DefaultFrameSize {
		t.Fatalf("FrameSize should keep its default, got %d", cfg.FrameSize)
	}
	if cfg.Workers != Default().Workers {
		t.Fatalf("Workers should keep its default, got %d", cfg.Workers)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("frame_size: [1, 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "zip" }},
		{"strategy", func(c *Config) { c.Strategy = "lazy" }},
		{"frame-size-zero", func(c *Config) { c.FrameSize = 0 }},
		{"frame-size-large", func(c *Config) { c.FrameSize = arclz.MaxFrameSize + 1 }},
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"log-level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
