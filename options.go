// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import "fmt"

// Format selects a wire format.
type Format uint8

// Wire formats. The zero value is the advanced format.
const (
	FormatAdvanced Format = iota // bit-cursor format, first byte 0x00
	FormatLegacy                 // byte-opcode format
)

// String returns the human-readable name of a format.
func (f Format) String() string {
	switch f {
	case FormatAdvanced:
		return "advanced"
	case FormatLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// ParseFormat parses a format from its string representation.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "advanced":
		return FormatAdvanced, nil
	case "legacy":
		return FormatLegacy, nil
	default:
		return 0, fmt.Errorf("unknown format: %q", name)
	}
}

// Strategy selects an encoder.
type Strategy uint8

// Encoder strategies. The zero value is the reference-compatible greedy encoder.
const (
	StrategyGreedy  Strategy = iota // hash-chain greedy parse, bit-identical to the vendor compressor
	StrategyOptimal                 // suffix-array candidates + DP parse, never larger than greedy
)

// String returns the human-readable name of a strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	case StrategyOptimal:
		return "optimal"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ParseStrategy parses a strategy from its string representation.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "greedy":
		return StrategyGreedy, nil
	case "optimal":
		return StrategyOptimal, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %q", name)
	}
}

// DefaultFrameSize is the number of raw bytes CompressFramed puts in each chunk.
const DefaultFrameSize = 0x8000

// CompressOptions configures compression.
type CompressOptions struct {
	// Format is the wire format to produce.
	Format Format
	// Strategy is the encoder to use.
	Strategy Strategy
	// FrameSize is the raw bytes per chunk for CompressFramed (0 = DefaultFrameSize).
	FrameSize int
}

// DefaultCompressOptions returns options for the reference-compatible advanced encoder.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		Format:    FormatAdvanced,
		Strategy:  StrategyGreedy,
		FrameSize: DefaultFrameSize,
	}
}

// DecompressOptions configures DecompressFromReader.
type DecompressOptions struct {
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
