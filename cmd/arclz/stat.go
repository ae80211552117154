// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/woozymasta/arclz"
)

// sizeReport is one row of the stat table.
type sizeReport struct {
	name  string
	bytes int
}

// statCmd compresses the input with every format and strategy, checks each round trip
// and prints the framed sizes next to lz4 and zstd baselines.
func statCmd(args []string, env *environment) error {
	flagSet, flags := newFlagSet("stat")
	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	cfg, err := flags.resolve(flagSet, env)
	if err != nil {
		return err
	}

	data, err := flags.readInput()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	reports, err := encoderSizes(data, cfg)
	if err != nil {
		return err
	}

	baselines, err := baselineSizes(data)
	if err != nil {
		return err
	}
	reports = append(reports, baselines...)

	w := tabwriter.NewWriter(env.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "input\t%d bytes\tblake3 %s\n", len(data), digest(data))
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%d bytes\t%s\n", r.name, r.bytes, ratio(r.bytes, len(data)))
	}

	return w.Flush()
}

// encoderSizes returns the framed size for every format and strategy, verifying that
// each stream decodes back to data.
func encoderSizes(data []byte, cfg *Config) ([]sizeReport, error) {
	var reports []sizeReport

	for _, format := range []arclz.Format{arclz.FormatAdvanced, arclz.FormatLegacy} {
		for _, strategy := range []arclz.Strategy{arclz.StrategyGreedy, arclz.StrategyOptimal} {
			opts := &arclz.CompressOptions{Format: format, Strategy: strategy, FrameSize: cfg.FrameSize}
			framed, _, err := compressFramed(data, opts, cfg.Workers)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", format, strategy, err)
			}

			out, _, err := decompressFramed(framed, cfg.Workers)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: decoding: %w", format, strategy, err)
			}
			if !bytes.Equal(out, data) {
				return nil, fmt.Errorf("%s/%s: round trip mismatch", format, strategy)
			}

			reports = append(reports, sizeReport{name: format.String() + "/" + strategy.String(), bytes: len(framed)})
		}
	}

	return reports, nil
}

// baselineSizes returns the lz4 block and zstd sizes of data. Incompressible input
// reports its raw size.
func baselineSizes(data []byte) ([]sizeReport, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if written == 0 {
		written = len(data)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer encoder.Close()

	return []sizeReport{
		{name: "lz4", bytes: written},
		{name: "zstd", bytes: len(encoder.EncodeAll(data, nil))},
	}, nil
}

// ratio formats packed/raw as a percentage.
func ratio(packed, raw int) string {
	if raw == 0 {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", 100*float64(packed)/float64(raw))
}
