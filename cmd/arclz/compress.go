// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/zeebo/blake3"

	"github.com/woozymasta/arclz"
)

// compressCmd frames and compresses the input file.
func compressCmd(args []string, env *environment) error {
	flagSet, flags := newFlagSet("compress")
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

	started := time.Now()
	framed, chunks, err := compressFramed(data, cfg.CompressOptions(), cfg.Workers)
	if err != nil {
		return err
	}

	if err := flags.writeOutput(env, framed); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	env.logger.Info("compressed",
		"input", flags.input,
		"format", cfg.Format,
		"strategy", cfg.Strategy,
		"raw_bytes", len(data),
		"packed_bytes", len(framed),
		"chunks", chunks,
		"blake3", digest(data),
		"elapsed", time.Since(started),
	)

	return nil
}

// decompressCmd decodes every chunk of a framed stream.
func decompressCmd(args []string, env *environment) error {
	flagSet, flags := newFlagSet("decompress")
	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	cfg, err := flags.resolve(flagSet, env)
	if err != nil {
		return err
	}

	src, err := flags.readInput()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	started := time.Now()
	out, chunks, err := decompressFramed(src, cfg.Workers)
	if err != nil {
		return err
	}

	if err := flags.writeOutput(env, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	env.logger.Info("decompressed",
		"input", flags.input,
		"packed_bytes", len(src),
		"raw_bytes", len(out),
		"chunks", chunks,
		"blake3", digest(out),
		"elapsed", time.Since(started),
	)

	return nil
}

// compressFramed compresses data chunk by chunk on a worker pool and frames the result.
// The output is identical to arclz.CompressFramed.
func compressFramed(data []byte, opts *arclz.CompressOptions, workers int) ([]byte, int, error) {
	pieces := arclz.PartitionFrames(data, opts.FrameSize)
	payloads := make([][]byte, len(pieces))

	err := runPartitioned(len(pieces), workers, func(i int) error {
		payload, err := arclz.Compress(pieces[i], opts)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		payloads[i] = payload
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	framed, err := arclz.JoinFrames(payloads)
	if err != nil {
		return nil, 0, err
	}

	return framed, len(payloads), nil
}

// decompressFramed splits a framed stream and decodes its chunks on a worker pool.
func decompressFramed(src []byte, workers int) ([]byte, int, error) {
	payloads, err := arclz.SplitFrames(src)
	if err != nil {
		return nil, 0, err
	}

	parts := make([][]byte, len(payloads))
	err = runPartitioned(len(payloads), workers, func(i int) error {
		part, err := arclz.Decompress(payloads[i])
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		parts[i] = part
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return bytes.Join(parts, nil), len(payloads), nil
}

// digest returns the hex BLAKE3-256 of data.
func digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
