// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import "fmt"

// Compress compresses src into one chunk. opts may be nil (advanced format, greedy encoder).
// The output always decompresses to src; the greedy strategy is byte-identical to the
// vendor compressor and the optimal strategy is never larger than greedy.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	switch opts.Strategy {
	case StrategyGreedy:
		return CompressGreedy(src, opts.Format)
	case StrategyOptimal:
		return CompressOptimal(src, opts.Format)
	default:
		return nil, fmt.Errorf("%w: strategy %s", ErrUnsupportedFormat, opts.Strategy)
	}
}

// CompressGreedy compresses src with the hash-chain greedy encoder.
func CompressGreedy(src []byte, format Format) ([]byte, error) {
	p, ok := paramsFor(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return encodeCommands(greedyCommands(src, p), format, len(src))
}

// CompressOptimal compresses src with the suffix-array encoder and a shortest-path parse.
// The greedy encoding is also produced and returned when it is not larger.
func CompressOptimal(src []byte, format Format) ([]byte, error) {
	p, ok := paramsFor(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	greedy, err := encodeCommands(greedyCommands(src, p), format, len(src))
	if err != nil {
		return nil, err
	}

	optimal, err := encodeCommands(optimalCommands(src, format, p), format, len(src))
	if err != nil {
		return nil, err
	}

	if len(greedy) <= len(optimal) {
		return greedy, nil
	}

	return optimal, nil
}

// EncodeCommands serializes a command list in the given format.
// Commands outside the format bounds are rejected with ErrCompressInternal.
func EncodeCommands(cmds []Command, format Format) ([]byte, error) {
	return encodeCommands(cmds, format, len(cmds))
}

// encodeCommands dispatches to the format serializer.
func encodeCommands(cmds []Command, format Format, sizeHint int) ([]byte, error) {
	switch format {
	case FormatAdvanced:
		return encodeAdvanced(cmds, sizeHint)
	case FormatLegacy:
		return encodeLegacy(cmds, sizeHint)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
