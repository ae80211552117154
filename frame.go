// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import (
	"encoding/binary"
	"fmt"
)

// A framed stream is a sequence of chunks. Each chunk is a little-endian u16 length that
// counts its own two bytes, the compressed payload, and a continuation byte that is zero
// on the last chunk.

const (
	// frameHeaderSize is the size of the chunk length prefix.
	frameHeaderSize = 2

	// MaxFramePayload is the largest compressed payload one chunk can carry.
	MaxFramePayload = 0xffff - frameHeaderSize

	// MaxFrameSize is the largest raw chunk size CompressFramed accepts; the worst-case
	// expansion of either format still fits MaxFramePayload.
	MaxFrameSize = 0xe000
)

// SplitFrames returns the compressed payloads of a framed stream.
// Bytes after the last chunk are ignored; use SplitFramesN to learn where the stream ended.
func SplitFrames(src []byte) ([][]byte, error) {
	payloads, _, err := SplitFramesN(src)
	return payloads, err
}

// SplitFramesN returns the compressed payloads of a framed stream and the number of bytes
// the stream occupies. Payloads alias src.
func SplitFramesN(src []byte) ([][]byte, int, error) {
	var payloads [][]byte
	pos := 0

	for {
		if pos+frameHeaderSize > len(src) {
			return nil, 0, fmt.Errorf("%w: chunk length prefix at %d", ErrTruncated, pos)
		}

		size := int(binary.LittleEndian.Uint16(src[pos:]))
		if size < frameHeaderSize {
			return nil, 0, fmt.Errorf("%w: length %d at %d", ErrChunkHeader, size, pos)
		}
		pos += frameHeaderSize

		n := size - frameHeaderSize
		if n > len(src)-pos {
			return nil, 0, fmt.Errorf("%w: chunk payload of %d bytes at %d", ErrTruncated, n, pos)
		}
		payloads = append(payloads, src[pos:pos+n])
		pos += n

		if pos >= len(src) {
			return nil, 0, fmt.Errorf("%w: continuation byte at %d", ErrTruncated, pos)
		}
		more := src[pos]
		pos++

		if more == 0 {
			return payloads, pos, nil
		}
		if pos >= len(src) {
			return nil, 0, fmt.Errorf("%w: continuation at %d announces a missing chunk", ErrChunkHeader, pos-1)
		}
	}
}

// JoinFrames frames compressed payloads into one stream. At least one payload is required.
func JoinFrames(payloads [][]byte) ([]byte, error) {
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: no chunks", ErrChunkHeader)
	}

	total := 0
	for i, p := range payloads {
		if len(p) > MaxFramePayload {
			return nil, fmt.Errorf("%w: chunk %d has %d bytes", ErrFrameTooLarge, i, len(p))
		}
		total += frameHeaderSize + len(p) + 1
	}

	out := make([]byte, 0, total)
	for i, p := range payloads {
		out = binary.LittleEndian.AppendUint16(out, uint16(len(p)+frameHeaderSize)) //nolint:gosec // G115: checked against MaxFramePayload
		out = append(out, p...)

		more := byte(1)
		if i == len(payloads)-1 {
			more = 0
		}
		out = append(out, more)
	}

	return out, nil
}

// PartitionFrames splits raw input into chunk-sized pieces. Empty input yields one empty
// piece, so a framed stream always has at least one chunk. frameSize is clamped to
// 1..MaxFrameSize; zero selects DefaultFrameSize.
func PartitionFrames(src []byte, frameSize int) [][]byte {
	frameSize = normalizeFrameSize(frameSize)
	if len(src) == 0 {
		return [][]byte{src}
	}

	pieces := make([][]byte, 0, (len(src)+frameSize-1)/frameSize)
	for len(src) > 0 {
		n := min(frameSize, len(src))
		pieces = append(pieces, src[:n])
		src = src[n:]
	}

	return pieces
}

// CompressFramed compresses src as a framed stream, one chunk per opts.FrameSize raw bytes.
// opts may be nil.
func CompressFramed(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	pieces := PartitionFrames(src, opts.FrameSize)
	payloads := make([][]byte, len(pieces))
	for i, piece := range pieces {
		payload, err := Compress(piece, opts)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		payloads[i] = payload
	}

	return JoinFrames(payloads)
}

// DecompressFramed decodes every chunk of a framed stream and concatenates the output.
func DecompressFramed(src []byte) ([]byte, error) {
	payloads, err := SplitFrames(src)
	if err != nil {
		return nil, err
	}

	var out []byte
	for i, payload := range payloads {
		part, err := Decompress(payload)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		out = append(out, part...)
	}

	return out, nil
}

// normalizeFrameSize clamps a configured frame size.
func normalizeFrameSize(frameSize int) int {
	switch {
	case frameSize == 0:
		return DefaultFrameSize
	case frameSize < 1:
		return 1
	case frameSize > MaxFrameSize:
		return MaxFrameSize
	default:
		return frameSize
	}
}
