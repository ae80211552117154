// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression, framing and compression.
var (
	// ErrTruncated is returned when the byte or bit cursor reads past the end of input.
	ErrTruncated = errors.New("truncated input")
	// ErrInvalidBackreference is returned when a back-reference offset is 0 or points
	// before the start of the output. Use errors.As with *BackreferenceError for details.
	ErrInvalidBackreference = errors.New("invalid backreference")
	// ErrChunkHeader is returned for a chunk length prefix below 2 or a continuation
	// byte that announces a chunk which is not there.
	ErrChunkHeader = errors.New("unrecognized chunk header")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrUnsupportedFormat is returned when CompressOptions names an unknown Format or Strategy.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrFrameTooLarge is returned when a compressed payload does not fit a chunk length prefix.
	ErrFrameTooLarge = errors.New("chunk payload exceeds 65533 bytes")

	// ErrCompressInternal is returned when the compressor hits an internal invariant violation
	// (e.g. a command outside the format bounds). Callers can use errors.Is(err, arclz.ErrCompressInternal).
	ErrCompressInternal = errors.New("internal compressor error")
)

// BackreferenceError describes a rejected back-reference.
// It matches ErrInvalidBackreference with errors.Is.
type BackreferenceError struct {
	Offset   int // requested backward distance
	Count    int // requested length
	Produced int // bytes produced before the command
}

// Error implements error.
func (e *BackreferenceError) Error() string {
	return fmt.Sprintf("%s: offset=%d count=%d produced=%d",
		ErrInvalidBackreference, e.Offset, e.Count, e.Produced)
}

// Unwrap returns ErrInvalidBackreference.
func (e *BackreferenceError) Unwrap() error {
	return ErrInvalidBackreference
}

// checkBackreference validates offset against the bytes produced so far.
func checkBackreference(offset, count, produced int) error {
	if offset <= 0 || offset > produced {
		return &BackreferenceError{Offset: offset, Count: count, Produced: produced}
	}

	return nil
}
