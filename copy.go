// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// appendBackRef appends length bytes copied from dist bytes before the end of dst.
// If dist < length, source and destination overlap; the copy must run byte-by-byte so that
// repeated bytes (RLE) are correct. The built-in copy does not handle overlapping regions
// where src precedes dst.
func appendBackRef(dst []byte, dist, length int) ([]byte, error) {
	outputPos := len(dst)
	if err := checkBackreference(dist, length, outputPos); err != nil {
		return dst, err
	}

	mPos := outputPos - dist
	if dist >= length {
		return append(dst, dst[mPos:mPos+length]...), nil
	}

	dst = growBy(dst, length)
	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}

	return dst, nil
}

// appendFill appends count copies of b to dst.
func appendFill(dst []byte, b byte, count int) []byte {
	outputPos := len(dst)
	dst = growBy(dst, count)
	fill := dst[outputPos:]
	for i := range fill {
		fill[i] = b
	}

	return dst
}

// growBy extends dst by n bytes, reallocating at most once.
func growBy(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst[:len(dst)+n]
	}

	grown := make([]byte, len(dst)+n, 2*cap(dst)+n)
	copy(grown, dst)
	return grown
}
