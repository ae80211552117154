// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import (
	"encoding/binary"
	"math/bits"
)

// The greedy match finder keeps, for every digraph (two-byte value) seen so far, a linked
// list of the positions where it occurred within the window. Lists live in two fixed
// arenas of positions: head holds the newest position per digraph and prev links each
// position to the previous one with the same digraph.

const (
	digraphCount  = 1 << 16 // number of distinct two-byte keys
	chainRingSize = 8192    // ring of prev links; power of two above windowSize
	chainRingMask = chainRingSize - 1
	chainNil      = -1 // marks an empty head or the end of a list
)

// hashChain owns all mutable match-finder state for one compression run.
type hashChain struct {
	head [digraphCount]int32  // head is the newest position for each digraph.
	prev [chainRingSize]int32 // prev is the previous position with the same digraph, indexed by pos&chainRingMask.
	src  []byte               // src is the full input being compressed.
}

// reset prepares the chain for a new input.
func (h *hashChain) reset(src []byte) {
	for i := range h.head {
		h.head[i] = chainNil
	}
	h.src = src
}

// insert records pos as the newest occurrence of its digraph.
// The last input byte has no digraph and is skipped.
func (h *hashChain) insert(pos int) {
	if pos+1 >= len(h.src) {
		return
	}

	key := digraph(h.src, pos)
	h.prev[pos&chainRingMask] = h.head[key]
	h.head[key] = int32(pos) //nolint:gosec // G115: positions fit int32 for chunk-sized inputs
}

// findLongest walks the chain for the digraph at pos, newest first, and returns the
// longest match within the window, capped at limit and the end of input. Only a strictly
// longer candidate replaces the best one, so ties keep the nearest offset. It must be
// called before pos itself is inserted.
//
// A prev slot is only overwritten by the position chainRingSize later, which is already
// outside the window when the walk would reach it, so stale links are never followed.
func (h *hashChain) findLongest(pos, limit int) (offset, length int) {
	if pos+1 >= len(h.src) {
		return 0, 0
	}

	limit = min(limit, len(h.src)-pos)
	for cand := h.head[digraph(h.src, pos)]; cand != chainNil; {
		c := int(cand)
		dist := pos - c
		if dist > windowSize {
			break
		}

		if n := countEqualBytes(h.src, c, pos, limit); n > length {
			offset, length = dist, n
			if n == limit {
				break
			}
		}

		cand = h.prev[c&chainRingMask]
	}

	return offset, length
}

// digraph returns the two-byte key at pos.
func digraph(src []byte, pos int) int {
	return int(src[pos]) | int(src[pos+1])<<8
}

// countEqualBytes returns how many bytes starting at left and right are equal, up to limit.
// right must be the later position and right+limit must not exceed len(src).
func countEqualBytes(src []byte, left, right, limit int) int {
	matched := 0

	// Use 8-byte words for the hot part of comparisons.
	for matched+8 <= limit {
		diff := binary.LittleEndian.Uint64(src[left+matched:]) ^ binary.LittleEndian.Uint64(src[right+matched:])
		if diff != 0 {
			return matched + bits.TrailingZeros64(diff)>>3
		}
		matched += 8
	}

	// Finish the tail byte-by-byte.
	for matched < limit && src[left+matched] == src[right+matched] {
		matched++
	}

	return matched
}
