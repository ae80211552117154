// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// opcodeByte packs an opcode or field fragment to one byte as required by both wire layouts.
// Callers pass values whose low 8 bits are the serialized representation.
func opcodeByte(v int) byte {
	// #nosec G115 -- opcodes and split fields intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
