// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// Wire-format constants shared by the advanced (bit-cursor) and legacy (byte-opcode) formats.

// Window and match bounds.
const (
	windowSize  = 8191 // maximum backward distance (13-bit offset)
	maxMatchLen = 269  // longest back-reference any encoder emits
)

// Advanced format bounds.
const (
	advancedDiscriminator = 0x00 // first byte of every advanced chunk
	advancedFirstWordBit  = 8    // first control word only exposes bits 8..15

	advancedMinMatch     = 2
	advancedMaxMatch     = 269
	advancedMaxShortOff  = 255 // short-match offset lives in one byte
	advancedMinFill      = 14
	advancedShortFillMax = advancedMinFill + 0x0f  // 4-bit size field
	advancedMaxFill      = advancedMinFill + 0xfff // 12-bit size field

	advancedValueBits = 13 // width of the extended control value
	advancedValueEnd  = 0  // extended value: end of stream
	advancedValueFill = 1  // extended value: fill command
)

// Count code thresholds (advanced format).
const (
	countUnaryMax  = 5  // 2..5 are unary
	countShortBase = 6  // 6 + 3 bits
	countShortMax  = 13
	countLongBase  = 14 // 14 + 8 bits
	countLongMax   = 269
)

// Legacy format opcode markers and bounds.
const (
	legacyOpVerbatim = 0x00 // 00x nnnnn
	legacyOpFill     = 0x40 // 010x nnnn
	legacyOpReuse    = 0x60 // 011 nnnnn
	legacyOpMatch    = 0x80 // 1nn ooooo

	legacyVerbatimShortMax = 0x1f   // 5-bit length
	legacyVerbatimMax      = 0x1fff // 13-bit length
	legacyMinFill          = 4
	legacyFillShortMax     = legacyMinFill + 0x0f  // 4-bit length field
	legacyMaxFill          = legacyMinFill + 0xfff // 12-bit length field
	legacyMinMatch         = 4
	legacyMatchShortMax    = 6 // nn in 0..2
	legacyMatchEscape      = 3 // nn == 3 announces a 16-bit count extension
	legacyMatchExtBase     = 7
	legacyReuseMax         = 0x1f
)
