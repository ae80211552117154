// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// Bit costs of advanced-format commands (control bits plus raw bytes).
const (
	advancedLiteralBits   = 1 + 8
	advancedShortFillBits = 2 + advancedValueBits + 1 + 4 + 8
	advancedLongFillBits  = 2 + advancedValueBits + 1 + 12 + 8
	advancedShortHeadBits = 2 + 8
	advancedLongHeadBits  = 2 + advancedValueBits
)

// encodeAdvanced serializes cmds as one advanced-format chunk, end marker included.
func encodeAdvanced(cmds []Command, sizeHint int) ([]byte, error) {
	w := newBitWriter(sizeHint)

	for _, c := range cmds {
		switch c.Kind {
		case CommandLiteral:
			w.writeBit(false)
			w.writeByte(c.Value)

		case CommandFill:
			if c.Count < advancedMinFill || c.Count > advancedMaxFill {
				return nil, ErrCompressInternal
			}

			w.writeBit(true)
			w.writeBit(true)
			w.writeBits(advancedValueBits, advancedValueFill)

			size := c.Count - advancedMinFill
			if size <= advancedShortFillMax-advancedMinFill {
				w.writeBit(false)
				w.writeBits(4, size)
			} else {
				w.writeBit(true)
				w.writeBits(12, size)
			}
			w.writeByte(c.Value)

		case CommandBackreference:
			if c.Offset < 1 || c.Offset > windowSize {
				return nil, ErrCompressInternal
			}

			w.writeBit(true)
			if c.Offset <= advancedMaxShortOff {
				w.writeBit(false)
				w.writeBits(8, c.Offset)
			} else {
				w.writeBit(true)
				w.writeBits(advancedValueBits, c.Offset)
			}

			if err := writeCount(&w, c.Count); err != nil {
				return nil, err
			}

		default:
			return nil, ErrCompressInternal
		}
	}

	w.writeBit(true)
	w.writeBit(true)
	w.writeBits(advancedValueBits, advancedValueEnd)

	return w.bytes(), nil
}

// advancedFillBits returns the cost of a fill of the given length.
func advancedFillBits(count int) int {
	if count <= advancedShortFillMax {
		return advancedShortFillBits
	}

	return advancedLongFillBits
}

// advancedMatchBits returns the cost of a back-reference.
func advancedMatchBits(offset, count int) int {
	if offset <= advancedMaxShortOff {
		return advancedShortHeadBits + countCodeBits(count)
	}

	return advancedLongHeadBits + countCodeBits(count)
}
