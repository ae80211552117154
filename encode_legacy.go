// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// Bit costs of legacy-format commands.
const (
	legacyRunHeadBits    = 8 // short verbatim header
	legacyShortFillBits  = 16
	legacyLongFillBits   = 24
	legacyShortMatchBits = 16
	legacyLongMatchBits  = 32

	legacyMatchMaxCount = legacyMatchExtBase + 0xffff
)

// encodeLegacy serializes cmds as one legacy-format chunk.
// Consecutive literals are batched into the fewest verbatim runs, and a back-reference
// that repeats the previous offset with a count of at most 31 uses the one-byte reuse opcode.
func encodeLegacy(cmds []Command, sizeHint int) ([]byte, error) {
	out := make([]byte, 0, sizeHint)
	lastOffset := 0

	for i := 0; i < len(cmds); {
		c := cmds[i]

		switch c.Kind {
		case CommandLiteral:
			j := i
			for j < len(cmds) && cmds[j].Kind == CommandLiteral && j-i < legacyVerbatimMax {
				j++
			}

			out = appendLegacyVerbatimHeader(out, j-i)
			for _, lit := range cmds[i:j] {
				out = append(out, lit.Value)
			}
			i = j
			continue

		case CommandFill:
			if c.Count < legacyMinFill || c.Count > legacyMaxFill {
				return nil, ErrCompressInternal
			}

			n := c.Count - legacyMinFill
			if c.Count <= legacyFillShortMax {
				out = append(out, opcodeByte(legacyOpFill|n))
			} else {
				out = append(out, opcodeByte(legacyOpFill|0x10|n>>8), opcodeByte(n))
			}
			out = append(out, c.Value)

		case CommandBackreference:
			if c.Offset < 1 || c.Offset > windowSize || c.Count < 1 {
				return nil, ErrCompressInternal
			}

			switch {
			case c.Offset == lastOffset && c.Count <= legacyReuseMax:
				out = append(out, opcodeByte(legacyOpReuse|c.Count))

			case c.Count < legacyMinMatch || c.Count > legacyMatchMaxCount:
				return nil, ErrCompressInternal

			case c.Count <= legacyMatchShortMax:
				nn := c.Count - legacyMinMatch
				out = append(out, opcodeByte(legacyOpMatch|nn<<5|c.Offset>>8), opcodeByte(c.Offset))

			default:
				ext := c.Count - legacyMatchExtBase
				out = append(out,
					opcodeByte(legacyOpMatch|legacyMatchEscape<<5|c.Offset>>8),
					opcodeByte(c.Offset),
					opcodeByte(ext>>8),
					opcodeByte(ext),
				)
			}
			lastOffset = c.Offset

		default:
			return nil, ErrCompressInternal
		}

		i++
	}

	return out, nil
}

// appendLegacyVerbatimHeader appends the opcode for a verbatim run of n (1..8191) bytes.
func appendLegacyVerbatimHeader(out []byte, n int) []byte {
	if n <= legacyVerbatimShortMax {
		return append(out, opcodeByte(legacyOpVerbatim|n))
	}

	return append(out, opcodeByte(legacyOpVerbatim|0x20|n>>8), opcodeByte(n))
}

// legacyFillBits returns the cost of a fill of the given length.
func legacyFillBits(count int) int {
	if count <= legacyFillShortMax {
		return legacyShortFillBits
	}

	return legacyLongFillBits
}

// legacyMatchBits returns the cost of a back-reference with a new offset.
func legacyMatchBits(count int) int {
	if count <= legacyMatchShortMax {
		return legacyShortMatchBits
	}

	return legacyLongMatchBits
}
