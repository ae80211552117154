// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import "fmt"

// decodeLegacy runs the byte-opcode state machine over src until the input is exhausted.
// Each iteration consumes one opcode byte and dispatches on its top bits; the only state
// carried between iterations is the last back-reference offset.
func decodeLegacy(src []byte, sink Sink) error {
	var (
		inPos      int
		lastOffset int
	)

	for inPos < len(src) {
		op := src[inPos]
		inPos++

		switch {
		// 1nn ooooo oooooooo: back-reference with a new 13-bit offset.
		case op&legacyOpMatch != 0:
			lo, err := readCompressedByte(src, &inPos)
			if err != nil {
				return err
			}

			offset := int(op&0x1f)<<8 | int(lo)
			nn := int(op>>5) & 0x3
			count := legacyMinMatch + nn
			if nn == legacyMatchEscape {
				ext, err := readCompressedBE16(src, &inPos)
				if err != nil {
					return err
				}
				count = legacyMatchExtBase + int(ext)
			}

			lastOffset = offset
			if err := sink.Backreference(offset, count); err != nil {
				return err
			}

		// 011 nnnnn: back-reference reusing the last offset.
		case op&0xe0 == legacyOpReuse:
			if err := sink.Backreference(lastOffset, int(op&0x1f)); err != nil {
				return err
			}

		// 010x nnnn: fill.
		case op&0xe0 == legacyOpFill:
			n := int(op & 0x0f)
			if op&0x10 != 0 {
				lo, err := readCompressedByte(src, &inPos)
				if err != nil {
					return err
				}
				n = n<<8 | int(lo)
			}

			b, err := readCompressedByte(src, &inPos)
			if err != nil {
				return err
			}

			if err := sink.Fill(b, legacyMinFill+n); err != nil {
				return err
			}

		// 00x nnnnn: verbatim run.
		default:
			n := int(op & 0x1f)
			if op&0x20 != 0 {
				lo, err := readCompressedByte(src, &inPos)
				if err != nil {
					return err
				}
				n = n<<8 | int(lo)
			}

			if inPos+n > len(src) {
				return fmt.Errorf("%w: verbatim run of %d at %d", ErrTruncated, n, inPos)
			}

			if err := sink.Literal(src[inPos : inPos+n]); err != nil {
				return err
			}
			inPos += n
		}
	}

	return nil
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, fmt.Errorf("%w: byte at %d", ErrTruncated, *inPos)
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedBE16 reads one high-byte-first uint16 from src at *inPos and advances *inPos by 2.
// The legacy format extends every field as n<<8 | next, so multi-byte counts follow the same order.
func readCompressedBE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, fmt.Errorf("%w: 16-bit field at %d", ErrTruncated, *inPos)
	}

	hi := uint16(src[*inPos])
	lo := uint16(src[*inPos+1])
	*inPos += 2

	return hi<<8 | lo, nil
}
