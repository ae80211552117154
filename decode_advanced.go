// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// decodeAdvanced runs the bit-cursor state machine over src, which starts with the
// 0x00 discriminator, and emits every command to sink until the end marker.
func decodeAdvanced(src []byte, sink Sink) error {
	r, err := newBitReader(src)
	if err != nil {
		return err
	}

	for {
		isCommand, err := r.readBit()
		if err != nil {
			return err
		}

		// 0: one verbatim byte.
		if !isCommand {
			lit, err := r.readSlice(1)
			if err != nil {
				return err
			}
			if err := sink.Literal(lit); err != nil {
				return err
			}
			continue
		}

		isExtended, err := r.readBit()
		if err != nil {
			return err
		}

		// 10: short match, offset in one raw byte.
		if !isExtended {
			offset, err := r.readBits(8)
			if err != nil {
				return err
			}

			count, err := readCount(&r)
			if err != nil {
				return err
			}

			if err := sink.Backreference(offset, count); err != nil {
				return err
			}
			continue
		}

		// 11: 13-bit value selects end marker, fill or long match.
		value, err := r.readBits(advancedValueBits)
		if err != nil {
			return err
		}

		switch value {
		case advancedValueEnd:
			return nil

		case advancedValueFill:
			wide, err := r.readBit()
			if err != nil {
				return err
			}

			sizeBits := uint(4)
			if wide {
				sizeBits = 12
			}

			size, err := r.readBits(sizeBits)
			if err != nil {
				return err
			}

			b, err := r.readByte()
			if err != nil {
				return err
			}

			if err := sink.Fill(b, advancedMinFill+size); err != nil {
				return err
			}

		default:
			count, err := readCount(&r)
			if err != nil {
				return err
			}

			if err := sink.Backreference(value, count); err != nil {
				return err
			}
		}
	}
}

// readCount decodes the count code: the position of the first set bit among four
// selects 2..5; otherwise one more bit picks 6 + 3 bits or 14 + 8 bits.
func readCount(r *bitReader) (int, error) {
	for count := advancedMinMatch; count <= countUnaryMax; count++ {
		b, err := r.readBit()
		if err != nil {
			return 0, err
		}
		if b {
			return count, nil
		}
	}

	short, err := r.readBit()
	if err != nil {
		return 0, err
	}

	if short {
		v, err := r.readBits(3)
		if err != nil {
			return 0, err
		}
		return countShortBase + v, nil
	}

	v, err := r.readBits(8)
	if err != nil {
		return 0, err
	}

	return countLongBase + v, nil
}

// writeCount is the encoder-side mirror of readCount.
func writeCount(w *bitWriter, count int) error {
	switch {
	case count < advancedMinMatch || count > countLongMax:
		return ErrCompressInternal

	case count <= countUnaryMax:
		for i := advancedMinMatch; i < count; i++ {
			w.writeBit(false)
		}
		w.writeBit(true)

	case count <= countShortMax:
		writeZeroBits(w, 4)
		w.writeBit(true)
		w.writeBits(3, count-countShortBase)

	default:
		writeZeroBits(w, 4)
		w.writeBit(false)
		w.writeBits(8, count-countLongBase)
	}

	return nil
}

// writeZeroBits appends n clear control bits.
func writeZeroBits(w *bitWriter, n int) {
	for range n {
		w.writeBit(false)
	}
}

// countCodeBits returns the control-stream cost of a count, in bits.
func countCodeBits(count int) int {
	switch {
	case count <= countUnaryMax:
		return count - 1
	case count <= countShortMax:
		return 5 + 3
	default:
		return 5 + 8
	}
}
