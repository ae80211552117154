// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import "fmt"

// Advanced streams interleave 16-bit little-endian control words with raw bytes.
// A control word is fetched (or reserved by the writer) at the current byte position
// the moment the next control bit is needed, and its bits are consumed from bit 0 to
// bit 15. The first word of a stream only carries bits 8..15: its low byte is the
// 0x00 format discriminator and is never read as a control bit.

// bitReader reads control bits and raw bytes from an advanced stream.
type bitReader struct {
	src  []byte // src is the whole chunk.
	pos  int    // pos is the next unread byte.
	word uint16 // word is the cached control word.
	bit  uint   // bit is the next bit index in word; 16 means exhausted.
}

// newBitReader positions a reader on the first control word of src.
func newBitReader(src []byte) (bitReader, error) {
	r := bitReader{src: src}
	if err := r.refill(); err != nil {
		return r, err
	}

	r.bit = advancedFirstWordBit
	return r, nil
}

// refill loads the next control word from the byte stream.
func (r *bitReader) refill() error {
	if r.pos+2 > len(r.src) {
		return fmt.Errorf("%w: control word at %d", ErrTruncated, r.pos)
	}

	r.word = uint16(r.src[r.pos]) | uint16(r.src[r.pos+1])<<8
	r.pos += 2
	r.bit = 0

	return nil
}

// readBit reads one control bit.
func (r *bitReader) readBit() (bool, error) {
	if r.bit >= 16 {
		if err := r.refill(); err != nil {
			return false, err
		}
	}

	v := r.word>>r.bit&1 == 1
	r.bit++

	return v, nil
}

// readBits reads an n-bit value: n%8 control bits (most significant first) form the
// high part, followed by n/8 raw bytes taken directly from the byte stream.
func (r *bitReader) readBits(n uint) (int, error) {
	v := 0
	for range n % 8 {
		b, err := r.readBit()
		if err != nil {
			return 0, err
		}

		v <<= 1
		if b {
			v |= 1
		}
	}

	for range n / 8 {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}

		v = v<<8 | int(b)
	}

	return v, nil
}

// readByte reads one raw byte from the stream.
func (r *bitReader) readByte() (byte, error) {
	if r.pos >= len(r.src) {
		return 0, fmt.Errorf("%w: byte at %d", ErrTruncated, r.pos)
	}

	b := r.src[r.pos]
	r.pos++

	return b, nil
}

// readSlice reads n raw bytes from the stream without copying.
func (r *bitReader) readSlice(n int) ([]byte, error) {
	if r.pos+n > len(r.src) {
		return nil, fmt.Errorf("%w: %d bytes at %d", ErrTruncated, n, r.pos)
	}

	p := r.src[r.pos : r.pos+n]
	r.pos += n

	return p, nil
}

// bitWriter is the encoder-side mirror of bitReader.
type bitWriter struct {
	out     []byte // out is the stream written so far.
	wordPos int    // wordPos is the index of the reserved control word.
	bit     uint   // bit is the next free bit in the reserved word; 16 means full.
}

// newBitWriter starts a stream with the discriminator/first control word reserved.
func newBitWriter(capHint int) bitWriter {
	out := make([]byte, 2, max(capHint, 2))
	out[0] = advancedDiscriminator

	return bitWriter{out: out, bit: advancedFirstWordBit}
}

// writeBit appends one control bit, reserving a new word when the current one is full.
func (w *bitWriter) writeBit(v bool) {
	if w.bit >= 16 {
		w.wordPos = len(w.out)
		w.out = append(w.out, 0, 0)
		w.bit = 0
	}

	if v {
		w.out[w.wordPos+int(w.bit/8)] |= 1 << (w.bit % 8)
	}
	w.bit++
}

// writeBits appends the n-bit value v in readBits layout.
func (w *bitWriter) writeBits(n uint, v int) {
	byteCount := n / 8
	high := v >> (8 * byteCount)
	for i := int(n%8) - 1; i >= 0; i-- {
		w.writeBit(high>>i&1 == 1)
	}

	for i := int(byteCount) - 1; i >= 0; i-- {
		w.writeByte(opcodeByte(v >> (8 * i)))
	}
}

// writeByte appends one raw byte.
func (w *bitWriter) writeByte(b byte) {
	w.out = append(w.out, b)
}

// bytes returns the finished stream.
func (w *bitWriter) bytes() []byte {
	return w.out
}
