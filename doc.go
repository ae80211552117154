// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

/*
Package arclz implements the two LZ formats used by a game archive: the advanced
bit-cursor format and the legacy byte-opcode format.

Both formats describe output as a sequence of commands: a literal byte, a fill of one
repeated byte, or a back-reference into the last 8191 bytes of output. A chunk whose
first byte is 0x00 uses the advanced format; any other first byte is the first opcode
of a legacy chunk.

The advanced format interleaves 16-bit little-endian control words with raw bytes. The
decoder fetches a new word only when it needs the next control bit, so the encoder
reserves the word at the same point in the byte stream. The stream ends with an
explicit end marker. The legacy format is a plain opcode stream that ends with its input.

# Decompress

The format is detected from the first byte:

	out, err := arclz.Decompress(chunk)

To get the output size without materializing it, or the command list for inspection:

	n, err := arclz.DecompressedSize(chunk)
	cmds, err := arclz.DecodeCommands(chunk)

Decode drives any Sink, so callers can consume commands as they are decoded.

# Compress

Options may be nil (advanced format, greedy encoder). The greedy encoder reproduces the
vendor compressor byte for byte; the optimal encoder builds a suffix array per block and
picks the cheapest parse, and is never larger than greedy:

	out, err := arclz.Compress(data, nil)
	out, err := arclz.Compress(data, &arclz.CompressOptions{
		Format:   arclz.FormatLegacy,
		Strategy: arclz.StrategyOptimal,
	})

# Framing

Archive entries store a sequence of length-prefixed chunks:

	framed, err := arclz.CompressFramed(data, nil)
	data, err := arclz.DecompressFramed(framed)

SplitFrames and JoinFrames expose the chunk layer for callers that compress chunks
concurrently.
*/
package arclz
