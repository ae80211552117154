// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// Decode decodes one compressed chunk, emitting every command to sink.
// The first byte selects the format: 0x00 is the advanced (bit-cursor) format, anything
// else is the legacy (byte-opcode) format with that byte as its first opcode. An empty
// chunk decodes to nothing.
func Decode(src []byte, sink Sink) error {
	if DetectFormat(src) == FormatAdvanced {
		return decodeAdvanced(src, sink)
	}

	return decodeLegacy(src, sink)
}

// DetectFormat reports which wire format a compressed chunk uses.
func DetectFormat(src []byte) Format {
	if len(src) > 0 && src[0] == advancedDiscriminator {
		return FormatAdvanced
	}

	return FormatLegacy
}

// Decompress decodes one compressed chunk into a new buffer.
// Any decode error aborts the chunk; no partial output is returned.
func Decompress(src []byte) ([]byte, error) {
	sink := bufferSink{out: make([]byte, 0, 2*len(src))}
	if err := Decode(src, &sink); err != nil {
		return nil, err
	}

	return sink.out, nil
}

// DecompressedSize returns the number of bytes Decompress would produce for src,
// without allocating the output. Invalid back-references are rejected the same way.
func DecompressedSize(src []byte) (int, error) {
	var sink sizeSink
	if err := Decode(src, &sink); err != nil {
		return 0, err
	}

	return sink.n, nil
}

// DecodeCommands decodes one compressed chunk into its command list.
func DecodeCommands(src []byte) ([]Command, error) {
	var rec CommandRecorder
	if err := Decode(src, &rec); err != nil {
		return nil, err
	}

	return rec.Commands, nil
}
