// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/arclz

package arclz

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":  bytes.Repeat([]byte("arclz benchmark text payload "), 140),
		"pattern-32k":    bytes.Repeat([]byte("ABCDEF0123456789"), 2048),
		"byte-cycle-32k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 3276),
		"mixed":          mixedInput(),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, opts := range allOptions() {
			name := fmt.Sprintf("%s/%s-%s", inputName, opts.Format, opts.Strategy)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := Compress(inputData, opts)
					if err != nil {
						b.Fatalf("Compress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, format := range []Format{FormatAdvanced, FormatLegacy} {
			compressedData, err := CompressGreedy(inputData, format)
			if err != nil {
				b.Fatalf("setup Compress failed for %s %s: %v", inputName, format, err)
			}

			name := fmt.Sprintf("%s/%s", inputName, format)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := Decompress(compressedData)
					if err != nil {
						b.Fatalf("Decompress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkBuildSuffixArray(b *testing.B) {
	inputData := mixedInput()[:16384]
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = BuildSuffixArray(inputData)
	}
}

func BenchmarkFramedRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		framed, err := CompressFramed(inputData, nil)
		if err != nil {
			b.Fatalf("CompressFramed failed: %v", err)
		}
		_, err = DecompressFramed(framed)
		if err != nil {
			b.Fatalf("DecompressFramed failed: %v", err)
		}
	}
}
