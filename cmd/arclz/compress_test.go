package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/arclz"
)

func testInput() []byte {
	var b bytes.Buffer
	for i := range 400 {
		b.WriteString("chunked archive payload ")
		b.WriteByte(byte(i))
		b.Write(bytes.Repeat([]byte{byte(i % 7)}, i%40))
	}
	return b.Bytes()
}

func testEnvironment(stdout io.Writer) *environment {
	return &environment{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		level:  new(slog.LevelVar),
		stdout: stdout,
	}
}

func TestCompressFramed_MatchesLibrary(t *testing.T) {
	data := testInput()
	opts := &arclz.CompressOptions{Format: arclz.FormatLegacy, Strategy: arclz.StrategyOptimal, FrameSize: 1000}

	parallel, chunks, err := compressFramed(data, opts, 4)
	if err != nil {
		t.Fatalf("compressFramed failed: %v", err)
	}
	sequential, err := arclz.CompressFramed(data, opts)
	if err != nil {
		t.Fatalf("arclz.CompressFramed failed: %v", err)
	}
	if !bytes.Equal(parallel, sequential) {
		t.Fatal("parallel framing differs from sequential framing")
	}

	out, gotChunks, err := decompressFramed(parallel, 3)
	if err != nil {
		t.Fatalf("decompressFramed failed: %v", err)
	}
	if gotChunks != chunks {
		t.Fatalf("decoded %d chunks, compressed %d", gotChunks, chunks)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch")
	}
}

func TestCompressDecompressCmd_Files(t *testing.T) {
	dir := t.TempDir()
	plainPath := filepath.Join(dir, "plain.bin")
	packedPath := filepath.Join(dir, "packed.lz")
	outPath := filepath.Join(dir, "out.bin")

	data := testInput()
	if err := os.WriteFile(plainPath, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	env := testEnvironment(io.Discard)
	if err := compressCmd([]string{"-i", plainPath, "-o", packedPath, "--strategy", "optimal", "-j", "2"}, env); err != nil {
		t.Fatalf("compressCmd failed: %v", err)
	}
	if err := decompressCmd([]string{"-i", packedPath, "-o", outPath}, env); err != nil {
		t.Fatalf("decompressCmd failed: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch through files")
	}
}

func TestCompressCmd_RejectsBadFlag(t *testing.T) {
	env := testEnvironment(io.Discard)
	if err := compressCmd([]string{"--format", "zip"}, env); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := compressCmd([]string{"--help"}, env); err != nil {
		t.Fatalf("--help should not fail: %v", err)
	}
}

func TestStatAndDump(t *testing.T) {
	data := testInput()

	reports, err := encoderSizes(data, Default())
	if err != nil {
		t.Fatalf("encoderSizes failed: %v", err)
	}
	if len(reports) != 4 {
		t.Fatalf("got %d encoder reports, want 4", len(reports))
	}

	baselines, err := baselineSizes(data)
	if err != nil {
		t.Fatalf("baselineSizes failed: %v", err)
	}
	for _, r := range baselines {
		if r.bytes <= 0 || r.bytes > len(data)+64 {
			t.Fatalf("%s: implausible size %d", r.name, r.bytes)
		}
	}

	framed, err := arclz.CompressFramed([]byte("abcabcabcabc"), nil)
	if err != nil {
		t.Fatalf("CompressFramed failed: %v", err)
	}
	var out strings.Builder
	if err := dumpFrames(&out, framed); err != nil {
		t.Fatalf("dumpFrames failed: %v", err)
	}
	want := "chunk 0: advanced, 9 bytes -> 12 bytes, 4 commands\n" +
		"  literal 0x61\n  literal 0x62\n  literal 0x63\n  backref -3 x9\n"
	if out.String() != want {
		t.Fatalf("unexpected dump:\n%s\nwant:\n%s", out.String(), want)
	}
}
