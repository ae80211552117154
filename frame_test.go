package arclz

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestFramed_RoundTrip(t *testing.T) {
	data := append(mixedInput(), farRepeat(40000)...)

	for _, opts := range allOptions() {
		for _, frameSize := range []int{0, 1000, MaxFrameSize} {
			opts := *opts
			opts.FrameSize = frameSize
			t.Run(fmt.Sprintf("%s-%s/frame-%d", opts.Format, opts.Strategy, frameSize), func(t *testing.T) {
				framed, err := CompressFramed(data, &opts)
				if err != nil {
					t.Fatalf("CompressFramed failed: %v", err)
				}

				payloads, err := SplitFrames(framed)
				if err != nil {
					t.Fatalf("SplitFrames failed: %v", err)
				}
				if want := len(PartitionFrames(data, frameSize)); len(payloads) != want {
					t.Fatalf("got %d chunks, want %d", len(payloads), want)
				}

				out, err := DecompressFramed(framed)
				if err != nil {
					t.Fatalf("DecompressFramed failed: %v", err)
				}
				if !bytes.Equal(out, data) {
					t.Fatalf("framed round-trip mismatch: got=%d want=%d", len(out), len(data))
				}
			})
		}
	}
}

func TestFramed_EmptyInputHasOneChunk(t *testing.T) {
	framed, err := CompressFramed(nil, nil)
	if err != nil {
		t.Fatalf("CompressFramed failed: %v", err)
	}

	// length 5 (2 + 3-byte empty advanced chunk), payload, last-chunk flag.
	want := []byte{0x05, 0x00, 0x00, 0x03, 0x00, 0x00}
	if !bytes.Equal(framed, want) {
		t.Fatalf("got % x want % x", framed, want)
	}
}

func TestSplitFramesN_ReportsConsumed(t *testing.T) {
	framed, err := JoinFrames([][]byte{{0x01, 'a'}, {0x01, 'b'}})
	if err != nil {
		t.Fatalf("JoinFrames failed: %v", err)
	}

	src := append(append([]byte{}, framed...), "tail"...)
	payloads, n, err := SplitFramesN(src)
	if err != nil {
		t.Fatalf("SplitFramesN failed: %v", err)
	}
	if n != len(framed) {
		t.Fatalf("consumed %d, want %d", n, len(framed))
	}
	if len(payloads) != 2 || !bytes.Equal(payloads[1], []byte{0x01, 'b'}) {
		t.Fatalf("unexpected payloads: %q", payloads)
	}
}

func TestSplitFrames_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"half-prefix", []byte{0x05}, ErrTruncated},
		{"prefix-zero", []byte{0x00, 0x00, 0x00}, ErrChunkHeader},
		{"prefix-one", []byte{0x01, 0x00, 0x00}, ErrChunkHeader},
		{"short-payload", []byte{0x05, 0x00, 0x00, 0x03}, ErrTruncated},
		{"missing-continuation", []byte{0x03, 0x00, 0x01}, ErrTruncated},
		{"continuation-without-chunk", []byte{0x03, 0x00, 0x01, 0x01}, ErrChunkHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitFrames(tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestJoinFrames_Limits(t *testing.T) {
	if _, err := JoinFrames(nil); !errors.Is(err, ErrChunkHeader) {
		t.Fatalf("expected ErrChunkHeader for no chunks, got %v", err)
	}

	big := make([]byte, MaxFramePayload+1)
	if _, err := JoinFrames([][]byte{big}); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}

	framed, err := JoinFrames([][]byte{big[:MaxFramePayload]})
	if err != nil {
		t.Fatalf("JoinFrames at limit failed: %v", err)
	}
	if framed[0] != 0xFF || framed[1] != 0xFF {
		t.Fatalf("expected length prefix ff ff, got % x", framed[:2])
	}
}

func TestCompressFramed_IncompressibleFitsChunk(t *testing.T) {
	data := randomBytes(MaxFrameSize, 21)
	for _, format := range []Format{FormatAdvanced, FormatLegacy} {
		if _, err := CompressFramed(data, &CompressOptions{Format: format, FrameSize: MaxFrameSize}); err != nil {
			t.Fatalf("%s: CompressFramed failed: %v", format, err)
		}
	}
}

func TestPartitionFrames_Clamps(t *testing.T) {
	data := make([]byte, 100)
	if got := len(PartitionFrames(data, -5)); got != 100 {
		t.Fatalf("negative frame size: got %d pieces, want 100", got)
	}
	if got := len(PartitionFrames(make([]byte, MaxFrameSize+1), 1<<20)); got != 2 {
		t.Fatalf("oversized frame size: got %d pieces, want 2", got)
	}
	if got := len(PartitionFrames(nil, 0)); got != 1 {
		t.Fatalf("empty input: got %d pieces, want 1", got)
	}
}
