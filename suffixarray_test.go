package arclz

import (
	"bytes"
	"slices"
	"sort"
	"testing"
)

func TestBuildSuffixArray_KnownVectors(t *testing.T) {
	tests := []struct {
		text string
		want []int32
	}{
		{"", []int32{0}},
		{"a", []int32{1, 0}},
		{"cabbage", []int32{7, 1, 4, 3, 2, 0, 6, 5}},
		{"baabaabac", []int32{9, 1, 4, 2, 5, 7, 0, 3, 6, 8}},
		{"aaaa", []int32{4, 3, 2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := BuildSuffixArray([]byte(tt.text))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSuffixArray_MatchesNaiveSort(t *testing.T) {
	inputs := [][]byte{
		[]byte("mississippi"),
		[]byte("abracadabra abracadabra"),
		bytes.Repeat([]byte("ab"), 300),
		bytes.Repeat([]byte{0xFF, 0x00, 0xFF}, 200),
		randomBytes(2000, 5),
		farRepeat(3000),
		{0x00, 0x00, 0x00, 0x01, 0x00},
	}

	for i, data := range inputs {
		got := BuildSuffixArray(data)
		want := naiveSuffixArray(data)
		if !slices.Equal(got, want) {
			t.Fatalf("input %d (%d bytes): suffix array mismatch", i, len(data))
		}
	}
}

func naiveSuffixArray(data []byte) []int32 {
	sa := make([]int32, len(data)+1)
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(data[sa[a]:], data[sa[b]:]) < 0
	})
	return sa
}

func TestKasaiLCP_MatchesNaive(t *testing.T) {
	data := append([]byte("banana bandana "), randomBytes(500, 9)...)
	data = append(data, data[:200]...)

	sa := BuildSuffixArray(data)
	rank := make([]int32, len(sa))
	for r, p := range sa {
		rank[p] = int32(r)
	}
	lcp := kasaiLCP(data, sa, rank)

	for r := 1; r < len(sa); r++ {
		want := countEqualPrefix(data[sa[r-1]:], data[sa[r]:])
		if int(lcp[r]) != want {
			t.Fatalf("lcp[%d] = %d, want %d", r, lcp[r], want)
		}
	}
}

func countEqualPrefix(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func TestSuffixWindow_QueryMatchesBruteForce(t *testing.T) {
	data := mixedInput()
	for start := 0; start < len(data); start += suffixBlockSize {
		w := newSuffixWindow(data, start)
		for pos := start; pos < w.end; pos += 37 {
			limit := min(maxMatchLen, len(data)-pos)
			got := w.query(pos, limit)
			wantLong, wantShort := bruteForceLongest(data, pos, limit)

			if got.longLength != wantLong {
				t.Fatalf("pos %d: long length %d, want %d", pos, got.longLength, wantLong)
			}
			if got.shortLength != wantShort {
				t.Fatalf("pos %d: short length %d, want %d", pos, got.shortLength, wantShort)
			}
			if got.longLength >= minQueryMatch &&
				!bytes.Equal(data[pos-got.longOffset:pos-got.longOffset+got.longLength], data[pos:pos+got.longLength]) {
				t.Fatalf("pos %d: reported long match does not match input", pos)
			}
		}
	}
}

// bruteForceLongest returns the longest match lengths for both offset classes,
// or 0 below the minimum query length.
func bruteForceLongest(data []byte, pos, limit int) (long, short int) {
	for dist := 1; dist <= min(windowSize, pos); dist++ {
		n := countEqualPrefix(data[pos-dist:pos-dist+limit], data[pos:pos+limit])
		if n < minQueryMatch {
			continue
		}
		long = max(long, n)
		if dist <= advancedMaxShortOff {
			short = max(short, n)
		}
	}
	return long, short
}
