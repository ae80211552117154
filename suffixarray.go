// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// BuildSuffixArray returns the suffix array of data with the empty suffix included:
// a permutation of 0..len(data) listing suffix start positions in lexicographic order,
// where a proper prefix sorts before any extension. The first entry is always len(data).
//
// The array is built in linear time by induced sorting (SA-IS). Bytes are lifted to
// symbols 1..256 and a unique smallest sentinel 0 is appended.
func BuildSuffixArray(data []byte) []int32 {
	text := make([]int32, len(data)+1)
	for i, b := range data {
		text[i] = int32(b) + 1
	}

	sa := make([]int32, len(text))
	sais(text, sa, 256+1)

	return sa
}

// sais fills sa with the suffix array of s. s must end with a unique smallest symbol 0 and
// use symbols below k. sa must have the same length as s. The same routine sorts the
// reduced string of LMS names on recursion.
func sais(s, sa []int32, k int) {
	n := len(s)
	if n == 1 {
		sa[0] = 0
		return
	}

	stype := classifySuffixes(s)
	bkt := make([]int32, k)

	// Stage 1: place LMS suffixes at their bucket ends and induce their order.
	bucketEnds(s, bkt)
	for i := range sa {
		sa[i] = -1
	}
	for i := 1; i < n; i++ {
		if isLMS(stype, i) {
			c := s[i]
			bkt[c]--
			sa[bkt[c]] = int32(i) //nolint:gosec // G115: suffix positions fit int32
		}
	}
	induceL(s, sa, stype, bkt)
	induceS(s, sa, stype, bkt)

	// Compact the now sorted LMS substrings into the front of sa.
	n1 := 0
	for i := range n {
		if p := sa[i]; p > 0 && isLMS(stype, int(p)) {
			sa[n1] = p
			n1++
		}
	}

	// Name LMS substrings; equal substrings share a name. Names are stored at
	// n1+pos/2, which never collides because LMS positions are at least two apart.
	for i := n1; i < n; i++ {
		sa[i] = -1
	}
	names := 0
	prev := -1
	for i := range n1 {
		pos := int(sa[i])
		if prev < 0 || !equalLMSSubstrings(s, stype, pos, prev) {
			names++
			prev = pos
		}
		sa[n1+pos/2] = int32(names - 1) //nolint:gosec // G115: names fit int32
	}

	// Gather names in text order at the tail of sa.
	for i, j := n-1, n-1; i >= n1; i-- {
		if sa[i] >= 0 {
			sa[j] = sa[i]
			j--
		}
	}

	// Stage 2: sort the reduced string, recursing only when names repeat.
	s1 := sa[n-n1:]
	sa1 := sa[:n1]
	if names < n1 {
		sais(s1, sa1, names)
	} else {
		for i, name := range s1 {
			sa1[name] = int32(i) //nolint:gosec // G115: suffix positions fit int32
		}
	}

	// Stage 3: map reduced ranks back to LMS positions, seed their buckets in sorted
	// order and induce the full array.
	for i, j := 1, 0; i < n; i++ {
		if isLMS(stype, i) {
			s1[j] = int32(i) //nolint:gosec // G115: suffix positions fit int32
			j++
		}
	}
	for i := range n1 {
		sa1[i] = s1[sa1[i]]
	}
	for i := n1; i < n; i++ {
		sa[i] = -1
	}

	bucketEnds(s, bkt)
	for i := n1 - 1; i >= 0; i-- {
		p := sa[i]
		sa[i] = -1
		c := s[p]
		bkt[c]--
		sa[bkt[c]] = p
	}
	induceL(s, sa, stype, bkt)
	induceS(s, sa, stype, bkt)
}

// classifySuffixes returns the suffix types of s: true for S-type (smaller than the
// following suffix), false for L-type. The sentinel is S-type.
func classifySuffixes(s []int32) []bool {
	n := len(s)
	stype := make([]bool, n)
	stype[n-1] = true
	for i := n - 2; i >= 0; i-- {
		stype[i] = s[i] < s[i+1] || (s[i] == s[i+1] && stype[i+1])
	}

	return stype
}

// isLMS reports whether i is a leftmost S-type position.
func isLMS(stype []bool, i int) bool {
	return i > 0 && stype[i] && !stype[i-1]
}

// equalLMSSubstrings compares the LMS substrings starting at a and b, symbols and types,
// up to and including the next LMS position of each.
func equalLMSSubstrings(s []int32, stype []bool, a, b int) bool {
	for d := 0; ; d++ {
		if s[a+d] != s[b+d] || stype[a+d] != stype[b+d] {
			return false
		}

		if d > 0 {
			endA, endB := isLMS(stype, a+d), isLMS(stype, b+d)
			if endA || endB {
				return endA && endB
			}
		}
	}
}

// bucketStarts sets bkt[c] to the first slot of the bucket for symbol c.
func bucketStarts(s, bkt []int32) {
	countSymbols(s, bkt)
	var sum int32
	for c, count := range bkt {
		bkt[c] = sum
		sum += count
	}
}

// bucketEnds sets bkt[c] to one past the last slot of the bucket for symbol c.
func bucketEnds(s, bkt []int32) {
	countSymbols(s, bkt)
	var sum int32
	for c, count := range bkt {
		sum += count
		bkt[c] = sum
	}
}

// countSymbols sets bkt[c] to the number of occurrences of c in s.
func countSymbols(s, bkt []int32) {
	clear(bkt)
	for _, c := range s {
		bkt[c]++
	}
}

// induceL places L-type suffixes from left to right at their bucket starts.
func induceL(s, sa []int32, stype []bool, bkt []int32) {
	bucketStarts(s, bkt)
	for i := range sa {
		if sa[i] <= 0 {
			continue
		}

		j := sa[i] - 1
		if !stype[j] {
			c := s[j]
			sa[bkt[c]] = j
			bkt[c]++
		}
	}
}

// induceS places S-type suffixes from right to left at their bucket ends.
func induceS(s, sa []int32, stype []bool, bkt []int32) {
	bucketEnds(s, bkt)
	for i := len(sa) - 1; i >= 0; i-- {
		if sa[i] <= 0 {
			continue
		}

		j := sa[i] - 1
		if stype[j] {
			c := s[j]
			bkt[c]--
			sa[bkt[c]] = j
		}
	}
}
