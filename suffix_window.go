// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

const (
	// suffixBlockSize is the number of positions one suffix window answers queries for.
	suffixBlockSize = 8192

	// maxSuffixProbes bounds the suffix-array neighbours visited per query.
	maxSuffixProbes = 4096

	// minQueryMatch is the shortest match a query reports.
	minQueryMatch = 2
)

// matchCandidates holds the best matches found for one position.
// The long class may use any offset in the window; the short class is restricted to
// offsets of at most 255, which the advanced format encodes more cheaply.
type matchCandidates struct {
	longOffset  int // longOffset is the distance of the longest match.
	longLength  int // longLength is the length of the longest match, 0 if none.
	shortOffset int // shortOffset is the distance of the longest match within 255 bytes.
	shortLength int // shortLength is the length of that match, 0 if none.
}

// suffixWindow indexes one block of positions. Its text starts a full window before the
// block so every earlier candidate is present, and extends maxMatchLen past it so every
// match can reach its cap.
type suffixWindow struct {
	base int     // base is the absolute position of text[0].
	end  int     // end is one past the last absolute position the block answers for.
	sa   []int32 // sa is the suffix array of the block text, empty suffix first.
	rank []int32 // rank is the inverse of sa.
	lcp  []int32 // lcp[r] is the common prefix length of suffixes sa[r-1] and sa[r].
}

// newSuffixWindow indexes the block of src that starts at absolute position start.
func newSuffixWindow(src []byte, start int) *suffixWindow {
	end := min(start+suffixBlockSize, len(src))
	base := max(0, start-windowSize)
	text := src[base:min(len(src), end+maxMatchLen)]

	sa := BuildSuffixArray(text)
	rank := make([]int32, len(sa))
	for r, p := range sa {
		rank[p] = int32(r) //nolint:gosec // G115: ranks fit int32
	}

	return &suffixWindow{
		base: base,
		end:  end,
		sa:   sa,
		rank: rank,
		lcp:  kasaiLCP(text, sa, rank),
	}
}

// kasaiLCP returns the LCP array of text for its suffix array in linear time.
func kasaiLCP(text []byte, sa, rank []int32) []int32 {
	n := len(text)
	lcp := make([]int32, len(sa))
	h := 0

	for i := range n {
		r := rank[i]
		if r == 0 {
			h = 0
			continue
		}

		j := int(sa[r-1])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = int32(h) //nolint:gosec // G115: lengths fit int32
		if h > 0 {
			h--
		}
	}

	return lcp
}

// query returns the longest matches for absolute position pos, capped at limit bytes.
//
// Neighbours of pos in suffix order are visited in both directions alternately while the
// running minimum LCP stays at least minQueryMatch. A direction stops once its running
// LCP can no longer beat either class, and the whole walk stops after maxSuffixProbes
// visits. Only candidates before pos and within windowSize are taken; among equal
// lengths the nearest offset wins.
func (w *suffixWindow) query(pos, limit int) matchCandidates {
	var best matchCandidates
	if limit < minQueryMatch {
		return best
	}

	r := int(w.rank[pos-w.base])
	up, down := r-1, r+1
	upLCP, downLCP := limit, limit

	consider := func(rank, length int) {
		abs := w.base + int(w.sa[rank])
		dist := pos - abs
		if dist <= 0 || dist > windowSize {
			return
		}

		if length > best.longLength || (length == best.longLength && dist < best.longOffset) {
			best.longOffset, best.longLength = dist, length
		}
		if dist <= advancedMaxShortOff &&
			(length > best.shortLength || (length == best.shortLength && dist < best.shortOffset)) {
			best.shortOffset, best.shortLength = dist, length
		}
	}

	for probes := 0; probes < maxSuffixProbes; {
		moved := false

		if up >= 0 {
			upLCP = min(upLCP, int(w.lcp[up+1]))
			if upLCP < minQueryMatch || upLCP <= best.shortLength {
				up = -1
			} else {
				consider(up, upLCP)
				up--
				probes++
				moved = true
			}
		}

		if down < len(w.sa) && probes < maxSuffixProbes {
			downLCP = min(downLCP, int(w.lcp[down]))
			if downLCP < minQueryMatch || downLCP <= best.shortLength {
				down = len(w.sa)
			} else {
				consider(down, downLCP)
				down++
				probes++
				moved = true
			}
		}

		if !moved {
			break
		}
	}

	return best
}
