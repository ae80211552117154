// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import (
	"math"
	"slices"
)

// parseStep is one node of the shortest-path parse: the cheapest known way to encode
// the input prefix ending here, and the last command of that encoding.
type parseStep struct {
	bits   uint32      // bits is the total encoded cost of the prefix, math.MaxUint32 if unreached.
	count  uint16      // count is the number of input bytes covered by the last command.
	offset uint16      // offset is the back-reference distance, 0 for literals and fills.
	kind   CommandKind // kind is the last command kind.
}

// optimalParser runs the dynamic-programming parse over one input.
type optimalParser struct {
	src   []byte
	steps []parseStep
}

// relax records a cheaper path to position to.
func (p *optimalParser) relax(to int, bits uint32, kind CommandKind, count, offset int) {
	if bits < p.steps[to].bits {
		p.steps[to] = parseStep{
			bits:   bits,
			count:  uint16(count),  //nolint:gosec // G115: command lengths are at most 4109
			offset: uint16(offset), //nolint:gosec // G115: offsets are at most windowSize
			kind:   kind,
		}
	}
}

// optimalCommands finds a minimum-cost command list for src in the given format.
//
// Every reachable position relaxes literal, fill and match edges. Match candidates come
// from a suffix array built per block of positions; for each position every length from
// the format minimum up to the longest match is relaxed, using the short-offset candidate
// where it reaches and the long candidate beyond it. Fills relax every short length and
// the long lengths that the next match cap could still make useful.
func optimalCommands(src []byte, format Format, params formatParams) []Command {
	n := len(src)
	p := optimalParser{src: src, steps: make([]parseStep, n+1)}
	for i := 1; i <= n; i++ {
		p.steps[i].bits = math.MaxUint32
	}

	runs := runLengths(src, params.maxFill)
	var window *suffixWindow

	for pos := range n {
		if window == nil || pos >= window.end {
			window = newSuffixWindow(src, pos)
		}

		here := p.steps[pos].bits
		limit := min(params.maxMatch, n-pos)
		found := window.query(pos, limit)

		if format == FormatLegacy {
			p.relaxLegacy(pos, here, runs[pos], params, found)
		} else {
			p.relaxAdvanced(pos, here, runs[pos], params, found)
		}
	}

	return p.backtrack()
}

// relaxAdvanced relaxes all advanced-format edges leaving pos.
func (p *optimalParser) relaxAdvanced(pos int, here uint32, run int, params formatParams, found matchCandidates) {
	p.relax(pos+1, here+advancedLiteralBits, CommandLiteral, 1, 0)

	p.relaxFills(pos, here, run, params, advancedShortFillMax, advancedFillBits)

	for l := params.minMatch; l <= found.shortLength; l++ {
		p.relax(pos+l, here+uint32(advancedMatchBits(found.shortOffset, l)), CommandBackreference, l, found.shortOffset) //nolint:gosec // G115: costs are small
	}
	for l := max(params.minMatch, found.shortLength+1); l <= found.longLength; l++ {
		p.relax(pos+l, here+uint32(advancedMatchBits(found.longOffset, l)), CommandBackreference, l, found.longOffset) //nolint:gosec // G115: costs are small
	}
}

// relaxLegacy relaxes all legacy-format edges leaving pos. A verbatim run is modelled as
// one edge of up to 31 bytes; the serializer later merges adjacent runs.
func (p *optimalParser) relaxLegacy(pos int, here uint32, run int, params formatParams, found matchCandidates) {
	for l := 1; l <= legacyVerbatimShortMax && pos+l <= len(p.src); l++ {
		p.relax(pos+l, here+uint32(legacyRunHeadBits+8*l), CommandLiteral, l, 0) //nolint:gosec // G115: costs are small
	}

	p.relaxFills(pos, here, run, params, legacyFillShortMax, legacyFillBits)

	for l := params.minMatch; l <= found.longLength; l++ {
		p.relax(pos+l, here+uint32(legacyMatchBits(l)), CommandBackreference, l, found.longOffset) //nolint:gosec // G115: costs are small
	}
}

// relaxFills relaxes the fill edges for a run starting at pos. Lengths up to shortMax
// each get an edge; among long fills, which all cost the same, only the last
// maxMatchLen lengths of the run are relaxed.
func (p *optimalParser) relaxFills(pos int, here uint32, run int, params formatParams, shortMax int, cost func(int) int) {
	if run < params.minFill {
		return
	}

	for l := params.minFill; l <= min(run, shortMax); l++ {
		p.relax(pos+l, here+uint32(cost(l)), CommandFill, l, 0) //nolint:gosec // G115: costs are small
	}
	for l := max(shortMax+1, run-maxMatchLen); l <= run; l++ {
		p.relax(pos+l, here+uint32(cost(l)), CommandFill, l, 0) //nolint:gosec // G115: costs are small
	}
}

// backtrack walks the parse from the end of input and returns the commands in order.
// Literal runs expand to one command per byte.
func (p *optimalParser) backtrack() []Command {
	var cmds []Command

	for i := len(p.src); i > 0; {
		step := p.steps[i]
		count := int(step.count)
		start := i - count

		switch step.kind {
		case CommandLiteral:
			for k := count - 1; k >= 0; k-- {
				cmds = append(cmds, literalCommand(p.src[start+k]))
			}
		case CommandFill:
			cmds = append(cmds, fillCommand(p.src[start], count))
		case CommandBackreference:
			cmds = append(cmds, matchCommand(int(step.offset), count))
		}

		i = start
	}

	slices.Reverse(cmds)
	return cmds
}
