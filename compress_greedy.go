// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// greedyCommands performs the reference-compatible greedy parse of src.
//
// At every position the longest windowed match and the run of the current byte are
// compared: a run of at least minFill that is not shorter than the match becomes a fill,
// otherwise a match of at least minMatch is taken, otherwise one literal. Every consumed
// position is inserted into the match finder, including positions inside fills and matches.
func greedyCommands(src []byte, p formatParams) []Command {
	if len(src) == 0 {
		return nil
	}

	chain := acquireHashChain(src)
	defer releaseHashChain(chain)

	runs := runLengths(src, p.maxFill)
	cmds := make([]Command, 0, len(src)/4+1)

	for pos := 0; pos < len(src); {
		offset, length := chain.findLongest(pos, p.maxMatch)
		run := runs[pos]

		var step int
		switch {
		case run >= p.minFill && run >= length:
			cmds = append(cmds, fillCommand(src[pos], run))
			step = run
		case length >= p.minMatch:
			cmds = append(cmds, matchCommand(offset, length))
			step = length
		default:
			cmds = append(cmds, literalCommand(src[pos]))
			step = 1
		}

		for end := pos + step; pos < end; pos++ {
			chain.insert(pos)
		}
	}

	return cmds
}

// runLengths returns, for every position, how many times its byte repeats starting there,
// capped at limit. Computed backward in one pass.
func runLengths(src []byte, limit int) []int {
	n := len(src)
	if n == 0 {
		return nil
	}

	runs := make([]int, n)
	runs[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		if src[i] == src[i+1] {
			runs[i] = min(runs[i+1]+1, limit)
		} else {
			runs[i] = 1
		}
	}

	return runs
}
