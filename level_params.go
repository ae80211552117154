// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// formatParams holds the encoder bounds for one wire format.
type formatParams struct {
	minMatch int // shortest back-reference the greedy parser emits
	maxMatch int // longest back-reference any parser emits
	minFill  int // shortest fill the format can express
	maxFill  int // longest fill the format can express
}

// formatTable defines parameters per Format. Both formats share the 269-byte match cap.
var formatTable = [2]formatParams{
	FormatAdvanced: {advancedMinMatch, advancedMaxMatch, advancedMinFill, advancedMaxFill},
	FormatLegacy:   {legacyMinMatch, maxMatchLen, legacyMinFill, legacyMaxFill},
}

// paramsFor returns the parameters for f, or false for an unknown format.
func paramsFor(f Format) (formatParams, bool) {
	if int(f) >= len(formatTable) {
		return formatParams{}, false
	}

	return formatTable[f], true
}
