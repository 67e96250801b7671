package analytical

import "sort"

// tileLatencyEpsilon is the absolute tie-group threshold in cycles used
// by SelectBestMacroTileSize, per spec §4.G.
const tileLatencyEpsilon = 10.0

// SelectBestMacroTileSize ranks candidates by predicted whole-problem
// latency at split=1. Candidates whose A+B scratchpad footprint exceeds
// the device's LDS capacity are filtered out before ranking; if every
// candidate is filtered out, returns NoViableTileError.
//
// The returned slice is sorted ascending by latency, except that the
// "tie group" — the prefix of entries within tileLatencyEpsilon cycles
// of the minimum — is reordered by descending arithmetic intensity
// (SPEC_FULL §3 4.G″: the comparison base is the minimum, not adjacent
// neighbors). Callers typically keep only the head of the result.
func SelectBestMacroTileSize(h *Hardware, p Problem, candidates []MacroTile) ([]ResultTuple, error) {
	viable := make([]MacroTile, 0, len(candidates))
	for _, t := range candidates {
		if CheckLDSCapacity(h, t, int64(p.ElemBitsA)) {
			viable = append(viable, t)
		}
	}
	if len(viable) == 0 {
		return nil, &NoViableTileError{NumCandidates: len(candidates)}
	}

	results := make([]ResultTuple, 0, len(viable))
	for _, t := range viable {
		lat := ComputeTotalLatency(h, p, t, 1, 1)
		results = append(results, ResultTuple{LatencyCycles: lat, Tile: t})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].LatencyCycles < results[j].LatencyCycles
	})

	minLatency := results[0].LatencyCycles
	numTheSame := 0
	for _, r := range results {
		if r.LatencyCycles-minLatency < tileLatencyEpsilon {
			numTheSame++
		} else {
			break
		}
	}

	tieGroup := results[:numTheSame]
	sort.SliceStable(tieGroup, func(i, j int) bool {
		aiI := tileArithmeticIntensity(tieGroup[i].Tile)
		aiJ := tileArithmeticIntensity(tieGroup[j].Tile)
		return aiI > aiJ
	})

	return results, nil
}

func tileArithmeticIntensity(t MacroTile) float64 {
	return ArithmeticIntensity(t.MTM, t.MTN, t.MTK, 1)
}

// PickBestTileWithDimensionPriority is the alternative tie-breaker
// mentioned in spec §4.G and named in SPEC_FULL §3 4.G′: it returns a
// single viable ResultTuple chosen by dimension priority — the macro-tile
// dimension matching whichever of Problem.M / Problem.N is larger is
// compared first, then the other, then MT_K — rather than by latency or
// arithmetic intensity. Used when dimension asymmetry in the problem
// shape is known to dominate the ranking.
func PickBestTileWithDimensionPriority(h *Hardware, p Problem, candidates []MacroTile) (ResultTuple, error) {
	viable := make([]MacroTile, 0, len(candidates))
	for _, t := range candidates {
		if CheckLDSCapacity(h, t, int64(p.ElemBitsA)) {
			viable = append(viable, t)
		}
	}
	if len(viable) == 0 {
		return ResultTuple{}, &NoViableTileError{NumCandidates: len(candidates)}
	}

	mFirst := p.M >= p.N

	best := viable[0]
	for _, t := range viable[1:] {
		if dimensionPriorityLess(best, t, mFirst) {
			best = t
		}
	}

	lat := ComputeTotalLatency(h, p, best, 1, 1)
	return ResultTuple{LatencyCycles: lat, Tile: best}, nil
}

// dimensionPriorityLess reports whether candidate b outranks candidate
// a under the (primary, secondary, MT_K) dimension-priority order.
func dimensionPriorityLess(a, b MacroTile, mFirst bool) bool {
	var aPrimary, aSecondary, bPrimary, bSecondary int64
	if mFirst {
		aPrimary, aSecondary = a.MTM, a.MTN
		bPrimary, bSecondary = b.MTM, b.MTN
	} else {
		aPrimary, aSecondary = a.MTN, a.MTM
		bPrimary, bSecondary = b.MTN, b.MTM
	}
	if aPrimary != bPrimary {
		return bPrimary > aPrimary
	}
	if aSecondary != bSecondary {
		return bSecondary > aSecondary
	}
	return b.MTK > a.MTK
}
