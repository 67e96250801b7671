package analytical

import "math"

// SelectBestGridSize searches K-split factors in [1, min(biggestAllowableSplit,
// floor(N_CU/G))] for the split minimizing ComputeTotalLatency, where G is
// the base (unsplit) grid size ceil(M/MT_M)*ceil(N/MT_N)*batch. Returns
// the chosen grid size (bestSplit*G) and the latency at that split.
//
// Open Question (b) in spec §9: when G exceeds N_CU, the search bound
// floor(N_CU/G) is 0, so the loop never executes. bestLatency stays
// +Inf and bestSplit stays 1, so the returned grid is the un-split G.
// This is reproduced verbatim, not guarded against.
func SelectBestGridSize(h *Hardware, p Problem, tile MacroTile, biggestAllowableSplit int64) (grid int64, latency float64) {
	g := CeilDiv(p.M, tile.MTM) * CeilDiv(p.N, tile.MTN) * p.Batch

	maxHWSplit := int64(0)
	if g > 0 {
		maxHWSplit = int64(h.NCU) / g
	}
	maxSplit := biggestAllowableSplit
	if maxHWSplit < maxSplit {
		maxSplit = maxHWSplit
	}

	bestLatency := math.Inf(1)
	bestSplit := int64(1)
	for split := int64(1); split <= maxSplit; split++ {
		lat := ComputeTotalLatency(h, p, tile, split, 1)
		if lat < bestLatency {
			bestLatency = lat
			bestSplit = split
		}
	}

	return bestSplit * g, bestLatency
}

// SelectBestWGM sweeps a supplied list of candidate workgroup-mapping
// values, evaluating EstimateL2Hit (not latency) for a fixed macro-tile,
// and returns the WGM maximizing the L2 hit rate. If the tile fails the
// LDS capacity check, or the candidate list is empty, returns
// NoViableWGMError.
func SelectBestWGM(h *Hardware, p Problem, tile MacroTile, wgmCandidates []int64) (bestWGM int64, bestHit float64, err error) {
	if len(wgmCandidates) == 0 || !CheckLDSCapacity(h, tile, int64(p.ElemBitsA)) {
		return 0, 0, &NoViableWGMError{NumCandidates: len(wgmCandidates)}
	}

	activeCU := ComputeActiveCU(h, p.M, p.N, p.Batch, tile.MTM, tile.MTN)
	maxBits := p.ElemBitsA
	if p.ElemBitsB > maxBits {
		maxBits = p.ElemBitsB
	}

	bestWGM = wgmCandidates[0]
	bestHit = -1
	for _, wgm := range wgmCandidates {
		hit := EstimateL2Hit(h, p.M, p.N, p.K, tile.MTM, tile.MTN, tile.MTK, activeCU, wgm, maxBits)
		if hit > bestHit {
			bestHit = hit
			bestWGM = wgm
		}
	}
	return bestWGM, bestHit, nil
}
