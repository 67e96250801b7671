package analytical

// layoutPenaltyFactor computes the multiplicative alignment penalty for
// a macro-tile given the problem's transpose flags, following spec
// §4.F's four-case table. includeTN controls whether the TN case's
// penalty applies at all: compute latency applies it, memory latency
// does not (spec §4.F step 8 omits TN).
//
// The TN case applies its ×1.5 independently to A and B, so both can
// fire and compound to ×2.25 — this is Open Question (a) in spec §9,
// reproduced verbatim rather than "fixed".
func layoutPenaltyFactor(transA, transB bool, mtM, mtN, mtK int64, elemBitsA, elemBitsB int, includeTN bool) float64 {
	bytesA := CeilDiv(int64(elemBitsA), 8)
	bytesB := CeilDiv(int64(elemBitsB), 8)

	switch {
	case transA && !transB: // TN
		if !includeTN {
			return 1.0
		}
		factor := 1.0
		if mod128(mtK*bytesA) != 0 {
			factor *= 1.5
		}
		if mod128(mtK*bytesB) != 0 {
			factor *= 1.5
		}
		return factor
	case !transA && transB: // NT
		factor := 1.0
		if mod128(mtM*bytesA) != 0 {
			factor *= 2
		}
		if mod128(mtN*bytesB) != 0 {
			factor *= 2
		}
		return factor
	case transA && transB: // TT
		factor := 1.0
		if mtK*bytesA < 128 {
			factor *= 2
		}
		if mtN*bytesB < 128 {
			factor *= 2
		}
		return factor
	default: // NN
		factor := 1.0
		if mtM*bytesA < 128 {
			factor *= 2
		}
		if mtK*bytesB < 128 {
			factor *= 2
		}
		return factor
	}
}

func mod128(v int64) int64 {
	return v % 128
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func safeDivF(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

// ComputeMTComputeLatency is the per-tile compute latency L_MT: the
// matrix-instruction issue latency times the number of instructions a
// macro-tile decomposes into, with the layout alignment penalty applied.
func ComputeMTComputeLatency(h *Hardware, p Problem, tile MacroTile) float64 {
	nMI := CeilDiv(tile.MTM, int64(tile.MIM)) *
		CeilDiv(tile.MTN, int64(tile.MIN)) *
		CeilDiv(tile.MTK, int64(tile.MIK))

	maxBits := p.ElemBitsA
	if p.ElemBitsB > maxBits {
		maxBits = p.ElemBitsB
	}
	lMI := h.GetMILatency(tile.MIM, tile.MIN, tile.MIK, maxBits)
	lMT := lMI * float64(nMI)

	penalty := layoutPenaltyFactor(p.TransA, p.TransB, tile.MTM, tile.MTN, tile.MTK, p.ElemBitsA, p.ElemBitsB, true)
	h.debug.logNumber("L_MT", lMT*penalty)
	return lMT * penalty
}

// ComputeMemoryLatency is the per-tile memory latency L_mem, combining
// three memory tiers (on-chip, MALL, device memory) each gated by a
// hit-rate estimate, taking the max of the three tiers' latencies and
// applying the layout penalty (TN excluded, per spec §4.F step 8).
//
// hMem1 is the caller-supplied tier-1 hit estimate; ComputeTotalLatency
// recomputes and overwrites it with a fresh EstimateL2Hit call before
// combining results, matching the source's "overwrite caller-supplied
// H_mem1" step.
func ComputeMemoryLatency(h *Hardware, p Problem, tile MacroTile, split int64, hMem1 float64) float64 {
	baseActiveCU := ComputeActiveCU(h, p.M, p.N, p.Batch, tile.MTM, tile.MTN)

	hMem2 := EstimateMALLHit(h, p.M, p.N, p.K, tile.MTM, tile.MTN, tile.MTK, p.Batch, baseActiveCU, 1)

	aLoads := ComputeALoads(tile.MTM, tile.MTK)
	bLoads := ComputeBLoads(tile.MTN, tile.MTK)
	bytesA := CeilDiv(int64(p.ElemBitsA), 8)
	bytesB := CeilDiv(int64(p.ElemBitsB), 8)
	perCUBytes := aLoads*bytesA + bLoads*bytesB

	// Open Question (c): the MX-scale byte accounting uses MT_M*MT_K for
	// both A- and B-scale byte counts, not MT_N*MT_K for B. Reproduced
	// verbatim.
	if p.MXBlockSize != 0 && p.ElemBitsA < 8 {
		perCUBytes += CeilDiv(tile.MTM*tile.MTK, p.MXBlockSize)
		perCUBytes += CeilDiv(tile.MTM*tile.MTK, p.MXBlockSize)
	}

	nCU := int64(h.NCU)
	activeCU := baseActiveCU * split
	if activeCU > nCU {
		activeCU = nCU
	}

	totalLd := perCUBytes * activeCU

	l1 := safeDivF(float64(totalLd), h.Mem1PerfRatio*float64(activeCU)/float64(nCU))

	ldMem2 := (1 - hMem1) * float64(totalLd)
	bwLimited := ComputeBWLimitFromOccupancy(activeCU)
	l2 := safeDivF(ldMem2, h.Mem2PerfRatio*bwLimited)

	ldMEM := (1 - hMem2) * ldMem2
	if activeCU < nCU {
		floor := float64((p.M*tile.MTK*bytesA+p.N*tile.MTK*bytesB)*p.Batch)
		ldMEM = maxF(ldMEM, floor)
		ldMem2 = maxF(ldMem2, floor)
	}
	l3 := safeDivF(ldMEM, h.Mem3PerfRatio*bwLimited) + 200

	lMem := maxF(l1, maxF(l2, l3))

	penalty := layoutPenaltyFactor(p.TransA, p.TransB, tile.MTM, tile.MTN, tile.MTK, p.ElemBitsA, p.ElemBitsB, false)
	h.debug.logNumber("L_mem", lMem*penalty)
	return lMem * penalty
}

// ComputeTotalLatency is the whole-problem latency estimate: one tile's
// combined compute/memory latency, iterated over the K dimension and
// composed with prologue, epilogue, and (for split>1) a reduction
// epilogue, then multiplied out by the number of CU-waves needed to
// cover the full M x N x batch output.
func ComputeTotalLatency(h *Hardware, p Problem, tile MacroTile, split int64, wgm int64) float64 {
	baseActiveCU := ComputeActiveCU(h, p.M, p.N, p.Batch, tile.MTM, tile.MTN)
	nCU := int64(h.NCU)
	activeCU := baseActiveCU * split
	if activeCU > nCU {
		activeCU = nCU
	}

	maxBits := p.ElemBitsA
	if p.ElemBitsB > maxBits {
		maxBits = p.ElemBitsB
	}
	// Step 1: overwrite the caller-supplied H_mem1 with a fresh L2-hit
	// estimate using the requested WGM.
	hMem1 := EstimateL2Hit(h, p.M, p.N, p.K, tile.MTM, tile.MTN, tile.MTK, activeCU, wgm, maxBits)

	lCompute := ComputeMTComputeLatency(h, p, tile)
	lMem := ComputeMemoryLatency(h, p, tile, split, hMem1)
	lTileSingle := maxF(lCompute, lMem)

	gridK := CeilDiv(p.K, tile.MTK)
	// Open Question (d): when K <= MT_K, gridK=1 so the numerator is 0
	// and num_iter clamps to 1. Reproduced verbatim.
	numIter := CeilDiv(gridK-1, split)
	if numIter < 1 {
		numIter = 1
	}

	lPrologue := 1.5 * lMem

	limited := maxF(10, h.Mem1PerfRatio*float64(activeCU)/float64(nCU))
	bytesOut := CeilDiv(int64(p.ElemBitsOut), 8)
	lEpilogue := safeDivF(float64(activeCU)*float64(tile.MTM)*float64(tile.MTN)*float64(bytesOut), limited)
	if split > 1 {
		lReduce := safeDivF(2*float64(activeCU)*float64(bytesOut)*float64(tile.MTM)*float64(tile.MTN)*float64(split-1), h.Mem3PerfRatio)
		lEpilogue += lReduce
	}

	lTileTotal := lTileSingle*float64(numIter) + lPrologue + lEpilogue + 1 + 28*float64(numIter)

	// Empirical penalty (spec §4.F step 7): preserved verbatim.
	if tile.MTK == 512 {
		lTileTotal *= 1.5
	}

	gridM := CeilDiv(p.M, tile.MTM)
	gridN := CeilDiv(p.N, tile.MTN)
	nWaves := CeilDiv(gridM*gridN*p.Batch, nCU)

	h.debug.logNumber("L_tile_total", lTileTotal)
	h.debug.logNumber("N_waves", float64(nWaves))
	return lTileTotal * float64(nWaves)
}

// EstimateTFLOPS converts a predicted latency (in cycles, at the
// Hardware's compute clock) into an achieved-TFLOPS figure for
// reporting. It has no role in ranking; candidates are still compared
// by latency, not by this derived throughput number.
func EstimateTFLOPS(h *Hardware, p Problem, latencyCycles float64) float64 {
	if latencyCycles <= 0 || h.ComputeClockGHz <= 0 {
		return 0
	}
	seconds := latencyCycles / (h.ComputeClockGHz * 1e9)
	flops := 2 * float64(p.M) * float64(p.N) * float64(p.K) * float64(p.Batch)
	return safeDivF(flops, seconds*1e12)
}

// EstimateGFLOPS is EstimateTFLOPS scaled to GFLOPs.
func EstimateGFLOPS(h *Hardware, p Problem, latencyCycles float64) float64 {
	return EstimateTFLOPS(h, p, latencyCycles) * 1000
}
