package analytical

import "github.com/sirupsen/logrus"

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func clamp64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func warnIfOverOne(estimator string, hit float64) {
	if hit > 1.0 {
		logrus.Warnf("analytical: %v", (&HitRateAnomalyWarning{Estimator: estimator, HitRate: hit}).Error())
	}
}

// EstimateL2Hit estimates the per-CU L2 (on-chip, tier mem1) hit rate
// for a WGM-shaped block of output tiles, following a reuse model where
// a contiguous WGM-wide block of tiles shares A/B loads. All intermediate
// arithmetic is int64 (spec §9: "Integer overflow is a real risk ...
// use 64-bit signed in estimators"); the hit-rate ratio is cast to float
// only at the end. The returned value is never clamped to [0,1] — a
// value over 1.0 is logged as an anomaly and returned as computed.
func EstimateL2Hit(h *Hardware, m, n, k, mtM, mtN, mtK, activeCU, wgm int64, elemBits int) float64 {
	gridM := CeilDiv(m, mtM)
	gridN := CeilDiv(n, mtN)
	if wgm < 1 {
		wgm = 1
	}

	cuPerXCD := int64(1)
	if h.NumXCD != 0 {
		cuPerXCD = maxInt64(1, CeilDiv(activeCU, int64(h.NumXCD)))
	}

	l2M := minInt64(wgm, gridM)
	if l2M < 1 {
		l2M = 1
	}
	l2N := cuPerXCD / l2M

	if l2N > gridN && gridN > 0 {
		l2M += (l2N/gridN - 1) * wgm
		l2N = gridN
	}

	l2M = clamp64(l2M, 1, maxInt64(gridM, 1))
	l2N = clamp64(l2N, 1, maxInt64(gridN, 1))

	bytesPerElem := CeilDiv(int64(elemBits), 8)
	capacity := int64(0)
	if bytesPerElem > 0 {
		capacity = h.L2Capacity / bytesPerElem
	}

	aUncached := l2M * mtM * mtK
	bUncached := l2N * mtN * mtK
	for aUncached+bUncached > capacity && l2M >= 2 {
		l2M--
		aUncached = l2M * mtM * mtK
	}

	totalReads := l2M*l2N*mtM*mtK + l2N*l2M*mtN*mtK
	uncachedReads := aUncached + bUncached

	denom := maxInt64(totalReads, 1)
	hit := float64(totalReads-uncachedReads) / float64(denom)
	warnIfOverOne("estimate_l2_hit", hit)
	return hit
}

// EstimateMALLHit estimates the last-level-cache (MALL, tier mem2) hit
// rate. It differs from EstimateL2Hit in three ways (spec §4.E): when
// the tile count grid_m*grid_n*batch is smaller than the active CU count,
// the CU count used for block sizing becomes that tile count divided by
// the XCD count; there
// is no capacity-bound reduction loop (MALL is assumed large enough);
// and the N-dimension of the reuse block is num_cus/WGM directly, not
// divided again by min(WGM, grid_m).
func EstimateMALLHit(h *Hardware, m, n, k, mtM, mtN, mtK, batch, activeCU, wgm int64) float64 {
	gridM := CeilDiv(m, mtM)
	gridN := CeilDiv(n, mtN)
	if wgm < 1 {
		wgm = 1
	}

	numCUs := activeCU
	if gridM*gridN*batch < activeCU && h.NumXCD != 0 {
		numCUs = (gridM * gridN * batch) / int64(h.NumXCD)
	}

	mallM := minInt64(wgm, gridM)
	if mallM < 1 {
		mallM = 1
	}
	mallN := numCUs / wgm

	if mallN > gridN && gridN > 0 {
		mallM += (mallN/gridN - 1) * wgm
		mallN = gridN
	}

	mallM = clamp64(mallM, 1, maxInt64(gridM, 1))
	mallN = clamp64(mallN, 1, maxInt64(gridN, 1))

	aUncached := mallM * mtM * mtK
	bUncached := mallN * mtN * mtK

	totalReads := mallM*mallN*mtM*mtK + mallN*mallM*mtN*mtK
	uncachedReads := aUncached + bUncached

	denom := maxInt64(totalReads, 1)
	hit := float64(totalReads-uncachedReads) / float64(denom)
	warnIfOverOne("estimate_mall_hit", hit)
	return hit
}
