package analytical

// CeilDiv returns ceil(n/d) for non-negative n, d, guarding division by
// zero by returning 0 rather than propagating it (spec §4.D, §7). Uses
// the remainder form rather than (n+d-1)/d to stay correct for inputs
// up to 2^63 without overflowing the numerator.
func CeilDiv(n, d int64) int64 {
	if d == 0 {
		return 0
	}
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

// ArithmeticIntensity returns the FLOPs-per-byte ratio of a tile of
// shape m x n x k over elements of bpe bytes: 2mnk / ((mn+nk+mk)*bpe).
func ArithmeticIntensity(m, n, k int64, bpe int64) float64 {
	denom := (m*n + n*k + m*k) * bpe
	if denom <= 0 {
		return 0
	}
	return 2 * float64(m*n*k) / float64(denom)
}

// ComputeALoads returns the element count of one A-tile load, MT_M*MT_K.
func ComputeALoads(mtM, mtK int64) int64 {
	return mtM * mtK
}

// ComputeBLoads returns the element count of one B-tile load, MT_N*MT_K.
func ComputeBLoads(mtN, mtK int64) int64 {
	return mtN * mtK
}

// ComputeActiveCU returns the number of compute units actually occupied
// by a problem of the given shape tiled at (MT_M, MT_N): the total tile
// count clamped to the device's CU count.
func ComputeActiveCU(h *Hardware, m, n, batch, mtM, mtN int64) int64 {
	totalTiles := CeilDiv(m, mtM) * CeilDiv(n, mtN) * batch
	nCU := int64(h.NCU)
	if totalTiles < nCU {
		return totalTiles
	}
	return nCU
}

// ComputeBWLimitFromOccupancy models the bandwidth derating that occurs
// when fewer than 100 CUs are active: active_cu*0.008 below 100 CUs,
// full bandwidth otherwise.
func ComputeBWLimitFromOccupancy(activeCU int64) float64 {
	if activeCU < 100 {
		limited := float64(activeCU) * 0.008
		if limited < 1.0 {
			return limited
		}
		return 1.0
	}
	return 1.0
}

// CheckLDSCapacity reports whether a macro-tile candidate's A+B scratchpad
// footprint fits within the device's LDS capacity. Shared by macro-tile
// search (component G) and WGM selection (component H), following the
// source's single check_LDS_capacity helper rather than two inlined
// copies of the same test.
func CheckLDSCapacity(h *Hardware, tile MacroTile, elemBitsA int64) bool {
	aLoads := ComputeALoads(tile.MTM, tile.MTK)
	bLoads := ComputeBLoads(tile.MTN, tile.MTK)
	bytesPerElem := CeilDiv(elemBitsA, 8)
	footprint := (aLoads + bLoads) * bytesPerElem
	return footprint <= h.LDSCapacity
}
