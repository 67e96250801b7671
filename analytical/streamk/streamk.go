// Package streamk implements the Stream-K grid-size selector: a
// closed-form linear runtime model with a cache-imbalance penalty,
// independent of the Hardware descriptor in the parent analytical
// package — it consumes only problem dimensions and a small coefficient
// set (spec §2).
package streamk

import "math"

// Coefficients are the four fixed parameters of the linear runtime
// model: a is the fixed per-workgroup launch overhead, b the
// conditional partial-sum-output cost, c the per-iteration MAC cost,
// and d the cost of reading and accumulating a collaborating
// workgroup's partial sum.
type Coefficients struct {
	A float64
	B float64
	C float64
	D float64
}

// DefaultCoefficients are the values given in spec §4.I.
var DefaultCoefficients = Coefficients{
	A: 2.772 + 4.565,
	B: 3.01,
	C: 2.2935,
	D: 10.22,
}

func safeCeilDiv(n, d int64) int64 {
	if d == 0 {
		return 0
	}
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

// NumberOfOutputTiles returns ceil(m/BLK_M)*ceil(n/BLK_N)*batch.
func NumberOfOutputTiles(blkM, blkN, m, n, batch int64) int64 {
	mTiles := safeCeilDiv(m, blkM)
	nTiles := safeCeilDiv(n, blkN)
	return mTiles * nTiles * batch
}

// NumItersPerTile returns ceil(k/BLK_K).
func NumItersPerTile(blkK, k int64) int64 {
	return safeCeilDiv(k, blkK)
}

// NumItersTotal returns outputTiles*itersPerTile.
func NumItersTotal(outputTiles, itersPerTile int64) int64 {
	return outputTiles * itersPerTile
}

// NumItersPerCTA returns ceil(itersTotal/g).
func NumItersPerCTA(itersTotal, g int64) int64 {
	return safeCeilDiv(itersTotal, g)
}

// NumFixupPeers is the simple v1 peer count: ceil(itersPerTile/itersPerCTA).
func NumFixupPeers(itersPerTile, itersPerCTA int64) int64 {
	return safeCeilDiv(itersPerTile, itersPerCTA)
}

// NumFixupPeersV2 additionally accounts for uneven tile/CTA division: if
// tiles don't divide evenly across g work-groups there are always at
// least 2 fixup peers, and more if a tile spans more iterations than one
// CTA handles in one pass.
func NumFixupPeersV2(g, itersTotal, itersPerTile, itersPerCTA int64) int64 {
	hasFixup := int64(0)
	evenSplit := itersTotal%g == 0
	evenTiles := itersPerCTA%itersPerTile == 0
	if !(evenSplit && evenTiles) {
		hasFixup = 1
	}
	return safeCeilDiv(itersPerTile, itersPerCTA) + hasFixup
}

// PredictedRuntime is the v1 linear cost model.
func PredictedRuntime(blkM, blkN, blkK, m, n, k, batch, g int64, c Coefficients) (runtime float64, itersPerCTA, fixupPeers int64) {
	outputTiles := NumberOfOutputTiles(blkM, blkN, m, n, batch)
	itersPerTile := NumItersPerTile(blkK, k)
	itersTotal := NumItersTotal(outputTiles, itersPerTile)
	itersPerCTA = NumItersPerCTA(itersTotal, g)
	fixupPeers = NumFixupPeers(itersPerTile, itersPerCTA)

	indicator := 0.0
	if fixupPeers > 1 {
		indicator = 1.0
	}
	runtime = c.A + c.B*indicator + c.C*float64(itersPerCTA) + c.D*float64(fixupPeers-1)
	return runtime, itersPerCTA, fixupPeers
}

// PredictedRuntimeV2 adds a cache-imbalance penalty to the v1 model:
// the penalty is inversely proportional to the deviation of the K-split
// ratio ((output_tiles mod g)/g) from the ideal split 1/peers, scaled by
// d and the number of fixup peers. A deviation of exactly zero gives no
// penalty.
func PredictedRuntimeV2(blkM, blkN, blkK, m, n, k, batch, g int64, c Coefficients) (runtime float64, itersPerCTA, fixupPeers int64, cachePenalty float64) {
	outputTiles := NumberOfOutputTiles(blkM, blkN, m, n, batch)
	itersPerTile := NumItersPerTile(blkK, k)
	itersTotal := NumItersTotal(outputTiles, itersPerTile)
	itersPerCTA = NumItersPerCTA(itersTotal, g)
	fixupPeers = NumFixupPeersV2(g, itersTotal, itersPerTile, itersPerCTA)

	remainderTiles := outputTiles % g
	kSplitRatio := float64(remainderTiles) / float64(g)

	cachePenalty = 0.0
	if fixupPeers >= 1 {
		idealSplitRatio := 1.0 / float64(fixupPeers)
		deviation := kSplitRatio - idealSplitRatio
		if deviation < 0 {
			deviation = -deviation
		}
		imbalance := 0.0
		if deviation != 0 {
			imbalance = 1.0 / deviation
		}
		cachePenalty = c.D * imbalance * float64(fixupPeers)
	}

	indicator := 0.0
	if fixupPeers > 1 {
		indicator = 1.0
	}
	runtime = c.A + c.B*indicator + c.C*float64(itersPerCTA) + c.D*float64(fixupPeers-1) + cachePenalty
	return runtime, itersPerCTA, fixupPeers, cachePenalty
}

// BestPredictedGridSize sweeps candidate processor (work-group) counts
// g in [gridStart, gridEnd] and returns the g minimizing PredictedRuntimeV2.
func BestPredictedGridSize(blkM, blkN, blkK, m, n, k, batch, gridStart, gridEnd int64, c Coefficients) int64 {
	bestG := gridStart
	bestRuntime := math.Inf(1)

	for g := gridStart; g <= gridEnd; g++ {
		runtime, _, _, _ := PredictedRuntimeV2(blkM, blkN, blkK, m, n, k, batch, g, c)
		if runtime < bestRuntime {
			bestRuntime = runtime
			bestG = g
		}
	}
	return bestG
}
