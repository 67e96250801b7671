package analytical

// Problem is the GEMM shape and data-type bundle being ranked: output
// dimensions M x N, reduction dimension K, batch count, the two
// transpose flags, element widths for A/B/output, and an optional
// MX (microscaling) block size. MXBlockSize = 0 disables scaled-datatype
// byte accounting entirely.
type Problem struct {
	M, N, K     int64
	Batch       int64
	TransA      bool
	TransB      bool
	ElemBitsA   int
	ElemBitsB   int
	ElemBitsOut int
	MXBlockSize int64
}

// MacroTile is one candidate tile configuration: a macro-tile shape
// (MT_M, MT_N, MT_K) built from matrix-instruction shape (MI_M, MI_N,
// MI_K) with a given occupancy. Callers are responsible for ensuring
// MT_* are multiples of MI_* before passing a candidate in; this
// package does not re-validate that relationship.
type MacroTile struct {
	MTM, MTN, MTK int64
	MIM, MIN, MIK int
	Occupancy     int
}

// ResultTuple is a ranked macro-tile candidate paired with its
// predicted whole-problem latency in cycles.
type ResultTuple struct {
	LatencyCycles float64
	Tile          MacroTile
}
