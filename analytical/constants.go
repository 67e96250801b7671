package analytical

import "strings"

// Architecture identifies a target GPU ISA generation.
type Architecture int

const (
	ArchGFX942 Architecture = iota
	ArchGFX950
	// ArchCount is the sentinel returned for an unrecognized architecture
	// string; it never appears as a key in the constants/instruction
	// tables and must be rejected by Hardware construction.
	ArchCount
)

func (a Architecture) String() string {
	switch a {
	case ArchGFX942:
		return "gfx942"
	case ArchGFX950:
		return "gfx950"
	default:
		return "Count"
	}
}

var archNameLookup = map[string]Architecture{
	"gfx942": ArchGFX942,
	"gfx950": ArchGFX950,
}

// ArchNameToEnum truncates the input at the first ':' (device strings
// commonly carry target-feature suffixes, e.g. "gfx942:sramecc+:xnack-")
// and resolves the remaining prefix to an Architecture, or ArchCount if
// unrecognized.
func ArchNameToEnum(name string) Architecture {
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		name = name[:idx]
	}
	if arch, ok := archNameLookup[name]; ok {
		return arch
	}
	return ArchCount
}

// ArchitectureConstants is the static per-architecture parameter bundle:
// XCD count, the three memory-tier bandwidth ratios, parallel matrix
// instructions issued per CU, per-workgroup bandwidth share, and the
// memory clock scaling factor applied to mem2.
type ArchitectureConstants struct {
	NumXCDs         int
	Mem1PerfRatio   float64
	Mem2PerfRatio   float64
	Mem3PerfRatio   float64
	ParallelMICU    int
	PercentBWPerWG  float64
	MemClockRatio   float64
}

// archConstants holds the exact per-architecture constants. Constructor
// argument order in the source is
// (num_xcds, mem1, mem2, mem3, parallel_MI_CU, percent_bw_per_wg, mem_clock_ratio).
var archConstants = map[Architecture]ArchitectureConstants{
	ArchGFX942: {
		NumXCDs:        8,
		Mem1PerfRatio:  17,
		Mem2PerfRatio:  1.21875121875121875122 * 6,
		Mem3PerfRatio:  4,
		ParallelMICU:   4,
		PercentBWPerWG: 0.015,
		MemClockRatio:  1.5,
	},
	ArchGFX950: {
		NumXCDs:        8,
		Mem1PerfRatio:  17,
		Mem2PerfRatio:  1.21875121875121875122 * 7,
		Mem3PerfRatio:  4,
		ParallelMICU:   6,
		PercentBWPerWG: 0.008,
		MemClockRatio:  1.5,
	},
}

// instructionLatency is the per-architecture matrix-instruction issue
// latency table, in cycles, keyed by MatrixInstruction. Reproduced
// verbatim from the source tables; ranking behavior depends on these
// exact values, not just their relative order.
var instructionLatency = map[Architecture]map[MatrixInstruction]int64{
	ArchGFX942: {
		{16, 16, 1, 32}:  32,
		{16, 16, 4, 32}:  32,
		{16, 16, 4, 64}:  32,
		{4, 4, 4, 16}:    8,
		{32, 32, 2, 32}:  64,
		{16, 16, 4, 16}:  32,
		{32, 32, 4, 8}:   64,
		{32, 32, 16, 8}:  32,
		{4, 4, 4, 64}:    16,
		{32, 32, 1, 32}:  64,
		{32, 32, 8, 16}:  32,
		{16, 16, 16, 16}: 16,
		{32, 32, 4, 16}:  64,
		{4, 4, 1, 32}:    8,
		{16, 16, 32, 8}:  16,
		{4, 4, 4, 8}:     8,
		{32, 32, 4, 32}:  32,
		{16, 16, 4, 8}:   32,
		{16, 16, 8, 32}:  16,
		{16, 16, 32, 32}: 16,
	},
	ArchGFX950: {
		// gfx950's table mostly overlaps gfx942's but is not a strict
		// superset: it omits {16,16,32,32} and adds a handful of large-K
		// shapes used for narrow (MX-scaled) formats.
		{16, 16, 1, 32}:   32,
		{16, 16, 4, 32}:   32,
		{16, 16, 4, 64}:   32,
		{4, 4, 4, 16}:     8,
		{32, 32, 2, 32}:   64,
		{16, 16, 4, 16}:   32,
		{32, 32, 4, 8}:    64,
		{32, 32, 16, 8}:   32,
		{4, 4, 4, 64}:     16,
		{32, 32, 1, 32}:   64,
		{32, 32, 8, 16}:   32,
		{16, 16, 16, 16}:  16,
		{32, 32, 4, 16}:   64,
		{4, 4, 1, 32}:     8,
		{16, 16, 32, 8}:   16,
		{4, 4, 4, 8}:      8,
		{32, 32, 4, 32}:   32,
		{16, 16, 4, 8}:    32,
		{16, 16, 8, 32}:   16,
		{32, 32, 64, 8}:   64,
		{16, 16, 32, 16}:  16,
		{16, 16, 128, 8}:  32,
		{16, 16, 128, 6}:  16,
		{16, 16, 128, 4}:  16,
	},
}
