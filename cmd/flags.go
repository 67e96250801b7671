package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gemm-origami/origami/analytical"
)

// hardwareFlags bundles the Hardware constructor's arguments as CLI flags
// shared across the rank, gridsize, and wgm subcommands.
type hardwareFlags struct {
	arch           string
	ncu            int
	ldsCapacity    int64
	numXCD         int
	mem1PerfRatio  float64
	mem2PerfRatio  float64
	mem3PerfRatio  float64
	l2Capacity     int64
	computeClockGHz float64
	parallelMICU   int
	percentBWPerWG float64
}

// problemFlags bundles the Problem fields as CLI flags shared across the
// rank, gridsize, and wgm subcommands.
type problemFlags struct {
	m, n, k, batch int64
	transA, transB bool
	elemBitsA      int
	elemBitsB      int
	elemBitsOut    int
	mxBlockSize    int64
}

// registerHardwareFlags binds a hardwareFlags bundle's fields to a command's
// flag set, with defaults matching an MI300X-class gfx942 device.
func registerHardwareFlags(f *pflag.FlagSet, hw *hardwareFlags) {
	f.StringVar(&hw.arch, "arch", "gfx942", "GCN architecture name (gfx942, gfx950)")
	f.IntVar(&hw.ncu, "ncu", 304, "number of compute units")
	f.Int64Var(&hw.ldsCapacity, "lds", 65536, "LDS capacity per CU in bytes")
	f.IntVar(&hw.numXCD, "num-xcd", 8, "number of XCDs")
	f.Float64Var(&hw.mem1PerfRatio, "mem1-ratio", 17, "tier-1 memory perf ratio")
	f.Float64Var(&hw.mem2PerfRatio, "mem2-ratio", 7.3125, "tier-2 (MALL) memory perf ratio")
	f.Float64Var(&hw.mem3PerfRatio, "mem3-ratio", 4, "tier-3 (device memory) perf ratio")
	f.Int64Var(&hw.l2Capacity, "l2-capacity", 4*1024*1024, "L2 cache capacity in bytes")
	f.Float64Var(&hw.computeClockGHz, "compute-clock-ghz", 1.8, "compute clock in GHz")
	f.IntVar(&hw.parallelMICU, "parallel-mi-cu", 4, "parallel matrix-instruction units per CU")
	f.Float64Var(&hw.percentBWPerWG, "bw-per-wg", 0.015, "fraction of device bandwidth a single work-group consumes")
}

// registerProblemFlags binds a problemFlags bundle's fields to a command's
// flag set, with defaults describing a square fp16 GEMM with B transposed.
func registerProblemFlags(f *pflag.FlagSet, p *problemFlags) {
	f.Int64Var(&p.m, "m", 4096, "GEMM M dimension")
	f.Int64Var(&p.n, "n", 4096, "GEMM N dimension")
	f.Int64Var(&p.k, "k", 4096, "GEMM K (reduction) dimension")
	f.Int64Var(&p.batch, "batch", 1, "batch count")
	f.BoolVar(&p.transA, "trans-a", false, "A operand is transposed")
	f.BoolVar(&p.transB, "trans-b", true, "B operand is transposed")
	f.IntVar(&p.elemBitsA, "elem-bits-a", 16, "A element width in bits")
	f.IntVar(&p.elemBitsB, "elem-bits-b", 16, "B element width in bits")
	f.IntVar(&p.elemBitsOut, "elem-bits-out", 32, "output element width in bits")
	f.Int64Var(&p.mxBlockSize, "mx-block-size", 0, "MX microscaling block size (0 disables)")
}

// buildHardware resolves a hardwareFlags bundle into an *analytical.Hardware.
func buildHardware(f *hardwareFlags) (*analytical.Hardware, error) {
	arch := analytical.ArchNameToEnum(f.arch)
	if arch == analytical.ArchCount {
		return nil, fmt.Errorf("unsupported architecture %q", f.arch)
	}
	return analytical.NewHardware(
		arch,
		f.ncu,
		f.ldsCapacity,
		f.numXCD,
		f.mem1PerfRatio, f.mem2PerfRatio, f.mem3PerfRatio,
		f.l2Capacity,
		f.computeClockGHz,
		f.parallelMICU,
		f.percentBWPerWG,
	), nil
}

// buildProblem resolves a problemFlags bundle into an analytical.Problem.
func buildProblem(f *problemFlags) analytical.Problem {
	return analytical.Problem{
		M: f.m, N: f.n, K: f.k, Batch: f.batch,
		TransA: f.transA, TransB: f.transB,
		ElemBitsA: f.elemBitsA, ElemBitsB: f.elemBitsB, ElemBitsOut: f.elemBitsOut,
		MXBlockSize: f.mxBlockSize,
	}
}

// parseTile parses a "MTM,MTN,MTK,MIM,MIN,MIK" candidate spec into a
// MacroTile. Occupancy defaults to 1; it has no effect on latency.
func parseTile(spec string) (analytical.MacroTile, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 6 {
		return analytical.MacroTile{}, fmt.Errorf("tile %q: want 6 comma-separated fields MTM,MTN,MTK,MIM,MIN,MIK", spec)
	}
	vals := make([]int64, 6)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return analytical.MacroTile{}, fmt.Errorf("tile %q: field %d: %w", spec, i, err)
		}
		vals[i] = v
	}
	return analytical.MacroTile{
		MTM: vals[0], MTN: vals[1], MTK: vals[2],
		MIM: int(vals[3]), MIN: int(vals[4]), MIK: int(vals[5]),
		Occupancy: 1,
	}, nil
}

// parseTiles parses a slice of tile specs, failing on the first bad one.
func parseTiles(specs []string) ([]analytical.MacroTile, error) {
	tiles := make([]analytical.MacroTile, 0, len(specs))
	for _, s := range specs {
		t, err := parseTile(s)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}
