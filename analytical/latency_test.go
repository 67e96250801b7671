package analytical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func s1Hardware() *Hardware {
	return NewHardware(ArchGFX942, 304, 65536, 8, 17, 7.3125, 4, 4*1024*1024, 1.8, 4, 0.015)
}

func s1Problem() Problem {
	return Problem{
		M: 4096, N: 4096, K: 4096, Batch: 1,
		TransA: false, TransB: true,
		ElemBitsA: 16, ElemBitsB: 16, ElemBitsOut: 32,
		MXBlockSize: 0,
	}
}

func s1Tile() MacroTile {
	return MacroTile{MTM: 128, MTN: 128, MTK: 32, MIM: 32, MIN: 32, MIK: 8, Occupancy: 2}
}

// TestScenarioS1 mirrors the end-to-end scenario in spec §8.
func TestScenarioS1(t *testing.T) {
	h := s1Hardware()
	p := s1Problem()
	tile := s1Tile()

	assert.True(t, CheckLDSCapacity(h, tile, int64(p.ElemBitsA)))

	activeCU := ComputeActiveCU(h, p.M, p.N, p.Batch, tile.MTM, tile.MTN)
	hit := EstimateL2Hit(h, p.M, p.N, p.K, tile.MTM, tile.MTN, tile.MTK, activeCU, 1, 16)
	assert.GreaterOrEqual(t, hit, 0.0)

	latency := ComputeTotalLatency(h, p, tile, 1, 1)
	if latency <= 0 {
		t.Fatalf("expected positive finite latency, got %v", latency)
	}
}

// TestScenarioS2 mirrors the tie-break-by-arithmetic-intensity scenario.
func TestScenarioS2(t *testing.T) {
	h := s1Hardware()
	p := s1Problem()

	t1 := MacroTile{MTM: 128, MTN: 128, MTK: 32, MIM: 32, MIN: 32, MIK: 8}
	t2 := MacroTile{MTM: 256, MTN: 128, MTK: 32, MIM: 32, MIN: 32, MIK: 8}

	results, err := SelectBestMacroTileSize(h, p, []MacroTile{t1, t2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	aiT1 := tileArithmeticIntensity(t1)
	aiT2 := tileArithmeticIntensity(t2)
	if aiT2 <= aiT1 {
		t.Fatalf("expected AI(T2) > AI(T1), got %v <= %v", aiT2, aiT1)
	}
}

func TestLayoutPenaltyFactorTNCompounds(t *testing.T) {
	// Open Question (a): both A and B penalties can fire independently
	// and compound multiplicatively to 2.25.
	factor := layoutPenaltyFactor(true, false, 33, 33, 33, 16, 16, true)
	assert.InDelta(t, 2.25, factor, 1e-9)
}

func TestLayoutPenaltyFactorTNExcludedFromMemory(t *testing.T) {
	factor := layoutPenaltyFactor(true, false, 33, 33, 33, 16, 16, false)
	assert.Equal(t, 1.0, factor)
}

func TestLayoutPenaltyFactorNN(t *testing.T) {
	factor := layoutPenaltyFactor(false, false, 8, 8, 8, 16, 16, true)
	assert.Equal(t, 4.0, factor)
}

func TestComputeMemoryLatencyMXScaleQuirk(t *testing.T) {
	// Open Question (c): MX-scale bytes use MT_M*MT_K for both A and B.
	h := s1Hardware()
	p := Problem{
		M: 4096, N: 4096, K: 4096, Batch: 1,
		TransA: false, TransB: true,
		ElemBitsA: 4, ElemBitsB: 4, ElemBitsOut: 32,
		MXBlockSize: 32,
	}
	tile := s1Tile()
	lat := ComputeMemoryLatency(h, p, tile, 1, 0.1)
	if lat <= 0 {
		t.Fatalf("expected positive memory latency, got %v", lat)
	}
}

func TestComputeTotalLatencyNumIterClampedWhenKBelowMTK(t *testing.T) {
	// Open Question (d): K <= MT_K clamps num_iter to 1, never 0.
	h := s1Hardware()
	p := s1Problem()
	p.K = 16
	tile := s1Tile() // MT_K = 32 > K
	lat := ComputeTotalLatency(h, p, tile, 1, 1)
	if lat <= 0 {
		t.Fatalf("expected positive latency even when K <= MT_K, got %v", lat)
	}
}

func TestComputeTotalLatencyMonotonicInK(t *testing.T) {
	h := s1Hardware()
	p1 := s1Problem()
	p2 := s1Problem()
	p2.K = p1.K * 2
	tile := s1Tile()

	l1 := ComputeTotalLatency(h, p1, tile, 1, 1)
	l2 := ComputeTotalLatency(h, p2, tile, 1, 1)
	if l2 < l1 {
		t.Fatalf("expected latency non-decreasing in K: L(K)=%v, L(2K)=%v", l1, l2)
	}
}

func TestEstimateTFLOPSAndGFLOPS(t *testing.T) {
	h := s1Hardware()
	p := s1Problem()
	tflops := EstimateTFLOPS(h, p, 1_000_000)
	gflops := EstimateGFLOPS(h, p, 1_000_000)
	assert.InDelta(t, tflops*1000, gflops, 1e-6)
	assert.Equal(t, 0.0, EstimateTFLOPS(h, p, 0))
}
