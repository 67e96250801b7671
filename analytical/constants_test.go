package analytical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchNameToEnum(t *testing.T) {
	assert.Equal(t, ArchGFX942, ArchNameToEnum("gfx942:sramecc+:xnack-"))
	assert.Equal(t, ArchGFX942, ArchNameToEnum("gfx942"))
	assert.Equal(t, ArchGFX950, ArchNameToEnum("gfx950:sramecc+:xnack-"))
	assert.Equal(t, ArchCount, ArchNameToEnum("gfx1100"))
	assert.Equal(t, ArchCount, ArchNameToEnum(""))
}

func TestArchitectureConstantsExactValues(t *testing.T) {
	gfx942 := archConstants[ArchGFX942]
	assert.Equal(t, 8, gfx942.NumXCDs)
	assert.Equal(t, 17.0, gfx942.Mem1PerfRatio)
	assert.InDelta(t, 7.3125073125073125, gfx942.Mem2PerfRatio, 1e-9)
	assert.Equal(t, 4.0, gfx942.Mem3PerfRatio)
	assert.Equal(t, 4, gfx942.ParallelMICU)
	assert.Equal(t, 0.015, gfx942.PercentBWPerWG)
	assert.Equal(t, 1.5, gfx942.MemClockRatio)

	gfx950 := archConstants[ArchGFX950]
	assert.Equal(t, 8, gfx950.NumXCDs)
	assert.Equal(t, 17.0, gfx950.Mem1PerfRatio)
	assert.InDelta(t, 8.53125853125853125, gfx950.Mem2PerfRatio, 1e-9)
	assert.Equal(t, 4.0, gfx950.Mem3PerfRatio)
	assert.Equal(t, 6, gfx950.ParallelMICU)
	assert.Equal(t, 0.008, gfx950.PercentBWPerWG)
}

func TestInstructionLatencyTableContainsKnownEntries(t *testing.T) {
	gfx942 := instructionLatency[ArchGFX942]
	cycles, ok := gfx942[MatrixInstruction{32, 32, 8, 16}]
	if !ok || cycles != 32 {
		t.Fatalf("gfx942[(32,32,8,16)] = %d, %v; want 32, true", cycles, ok)
	}

	gfx950 := instructionLatency[ArchGFX950]
	// gfx950-only large-K entry absent from gfx942.
	cycles, ok = gfx950[MatrixInstruction{16, 16, 128, 4}]
	if !ok || cycles != 16 {
		t.Fatalf("gfx950[(16,16,128,4)] = %d, %v; want 16, true", cycles, ok)
	}

	// gfx950's table is not a strict superset of gfx942's: this shape is
	// present for gfx942 but absent for gfx950, so a lookup for it on
	// gfx950 must miss and fall back, not silently hit.
	if _, ok := gfx942[MatrixInstruction{16, 16, 32, 32}]; !ok {
		t.Fatal("expected gfx942 to contain (16,16,32,32)")
	}
	if _, ok := gfx950[MatrixInstruction{16, 16, 32, 32}]; ok {
		t.Fatal("expected gfx950 to omit (16,16,32,32), since the original's gfx950 table never lists it")
	}
}
