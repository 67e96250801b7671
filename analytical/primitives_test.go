package analytical

import "testing"

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		n, d, want int64
	}{
		{10, 3, 4},
		{9, 3, 3},
		{0, 5, 0},
		{5, 0, 0},
		{1, 1, 1},
	}
	for _, tc := range tests {
		if got := CeilDiv(tc.n, tc.d); got != tc.want {
			t.Errorf("CeilDiv(%d, %d) = %d, want %d", tc.n, tc.d, got, tc.want)
		}
	}
}

func TestCeilDivInvariant(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 128, 4096, 1 << 40} {
		for _, d := range []int64{1, 2, 3, 128, 4096} {
			q := CeilDiv(n, d)
			if q*d < n {
				t.Fatalf("CeilDiv(%d,%d)=%d violates q*d>=n", n, d, q)
			}
			if q > 0 && (q-1)*d >= n {
				t.Fatalf("CeilDiv(%d,%d)=%d violates (q-1)*d<n", n, d, q)
			}
		}
	}
}

func TestArithmeticIntensity(t *testing.T) {
	ai := ArithmeticIntensity(128, 128, 32, 2)
	if ai <= 0 {
		t.Fatalf("expected positive arithmetic intensity, got %v", ai)
	}
	if got := ArithmeticIntensity(0, 0, 0, 2); got != 0 {
		t.Errorf("expected 0 for degenerate shape, got %v", got)
	}
}

func TestComputeActiveCUClampsToNCU(t *testing.T) {
	h := NewHardware(ArchGFX942, 304, 65536, 8, 17, 7.3125, 4, 4*1024*1024, 1.8, 4, 0.015)
	active := ComputeActiveCU(h, 4096, 4096, 1, 128, 128)
	if active > int64(h.NCU) {
		t.Fatalf("ComputeActiveCU = %d exceeds N_CU = %d", active, h.NCU)
	}
	if active < 1 {
		t.Fatalf("ComputeActiveCU = %d, want >= 1 for nonzero problem", active)
	}
}

func TestComputeBWLimitFromOccupancy(t *testing.T) {
	if got := ComputeBWLimitFromOccupancy(50); got != 0.4 {
		t.Errorf("ComputeBWLimitFromOccupancy(50) = %v, want 0.4", got)
	}
	if got := ComputeBWLimitFromOccupancy(304); got != 1.0 {
		t.Errorf("ComputeBWLimitFromOccupancy(304) = %v, want 1.0", got)
	}
	if got := ComputeBWLimitFromOccupancy(200); got != 1.0 {
		t.Errorf("ComputeBWLimitFromOccupancy(200) = %v, want 1.0 (>=100 branch)", got)
	}
}

func TestCheckLDSCapacity(t *testing.T) {
	h := NewHardware(ArchGFX942, 304, 65536, 8, 17, 7.3125, 4, 4*1024*1024, 1.8, 4, 0.015)
	small := MacroTile{MTM: 128, MTN: 128, MTK: 32, MIM: 32, MIN: 32, MIK: 8}
	if !CheckLDSCapacity(h, small, 16) {
		t.Error("expected small tile to fit in LDS capacity")
	}

	huge := MacroTile{MTM: 4096, MTN: 4096, MTK: 4096, MIM: 32, MIN: 32, MIK: 8}
	if CheckLDSCapacity(h, huge, 16) {
		t.Error("expected huge tile to exceed LDS capacity")
	}
}
