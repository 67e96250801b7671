package analytical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHardwareDerivesCUPerL2(t *testing.T) {
	h := NewHardware(ArchGFX942, 304, 65536, 8, 17, 7.3125, 4, 4*1024*1024, 1.8, 4, 0.015)
	assert.Equal(t, 38, h.CUPerL2)
	assert.Equal(t, h.NCU, h.CUPerL2*h.NumXCD)
}

func TestNewHardwareFromDevicePropertiesDerivesRatios(t *testing.T) {
	props := DeviceProperties{
		GCNArchName:         "gfx942:sramecc+:xnack-",
		MultiProcessorCount: 304,
		SharedMemPerBlock:   65536,
		ClockRateKHz:        1_800_000,
		MemoryClockRateKHz:  1_200_000,
		L2CacheSize:         4 * 1024 * 1024,
	}
	h, err := NewHardwareFromDeviceProperties(props)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, ArchGFX942, h.Arch)
	assert.InDelta(t, 1.8, h.ComputeClockGHz, 1e-9)

	want942 := archConstants[ArchGFX942]
	wantMem1 := 1e9 * want942.Mem1PerfRatio / props.ClockRateKHz
	assert.InDelta(t, wantMem1, h.Mem1PerfRatio, 1e-6)
}

func TestNewHardwareFromDevicePropertiesUnsupportedArch(t *testing.T) {
	_, err := NewHardwareFromDeviceProperties(DeviceProperties{GCNArchName: "gfx1100"})
	if err == nil {
		t.Fatal("expected UnsupportedArchitectureError, got nil")
	}
	var target *UnsupportedArchitectureError
	if !asUnsupportedArch(err, &target) {
		t.Fatalf("expected *UnsupportedArchitectureError, got %T: %v", err, err)
	}
}

func asUnsupportedArch(err error, target **UnsupportedArchitectureError) bool {
	e, ok := err.(*UnsupportedArchitectureError)
	if ok {
		*target = e
	}
	return ok
}

func TestGetMILatencyHitAndFallback(t *testing.T) {
	h := NewHardware(ArchGFX942, 304, 65536, 8, 17, 7.3125, 4, 4*1024*1024, 1.8, 4, 0.015)

	got := h.GetMILatency(32, 32, 8, 16)
	assert.InDelta(t, 32.0/4.0, got, 1e-9)

	fallback := h.GetMILatency(999, 999, 999, 999)
	assert.InDelta(t, 32.0/4.0, fallback, 1e-9)
}
