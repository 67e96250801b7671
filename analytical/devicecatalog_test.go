package analytical

import "testing"

// TestScenarioS5 mirrors spec §8's device-catalog scenario.
func TestScenarioS5(t *testing.T) {
	if IsStandardCU(ProcessorGFX90A, 104) {
		t.Error("expected IsStandardCU(gfx90a, 104) = false")
	}
	if !IsStandardCU(ProcessorGFX90A, 110) {
		t.Error("expected IsStandardCU(gfx90a, 110) = true")
	}
	if !RunsKernelTargeting(ProcessorGFX942, ProcessorGFX900) {
		t.Error("expected RunsKernelTargeting(gfx942, gfx900) = true")
	}
	if RunsKernelTargeting(ProcessorGFX942, ProcessorGFX803) {
		t.Error("expected RunsKernelTargeting(gfx942, gfx803) = false")
	}
}

func TestInvariantIsStandardCU(t *testing.T) {
	if IsStandardCU(ProcessorGFX942, 80) {
		t.Error("expected (gfx942, 80) to be non-standard")
	}
	if !IsStandardCU(ProcessorGFX942, 304) {
		t.Error("expected (gfx942, 304) to be standard")
	}
}

func TestDeviceIsStandardCUCaches(t *testing.T) {
	d := NewDevice(ProcessorGFX942, 80, "MI300X")
	first := d.IsStandardCU()
	second := d.IsStandardCU()
	if first != second {
		t.Fatalf("cached IsStandardCU result changed between calls: %v then %v", first, second)
	}
	if first {
		t.Error("expected MI300X with 80 CUs to be non-standard")
	}
}

func TestRunsKernelTargetingSelfAndNewer(t *testing.T) {
	if !RunsKernelTargeting(ProcessorGFX942, ProcessorGFX942) {
		t.Error("expected a processor to target itself")
	}
	if RunsKernelTargeting(ProcessorGFX900, ProcessorGFX942) {
		t.Error("expected an older processor to be unable to run a newer target")
	}
}

func TestDeviceDefaultsStreamKHints(t *testing.T) {
	d := NewDevice(ProcessorGFX950, 256, "MI350X")
	if d.SKMaxCUs != 256 {
		t.Errorf("expected SKMaxCUs to default to CUCount, got %d", d.SKMaxCUs)
	}
	if !d.SKDynamicGrid || !d.SKDynamicWGM {
		t.Error("expected dynamic grid/WGM to default to true")
	}
}
