package analytical

// Processor identifies a GPU device family, distinct from Architecture:
// Architecture selects a cost-model constant set, Processor selects a
// kernel-targeting/subsumption relation (spec §3 "Device descriptor").
//
// The declared ordering matters: RunsKernelTargeting compares processors
// with '>'. spec.md does not state the ordering and it is not present
// in the reference sources retrieved for this model; the ascending
// generation order below was adopted (see DESIGN.md's Open Question
// decisions) and is consistent with gfx900 acting as the universal
// baseline and gfx803 as the sole exception to that baseline.
type Processor int

const (
	ProcessorGFX803 Processor = iota
	ProcessorGFX900
	ProcessorGFX90A
	ProcessorGFX942
	ProcessorGFX950
)

func (p Processor) String() string {
	switch p {
	case ProcessorGFX803:
		return "gfx803"
	case ProcessorGFX900:
		return "gfx900"
	case ProcessorGFX90A:
		return "gfx90a"
	case ProcessorGFX942:
		return "gfx942"
	case ProcessorGFX950:
		return "gfx950"
	default:
		return "unknown"
	}
}

// nonStandardCUCounts is the fixed small mapping of processor to the set
// of compute-unit counts considered non-standard (binned/harvested
// parts), per spec §3.
var nonStandardCUCounts = map[Processor]map[int]struct{}{
	ProcessorGFX90A: setOf(104),
	ProcessorGFX942: setOf(20, 38, 64, 80, 228),
}

func setOf(vals ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Device is a small value type describing one GPU part: its processor
// family, compute-unit count, and a human-readable name, plus the
// Stream-K grid-shape hints carried on the original device descriptor
// (SPEC_FULL §3 4.J′).
type Device struct {
	Processor      Processor
	CUCount        int
	Name           string
	SKDynamicGrid  bool
	SKDynamicWGM   bool
	SKMaxCUs       int
	SKGridMultiplier float64
	SKFixedGrid    bool
	SKFullTiles    bool

	standardCUCached *bool
}

// NewDevice builds a Device with the Stream-K hints defaulted to the
// catalog's standard values: a dynamic grid and WGM, SKMaxCUs equal to
// the device's own CUCount, a 1.0 grid multiplier, no fixed grid, and
// full-tile Stream-K disabled.
func NewDevice(processor Processor, cuCount int, name string) *Device {
	return &Device{
		Processor:        processor,
		CUCount:          cuCount,
		Name:             name,
		SKDynamicGrid:    true,
		SKDynamicWGM:     true,
		SKMaxCUs:         cuCount,
		SKGridMultiplier: 1.0,
		SKFixedGrid:      false,
		SKFullTiles:      false,
	}
}

// IsStandardCU reports whether this device's (Processor, CUCount) pair
// is absent from the non-standard mapping. The result is cached on
// first call, mirroring the source's tri-state-int memoization with an
// idiomatic *bool instead.
func (d *Device) IsStandardCU() bool {
	if d.standardCUCached != nil {
		return *d.standardCUCached
	}
	standard := true
	if counts, ok := nonStandardCUCounts[d.Processor]; ok {
		if _, found := counts[d.CUCount]; found {
			standard = false
		}
	}
	d.standardCUCached = &standard
	return standard
}

// IsStandardCU is the free-function form, for callers that only have a
// (processor, cuCount) pair and no Device value.
func IsStandardCU(processor Processor, cuCount int) bool {
	if counts, ok := nonStandardCUCounts[processor]; ok {
		if _, found := counts[cuCount]; found {
			return false
		}
	}
	return true
}

// RunsKernelTargeting reports whether a kernel built for the `other`
// processor can run, unmodified, on this device's processor: true iff
// other equals self, or other is the universal baseline gfx900 — except
// that gfx803 is never subsumed by anything newer than itself. Returns
// false whenever other is a strictly newer generation than self.
func (d *Device) RunsKernelTargeting(other Processor) bool {
	return RunsKernelTargeting(d.Processor, other)
}

// RunsKernelTargeting is the free-function form of Device.RunsKernelTargeting.
func RunsKernelTargeting(self, other Processor) bool {
	if other > self {
		return false
	}
	if other == self {
		return true
	}
	if other == ProcessorGFX803 {
		return false
	}
	if other == ProcessorGFX900 {
		return true
	}
	return false
}
