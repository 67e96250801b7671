package analytical

import "github.com/sirupsen/logrus"

// DeviceProperties is the input bundle an external driver collaborator
// supplies to build a Hardware value. Field names follow the quantities
// a GPU runtime typically reports (clock rates in kHz, memory sizes in
// bytes); deriving this bundle from an actual device is outside this
// module's scope (spec §1 "Out of scope").
type DeviceProperties struct {
	GCNArchName         string
	MultiProcessorCount int
	SharedMemPerBlock   int64
	ClockRateKHz        float64
	MemoryClockRateKHz  float64
	L2CacheSize         int64
}

// Hardware is the immutable, composed device descriptor every latency
// and search function in this package takes as input. Construct once
// per session; all fields are read-only afterward except the transient
// debug log, which is diagnostic-only and never consulted by the model.
type Hardware struct {
	Arch            Architecture
	NCU             int
	LDSCapacity     int64
	NumXCD          int
	L2Capacity      int64
	ComputeClockGHz float64

	Mem1PerfRatio float64
	Mem2PerfRatio float64
	Mem3PerfRatio float64

	CUPerL2        int
	ParallelMICU   int
	PercentBWPerWG float64

	debug *debugLog
}

// NewHardware constructs a Hardware from already-derived perf ratios and
// clock, matching the source's direct constructor argument order:
// (arch, N_CU, LDS_capacity, NUM_XCD, mem1, mem2, mem3, L2_capacity,
// compute_clock_ghz, parallel_MI_CU, percent_bw_per_wg).
func NewHardware(
	arch Architecture,
	nCU int,
	ldsCapacity int64,
	numXCD int,
	mem1PerfRatio, mem2PerfRatio, mem3PerfRatio float64,
	l2Capacity int64,
	computeClockGHz float64,
	parallelMICU int,
	percentBWPerWG float64,
) *Hardware {
	cuPerL2 := 0
	if numXCD != 0 {
		cuPerL2 = nCU / numXCD
	}
	return &Hardware{
		Arch:            arch,
		NCU:             nCU,
		LDSCapacity:     ldsCapacity,
		NumXCD:          numXCD,
		L2Capacity:      l2Capacity,
		ComputeClockGHz: computeClockGHz,
		Mem1PerfRatio:   mem1PerfRatio,
		Mem2PerfRatio:   mem2PerfRatio,
		Mem3PerfRatio:   mem3PerfRatio,
		CUPerL2:         cuPerL2,
		ParallelMICU:    parallelMICU,
		PercentBWPerWG:  percentBWPerWG,
		debug:           newDebugLog(),
	}
}

// NewHardwareFromDeviceProperties resolves props.GCNArchName to an
// Architecture, looks up its ArchitectureConstants, derives the three
// perf ratios and compute clock from the reported device quantities,
// and returns the composed Hardware. Returns *UnsupportedArchitectureError
// if the architecture string does not resolve.
func NewHardwareFromDeviceProperties(props DeviceProperties) (*Hardware, error) {
	arch := ArchNameToEnum(props.GCNArchName)
	if arch == ArchCount {
		return nil, &UnsupportedArchitectureError{Arch: props.GCNArchName}
	}
	c, ok := archConstants[arch]
	if !ok {
		return nil, &UnsupportedArchitectureError{Arch: props.GCNArchName}
	}

	mem1 := safeRatio(1e9*c.Mem1PerfRatio, props.ClockRateKHz)
	mem2 := safeRatio(1e9*c.Mem2PerfRatio, props.MemoryClockRateKHz*c.MemClockRatio)
	mem3 := safeRatio(1e9*c.Mem3PerfRatio, props.MemoryClockRateKHz)
	computeClockGHz := props.ClockRateKHz / 1e6

	return NewHardware(
		arch,
		props.MultiProcessorCount,
		props.SharedMemPerBlock,
		c.NumXCDs,
		mem1, mem2, mem3,
		props.L2CacheSize,
		computeClockGHz,
		c.ParallelMICU,
		c.PercentBWPerWG,
	), nil
}

// safeRatio guards against a zero or negative denominator, per spec §7's
// division-by-zero rule: return 0 for that tier rather than Inf/NaN.
func safeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// GetMILatency looks up the issue latency of the given matrix
// instruction shape in this Hardware's architecture table and divides
// by ParallelMICU. On a table miss it logs a warning and substitutes
// the fallback latency 32/ParallelMICU, per spec §3/§7 — it never
// returns an error to the caller; InstructionNotFound is recoverable.
func (h *Hardware) GetMILatency(miM, miN, miK, elementBits int) float64 {
	key := MatrixInstruction{MIM: miM, MIN: miN, MIK: miK, ElementBits: elementBits}
	table := instructionLatency[h.Arch]

	issueCycles, ok := table[key]
	if !ok {
		logrus.Warnf("analytical: %v", (&InstructionNotFoundWarning{Instruction: key}).Error())
		issueCycles = 32
	}
	h.debug.logNumber("MI_latency_issue_cycles", float64(issueCycles))
	return safeRatio(float64(issueCycles), float64(h.ParallelMICU))
}

// ClearDebug resets the transient diagnostic map.
func (h *Hardware) ClearDebug() {
	h.debug.clear()
}

// PrintDebugInfo writes the accumulated diagnostic map to stderr.
func (h *Hardware) PrintDebugInfo() {
	h.debug.printDebugInfo()
}
