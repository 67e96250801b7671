package analytical

import "fmt"

// UnsupportedArchitectureError is raised when an architecture string does
// not resolve to a known Architecture tag.
type UnsupportedArchitectureError struct {
	Arch string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("analytical: unsupported architecture %q", e.Arch)
}

// NoViableTileError is raised when every candidate in a macro-tile search
// fails the LDS scratchpad capacity check.
type NoViableTileError struct {
	NumCandidates int
}

func (e *NoViableTileError) Error() string {
	return fmt.Sprintf("analytical: no viable macro tile among %d candidates (LDS capacity exceeded)", e.NumCandidates)
}

// NoViableWGMError is raised by SelectBestWGM when the macro-tile fails
// the LDS scratchpad capacity check or the WGM candidate list is empty.
type NoViableWGMError struct {
	NumCandidates int
}

func (e *NoViableWGMError) Error() string {
	return fmt.Sprintf("analytical: no viable WGM among %d candidates (LDS capacity exceeded)", e.NumCandidates)
}

// InstructionNotFoundWarning records a matrix-instruction lookup miss.
// It is never returned as a fatal error; GetMILatency logs it and
// substitutes a fallback latency.
type InstructionNotFoundWarning struct {
	Instruction MatrixInstruction
}

func (w *InstructionNotFoundWarning) Error() string {
	return fmt.Sprintf("analytical: instruction %+v not found in latency table, using fallback", w.Instruction)
}

// HitRateAnomalyWarning records a hit-rate estimate that exceeded 1.0.
// The estimator still returns the computed value uncapped (spec §7/§9);
// this type only formats the warning that the estimators log through
// logrus. It is never returned to the caller.
type HitRateAnomalyWarning struct {
	Estimator string
	HitRate   float64
}

func (w *HitRateAnomalyWarning) Error() string {
	return fmt.Sprintf("analytical: %s returned hit rate %.6f > 1.0", w.Estimator, w.HitRate)
}
