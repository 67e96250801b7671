package analytical

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	debugEnvOnce    sync.Once
	debugEnvEnabled bool
)

// debugEnabled reports whether ANALYTICAL_GEMM_DEBUG=1 was set. The
// environment is read once and cached, per spec §6/§9 ("Reads of
// ANALYTICAL_GEMM_DEBUG should be cached at first call").
func debugEnabled() bool {
	debugEnvOnce.Do(func() {
		debugEnvEnabled = os.Getenv("ANALYTICAL_GEMM_DEBUG") == "1"
	})
	return debugEnvEnabled
}

// debugLog is a per-Hardware, transient diagnostic map. It is never
// consulted by the model itself (spec §3/§5); it exists solely so
// callers can print a trace of the values a particular ranking run
// touched. Treat it as per-instance, never process-wide.
type debugLog struct {
	mu      sync.Mutex
	strings map[string]string
	numbers map[string]float64
}

func newDebugLog() *debugLog {
	return &debugLog{
		strings: make(map[string]string),
		numbers: make(map[string]float64),
	}
}

// logString records a diagnostic string value, only when debug is enabled.
func (d *debugLog) logString(key, value string) {
	if !debugEnabled() || d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.strings[key] = value
	logrus.Debugf("analytical: debug %s=%s", key, value)
}

// logNumber records a diagnostic numeric value, only when debug is enabled.
func (d *debugLog) logNumber(key string, value float64) {
	if !debugEnabled() || d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.numbers[key] = value
	logrus.Debugf("analytical: debug %s=%g", key, value)
}

// clear resets the debug map. Mirrors the source's clear_debug().
func (d *debugLog) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.strings = make(map[string]string)
	d.numbers = make(map[string]float64)
}

// printDebugInfo writes the accumulated debug map to stderr in
// deterministic (sorted-key) order. Mirrors the source's
// print_debug_info().
func (d *debugLog) printDebugInfo() {
	d.mu.Lock()
	defer d.mu.Unlock()

	keys := make([]string, 0, len(d.strings))
	for k := range d.strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(os.Stderr, "%s: %s\n", k, d.strings[k])
	}

	nkeys := make([]string, 0, len(d.numbers))
	for k := range d.numbers {
		nkeys = append(nkeys, k)
	}
	sort.Strings(nkeys)
	for _, k := range nkeys {
		fmt.Fprintf(os.Stderr, "%s: %g\n", k, d.numbers[k])
	}
}
