// Package analytical implements a closed-form cost model for GPU GEMM
// kernels and the tile-search routines that rank candidate configurations
// by predicted latency.
//
// # Reading Guide
//
// Start with these files to understand the model:
//   - instruction.go: the matrix-instruction key used throughout as a
//     lookup key and as a leaf of a MacroTile candidate.
//   - constants.go: per-architecture constants and instruction latency
//     tables, built once at package init.
//   - hardware.go: Hardware, the immutable device descriptor every other
//     function takes as input.
//   - latency.go: the composer — ComputeTotalLatency is the function
//     everything else exists to feed.
//   - search.go, selectors.go: SelectBestMacroTileSize, SelectBestGridSize,
//     SelectBestWGM — the ranking entry points external callers use.
//
// # Architecture
//
// The package is purely computational: no I/O, no goroutines, no shared
// mutable state beyond Hardware's per-instance debug map (see debug.go).
// Stream-K grid-size selection lives in the streamk subpackage because it
// depends only on problem dimensions and a small coefficient set, not on
// a Hardware value.
//
// # Key Types
//
//   - Hardware: composed architecture constants + device-reported
//     quantities; construct once per session, then read-only.
//   - Problem: the GEMM shape and data-type bundle being ranked.
//   - MacroTile: one candidate tile configuration.
//   - ResultTuple: a ranked candidate with its predicted latency.
package analytical
