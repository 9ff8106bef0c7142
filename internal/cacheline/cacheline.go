// Package cacheline provides the false-sharing-avoidance building blocks
// used by the queue, ring and spsc packages to keep their hot fields on
// separate cache lines.
package cacheline

import "golang.org/x/sys/cpu"

// Size is the assumed cache line size in bytes. 64 covers every mainstream
// amd64/arm64 target; a false-shared line merely costs performance, never
// correctness, so a single constant is sufficient here.
const Size = 64

// Pad is embedded between hot fields that must not share a cache line.
// It is a thin wrapper over [cpu.CacheLinePad], which the Go toolchain
// already special-cases for alignment on supported platforms.
type Pad = cpu.CacheLinePad

// After8 pads out the remainder of a cache line following an 8-byte field
// (a uint64/int64/pointer-sized counter), so that a struct combining a
// counter with After8 occupies exactly one cache line.
type After8 [Size - 8]byte

// AfterPtr pads out the remainder of a cache line following a single
// pointer-sized field.
type AfterPtr [Size - 8]byte
