// Package atomix gives the algorithm code in queue, ring, and spsc
// named-ordering atomic wrappers instead of bare sync/atomic calls, the way
// the teacher package's call sites (q.tail.LoadAcquire(), slot.seq.StoreRelease(...),
// q.threshold.AddAcqRel(-1)) read. The Go memory model gives every
// sync/atomic operation sequential consistency, so the suffixes here
// document the intended C++-style ordering at each call site rather than
// requesting a weaker one from the runtime.
package atomix

import "sync/atomic"

// Uint64 is a cache-friendly wrapper over atomic.Uint64.
type Uint64 struct {
	v atomic.Uint64
}

func (a *Uint64) LoadAcquire() uint64                  { return a.v.Load() }
func (a *Uint64) LoadRelaxed() uint64                  { return a.v.Load() }
func (a *Uint64) StoreRelease(val uint64)              { a.v.Store(val) }
func (a *Uint64) StoreRelaxed(val uint64)              { a.v.Store(val) }
func (a *Uint64) AddAcqRel(delta int64) uint64         { return a.v.Add(uint64(delta)) }
func (a *Uint64) CompareAndSwapAcqRel(old, new uint64) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Uint64) CompareAndSwapRelaxed(old, new uint64) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Uint64) SwapAcqRel(val uint64) uint64 { return a.v.Swap(val) }

// Int64 is a cache-friendly wrapper over atomic.Int64.
type Int64 struct {
	v atomic.Int64
}

func (a *Int64) LoadAcquire() int64          { return a.v.Load() }
func (a *Int64) LoadRelaxed() int64          { return a.v.Load() }
func (a *Int64) StoreRelease(val int64)      { a.v.Store(val) }
func (a *Int64) StoreRelaxed(val int64)      { a.v.Store(val) }
func (a *Int64) AddAcqRel(delta int64) int64 { return a.v.Add(delta) }

// Uint32 is a cache-friendly wrapper over atomic.Uint32, used by the ring
// buffer's per-cell sequencer.
type Uint32 struct {
	v atomic.Uint32
}

func (a *Uint32) LoadAcquire() uint32             { return a.v.Load() }
func (a *Uint32) StoreRelease(val uint32)         { a.v.Store(val) }
func (a *Uint32) CompareAndSwapAcqRel(old, new uint32) bool {
	return a.v.CompareAndSwap(old, new)
}

// Bool is a cache-friendly wrapper over atomic.Bool.
type Bool struct {
	v atomic.Bool
}

func (a *Bool) LoadAcquire() bool     { return a.v.Load() }
func (a *Bool) StoreRelease(val bool) { a.v.Store(val) }

// Pointer is a cache-friendly wrapper over atomic.Uintptr. No package in
// this module uses it; the queued mutex keeps its waiter chain in a
// sync/atomic atomic.Pointer instead.
type Pointer struct {
	v atomic.Uintptr
}

func (a *Pointer) LoadAcquire() uintptr                 { return a.v.Load() }
func (a *Pointer) StoreRelease(val uintptr)             { a.v.Store(val) }
func (a *Pointer) CompareAndSwapAcqRel(old, new uintptr) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Pointer) SwapAcqRel(val uintptr) uintptr { return a.v.Swap(val) }
