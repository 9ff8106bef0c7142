// Package ring implements a bounded, lock-free, overwriting ring buffer
// with cursor-based reads (Folly's LockFreeRingBuffer shape): any number
// of writers may publish concurrently with any number of readers, and a
// writer never blocks — once capacity is reached it overwrites the
// oldest live entry, and a reader that falls behind simply misses.
package ring

import (
	"github.com/vantacore/corelib/internal/atomix"
	"github.com/vantacore/corelib/internal/cacheline"
	"github.com/vantacore/corelib/internal/spin"
)

type cell[T any] struct {
	seq  atomix.Uint32
	data T
	_    cacheline.After8
}

// Buffer is a fixed-capacity overwriting ring buffer.
type Buffer[T any] struct {
	_        cacheline.Pad
	head     atomix.Uint64 // number of Write calls that have claimed a ticket so far
	_        cacheline.Pad
	cells    []cell[T]
	mask     uint64
	capacity uint64
}

// New creates a ring buffer of the given capacity, rounded up to the next
// power of 2 for mask-based indexing. Panics if capacity <= 0.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	n := uint64(roundToPow2(capacity))
	return &Buffer[T]{
		cells:    make([]cell[T], n),
		mask:     n - 1,
		capacity: n,
	}
}

// Cap returns the buffer's capacity.
func (b *Buffer[T]) Cap() int {
	return int(b.capacity)
}

// Write publishes v, overwriting the oldest live entry once the buffer is
// full. Never blocks.
func (b *Buffer[T]) Write(v T) {
	b.WriteAndCursor(v)
}

// WriteAndCursor publishes v and returns the cursor identifying it.
func (b *Buffer[T]) WriteAndCursor(v T) Cursor {
	ticket := b.head.AddAcqRel(1) - 1
	generation := ticket / b.capacity
	c := &b.cells[ticket&b.mask]

	var sw spin.Wait
	// Step 1: wait until the slot is free at this generation. Becomes
	// true once the writer holding this slot's previous generation
	// (ticket-capacity) finishes its publish step, which stores exactly
	// this value.
	for c.seq.LoadAcquire() != uint32(generation*2) {
		sw.Once()
	}
	// Step 2: mark writing in progress.
	c.seq.StoreRelease(uint32(generation*2 + 1))
	// Step 3: copy the value. A concurrent reader may observe this cell
	// mid-copy; the sequencer protocol in try/wait read lets it detect
	// and discard a torn read rather than ever validating on one.
	c.data = v
	// Step 4: mark published at this generation.
	c.seq.StoreRelease(uint32((generation + 1) * 2))

	return Cursor(ticket)
}

// CurrentHead returns the cursor one past the most recently claimed
// ticket: the next ticket Write will claim. Writes holding earlier
// tickets may not have published yet.
func (b *Buffer[T]) CurrentHead() Cursor {
	return Cursor(b.head.LoadAcquire())
}

// CurrentTail returns the oldest cursor still guaranteed live:
// max(head-capacity, 0), saturating.
func (b *Buffer[T]) CurrentTail() Cursor {
	head := b.head.LoadAcquire()
	if head < b.capacity {
		return 0
	}
	return Cursor(head - b.capacity)
}

// TryRead attempts a single, non-waiting read at cursor c. Returns
// (value, true) if c's slot is currently published at c's generation;
// (zero, false) otherwise — including when c is not yet written, or has
// been lapped by later writers.
func (b *Buffer[T]) TryRead(c Cursor) (T, bool) {
	ticket := uint64(c)
	generation := ticket / b.capacity
	required := uint32((generation + 1) * 2)
	cl := &b.cells[ticket&b.mask]

	seq := cl.seq.LoadAcquire()
	if seq != required {
		var zero T
		return zero, false
	}
	v := cl.data
	// Re-check: if the sequencer moved on, a writer started overwriting
	// this slot during the copy above and v may be torn. Discard it.
	if cl.seq.LoadAcquire() != required {
		var zero T
		return zero, false
	}
	return v, true
}

// WaitAndTryRead spins until cursor c's slot either reaches its expected
// published generation (returning the value) or is lapped by a later
// writer (returning a miss). If no writer ever claims c's ticket, it
// keeps spinning.
func (b *Buffer[T]) WaitAndTryRead(c Cursor) (T, bool) {
	ticket := uint64(c)
	generation := ticket / b.capacity
	required := uint32((generation + 1) * 2)
	cl := &b.cells[ticket&b.mask]

	var sw spin.Wait
	for {
		seq := cl.seq.LoadAcquire()
		switch {
		case seq == required:
			v := cl.data
			if cl.seq.LoadAcquire() != required {
				var zero T
				return zero, false
			}
			return v, true
		case seq > required:
			var zero T
			return zero, false // lapped
		default:
			sw.Once() // not published yet
		}
	}
}

func roundToPow2(n int) int {
	if n < 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
