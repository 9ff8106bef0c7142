package queue

import (
	"github.com/vantacore/corelib/internal/atomix"
	"github.com/vantacore/corelib/internal/cacheline"
	"github.com/vantacore/corelib/internal/iox"
	"github.com/vantacore/corelib/internal/spin"
)

// MPMC is a multi-producer multi-consumer bounded queue using per-slot
// sequence counters (Vyukov's bounded MPMC algorithm).
//
// Each slot carries a sequence number instead of a cycle/generation pair:
// a slot is ready for a producer when seq == tail, and ready for a
// consumer when seq == head+1. CAS on the shared tail/head ticket is how
// concurrent producers (respectively consumers) arbitrate which of them
// claims a given slot; the loser simply re-reads and retries.
//
// Memory: capacity slots, each the 8-byte sequence word, the element,
// and 56 bytes of padding, so a slot with a non-empty T spans more than
// one cache line.
type MPMC[T any] struct {
	_        cacheline.Pad
	tail     atomix.Uint64 // producers CAS here
	_        cacheline.Pad
	head     atomix.Uint64 // consumers CAS here
	_        cacheline.Pad
	buffer   []mpmcSlot[T]
	mask     uint64
	capacity uint64
}

type mpmcSlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    cacheline.After8
}

// NewMPMC creates a new MPMC queue. Capacity rounds up to the next power
// of 2. Panics if capacity < 2.
func NewMPMC[T any](capacity int) *MPMC[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	q := &MPMC[T]{
		buffer:   make([]mpmcSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}
	return q
}

// TryEnqueue adds an element to the queue. Returns ErrWouldBlock if the
// queue appeared full at the observation point.
func (q *MPMC[T]) TryEnqueue(elem *T) error {
	var sw spin.Wait
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				slot.data = *elem
				slot.seq.StoreRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			return iox.ErrWouldBlock
		}
		sw.Once()
	}
}

// Enqueue adds an element, blocking until there is room. Always succeeds.
func (q *MPMC[T]) Enqueue(elem *T) {
	var sw spin.Wait
	for q.TryEnqueue(elem) != nil {
		sw.Once()
	}
}

// TryDequeue removes and returns an element. Returns ErrWouldBlock if the
// queue appeared empty at the observation point.
func (q *MPMC[T]) TryDequeue() (T, error) {
	var sw spin.Wait
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := slot.data
				var zero T
				slot.data = zero
				slot.seq.StoreRelease(head + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			var zero T
			return zero, iox.ErrWouldBlock
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element, blocking until one is
// available. Always succeeds eventually.
func (q *MPMC[T]) Dequeue() T {
	var sw spin.Wait
	for {
		v, err := q.TryDequeue()
		if err == nil {
			return v
		}
		sw.Once()
	}
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.capacity)
}

// Size returns an approximate occupancy. Accurate counts require
// cross-core synchronization this algorithm deliberately avoids; the
// value can be stale the instant it is read.
func (q *MPMC[T]) Size() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	if tail < head {
		return 0
	}
	n := int(tail - head)
	if n > int(q.capacity) {
		return int(q.capacity)
	}
	return n
}

// Empty reports whether the queue appeared empty at the observation
// point. Approximate, like Size.
func (q *MPMC[T]) Empty() bool {
	return q.Size() == 0
}
