package queue

import (
	"github.com/vantacore/corelib/internal/atomix"
	"github.com/vantacore/corelib/internal/cacheline"
	"github.com/vantacore/corelib/internal/iox"
	"github.com/vantacore/corelib/internal/spin"
)

// MPSC is a multi-producer single-consumer bounded queue: the same
// per-slot sequence counter algorithm as MPMC, specialized so the
// consumer side needs no CAS (only one goroutine ever touches head).
type MPSC[T any] struct {
	_        cacheline.Pad
	head     atomix.Uint64 // consumer only; no CAS needed
	_        cacheline.Pad
	tail     atomix.Uint64 // producers CAS here
	_        cacheline.Pad
	buffer   []mpmcSlot[T]
	mask     uint64
	capacity uint64
}

// NewMPSC creates a new MPSC queue. Capacity rounds up to the next power
// of 2. Panics if capacity < 2.
func NewMPSC[T any](capacity int) *MPSC[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	q := &MPSC[T]{
		buffer:   make([]mpmcSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}
	return q
}

// TryEnqueue adds an element (multiple producers safe). Returns
// ErrWouldBlock if the queue appeared full.
func (q *MPSC[T]) TryEnqueue(elem *T) error {
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

// Enqueue adds an element, blocking until there is room.
func (q *MPSC[T]) Enqueue(elem *T) {
	var sw spin.Wait
	for q.TryEnqueue(elem) != nil {
		sw.Once()
	}
}

// TryDequeue removes and returns an element (single consumer only).
// Returns ErrWouldBlock if the queue appeared empty.
func (q *MPSC[T]) TryDequeue() (T, error) {
	head := q.head.LoadRelaxed()
	slot := &q.buffer[head&q.mask]
	seq := slot.seq.LoadAcquire()

	if seq != head+1 {
		var zero T
		return zero, iox.ErrWouldBlock
	}

	elem := slot.data
	var zero T
	slot.data = zero
	slot.seq.StoreRelease(head + q.capacity)
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Dequeue removes and returns an element, blocking until one is
// available (single consumer only).
func (q *MPSC[T]) Dequeue() T {
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
func (q *MPSC[T]) Cap() int {
	return int(q.capacity)
}
