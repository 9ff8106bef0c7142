package queue

import (
	"github.com/vantacore/corelib/internal/atomix"
	"github.com/vantacore/corelib/internal/cacheline"
	"github.com/vantacore/corelib/internal/iox"
	"github.com/vantacore/corelib/internal/spin"
)

// SPMC is a single-producer multi-consumer bounded queue: the same
// per-slot sequence counter algorithm as MPMC, specialized so the
// producer side needs no CAS (only one goroutine ever touches tail).
type SPMC[T any] struct {
	_        cacheline.Pad
	tail     atomix.Uint64 // producer only; no CAS needed
	_        cacheline.Pad
	head     atomix.Uint64 // consumers CAS here
	_        cacheline.Pad
	buffer   []mpmcSlot[T]
	mask     uint64
	capacity uint64
}

// NewSPMC creates a new SPMC queue. Capacity rounds up to the next power
// of 2. Panics if capacity < 2.
func NewSPMC[T any](capacity int) *SPMC[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	q := &SPMC[T]{
		buffer:   make([]mpmcSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}
	return q
}

// TryEnqueue adds an element (single producer only). Returns
// ErrWouldBlock if the queue appeared full.
func (q *SPMC[T]) TryEnqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	slot := &q.buffer[tail&q.mask]
	seq := slot.seq.LoadAcquire()

	if seq != tail {
		return iox.ErrWouldBlock
	}

	slot.data = *elem
	slot.seq.StoreRelease(tail + 1)
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Enqueue adds an element, blocking until there is room (single producer
// only).
func (q *SPMC[T]) Enqueue(elem *T) {
	var sw spin.Wait
	for q.TryEnqueue(elem) != nil {
		sw.Once()
	}
}

// TryDequeue removes and returns an element (multiple consumers safe).
// Returns ErrWouldBlock if the queue appeared empty.
func (q *SPMC[T]) TryDequeue() (T, error) {
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
// available.
func (q *SPMC[T]) Dequeue() T {
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
func (q *SPMC[T]) Cap() int {
	return int(q.capacity)
}
