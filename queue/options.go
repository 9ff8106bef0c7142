package queue

// Options configures queue creation and algorithm selection via Builder.
type Options struct {
	singleProducer bool
	singleConsumer bool
	capacity       int
}

// Builder creates queues with fluent configuration, mirroring the
// producer/consumer-cardinality selection idiom used throughout this
// module (pool.Options plays the same role for the thread pool).
type Builder struct {
	opts Options
}

// New creates a queue builder for the given capacity. Capacity rounds up
// to the next power of 2. Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will enqueue.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Queue[T] with algorithm selection:
//
//	SingleProducer + SingleConsumer → panics (use the spsc package instead)
//	SingleProducer only             → SPMC
//	SingleConsumer only             → MPSC
//	Neither                         → MPMC
func Build[T any](b *Builder) Queue[T] {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		panic("queue: SingleProducer+SingleConsumer is not an MPMC-family shape; use package spsc")
	case b.opts.singleProducer:
		return NewSPMC[T](b.opts.capacity)
	case b.opts.singleConsumer:
		return NewMPSC[T](b.opts.capacity)
	default:
		return NewMPMC[T](b.opts.capacity)
	}
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
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
