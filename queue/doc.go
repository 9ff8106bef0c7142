// Package queue provides bounded, blocking-and-non-blocking FIFO queues
// built on per-slot turn counters: MPMC (multi-producer multi-consumer),
// MPSC (multi-producer single-consumer), and SPMC (single-producer
// multi-consumer).
//
// Every queue shares the same slot/turn algorithm: a shared ticket counter
// per role (head for consumers, tail for producers), a slot table of size
// capacity (rounded up to the next power of two), and a per-slot turn
// counter that hands a slot off between the producer and consumer side
// exactly once per generation. The role that has multiple concurrent
// actors (both roles for MPMC) claims its ticket with a CAS loop; the role
// that is known to be single-actor (the consumer side of MPSC, the
// producer side of SPMC) claims it with a plain load-then-store, since no
// other goroutine can race it.
//
// # Quick start
//
//	q := queue.NewMPMC[int](1024)
//
//	val := 42
//	if err := q.TryEnqueue(&val); err != nil {
//	    // queue.IsWouldBlock(err): queue is full
//	}
//
//	elem, err := q.TryDequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
//
// Blocking variants spin (with escalating backoff) until the operation can
// complete:
//
//	q.Enqueue(&val)        // always succeeds eventually
//	elem := q.Dequeue()    // always returns an element eventually
//
// # Builder
//
// Build selects an algorithm from declared producer/consumer cardinality:
//
//	q := queue.Build[Event](queue.New(1024).SingleProducer())   // → SPMC
//	q := queue.Build[Event](queue.New(1024).SingleConsumer())   // → MPSC
//	q := queue.Build[Event](queue.New(1024))                    // → MPMC
package queue
