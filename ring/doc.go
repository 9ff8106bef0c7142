// Package ring provides a bounded, lock-free, overwriting ring buffer
// with cursor-based reads. It trades the blocking/back-pressure
// semantics of package queue for a buffer that a writer can never stall
// on: once full, the oldest entry is silently overwritten, and readers
// that lag behind simply observe a miss rather than a stale value.
//
// # Quick Start
//
//	buf := ring.New[Event](1024)
//	c := buf.WriteAndCursor(ev)
//	...
//	v, ok := buf.TryRead(c)
//	if !ok {
//		// either not yet visible, or already overwritten
//	}
//
// # Staging
//
// StagingBuffer accumulates values under a fallible, bounded-capacity
// append before a single Buffer.Fill call drains them in order.
package ring
