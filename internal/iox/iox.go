// Package iox collects the control-flow error sentinel returned by the
// queue package's non-blocking operations, the way the teacher module's own (unresolvable,
// private) iox dependency did.
package iox

import "errors"

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure).
// For Dequeue: the queue is empty (no data available).
//
// ErrWouldBlock is a control flow signal, not a failure: callers should
// retry (with backoff or a yield) rather than propagate it as an error.
var ErrWouldBlock = errors.New("iox: operation would block")

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}
