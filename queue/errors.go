package queue

import "github.com/vantacore/corelib/internal/iox"

// ErrWouldBlock indicates TryEnqueue found the queue full, or TryDequeue
// found it empty, at the observation point. It is a control-flow signal,
// not a failure: retry later, ideally with backoff.
//
// This is an alias for [iox.ErrWouldBlock].
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
