package mutex

import "errors"

// ErrTimedOut is returned by QueuedMutex.TryLockUntil when deadline
// elapses before the ticket is granted the lock. Only the queued mutex
// exposes cancellation; Mutex has no timeout path beyond the caller's
// own stop flag.
var ErrTimedOut = errors.New("mutex: timed out waiting for lock")
