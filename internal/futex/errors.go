package futex

import "errors"

// ErrTimedOut is returned by Wait when a deadline elapses before a Wake.
var ErrTimedOut = errors.New("futex: timed out")
