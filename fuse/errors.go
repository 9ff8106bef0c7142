package fuse

import "errors"

// ErrKeysLikelyNotUnique is returned when construction exhausts
// MaxIterations reseed attempts without finding a peelable assignment.
// The one documented construction-specific failure; allocation failures
// are plain Go out-of-memory panics, per the host runtime's own
// semantics.
var ErrKeysLikelyNotUnique = errors.New("fuse: keys likely not unique")

// ErrIteratorNotRestartable is returned by PopulateIter when a
// KeyIterator's Len() does not match the number of keys actually
// produced on the pass PopulateIter makes over it, indicating it did not
// restart cleanly after a prior exhaustion.
var ErrIteratorNotRestartable = errors.New("fuse: key iterator did not restart with a consistent length")
