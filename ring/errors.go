package ring

import "errors"

// ErrBufferFull is returned by StagingBuffer.TryAppend when the staging
// buffer used by Buffer.Fill is at capacity. Unlike the ring buffer
// itself (whose writers never block: a full ring simply overwrites its
// oldest live entry), a bounded staging helper has a genuine "full"
// state, per spec.md's REDESIGN note that the original's allocating
// fallback "silently panics on allocation failure" — this is the
// fallible replacement.
var ErrBufferFull = errors.New("ring: staging buffer is full")
