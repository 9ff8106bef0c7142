// Package pool composes an MPMC queue with a fixed set of worker
// goroutines into a simple task pool: Spawn/SpawnBlocking feed the
// queue, and each worker repeatedly pulls work until Close has set the
// stop flag and the worker finds the queue empty.
package pool
