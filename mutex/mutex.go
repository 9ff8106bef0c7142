// Package mutex provides futex-backed mutual exclusion: a compact
// three-state lock, grounded on the Go runtime's own futex-based mutex
// staging (active spin, then park), and a queued variant with an
// intrusive waiter list for precise single-waiter wakeups under
// contention.
package mutex

import (
	"sync/atomic"

	"github.com/vantacore/corelib/internal/futex"
	"github.com/vantacore/corelib/internal/spin"
)

const (
	unlocked  = 0
	locked    = 1
	contended = 3
)

// Mutex is a three-state futex-backed mutual exclusion lock: uncontended
// acquisition is a single CAS, contended acquisition spins briefly and
// then parks via futex, and unlock wakes one waiter whenever the word was
// marked contended (which may occasionally be a wake with nobody parked).
//
// state is a raw uint32 rather than the atomix/sync-atomic wrapper types
// used elsewhere in this module: the futex syscall needs the address of
// the word itself, which a wrapper type does not expose.
type Mutex struct {
	state uint32
}

// TryLock attempts to acquire the lock without blocking.
func (m *Mutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(&m.state, unlocked, locked)
}

// Lock acquires the mutex, blocking until it does.
func (m *Mutex) Lock() {
	if m.TryLock() {
		return
	}
	m.lockSlow()
}

const activeSpinAttempts = 50

func (m *Mutex) lockSlow() {
	var sw spin.Wait
	for i := 0; i < activeSpinAttempts; i++ {
		if atomic.LoadUint32(&m.state) == unlocked && m.TryLock() {
			return
		}
		sw.Once()
	}

	for {
		old := atomic.SwapUint32(&m.state, contended)
		if old == unlocked {
			return
		}
		_ = futex.Wait(&m.state, contended, 0)
		// Re-check: another waiter, or the releaser, may have changed
		// state while we were parked. Other waiters may still be parked,
		// so acquire with the contended value rather than plain locked,
		// keeping the next Unlock's wake.
		for i := 0; i < activeSpinAttempts; i++ {
			if atomic.LoadUint32(&m.state) == unlocked &&
				atomic.CompareAndSwapUint32(&m.state, unlocked, contended) {
				return
			}
			sw.Once()
		}
	}
}

// Unlock releases the mutex. Unlocking a mutex not held by the caller is
// a programmer error and is not checked.
func (m *Mutex) Unlock() {
	if atomic.SwapUint32(&m.state, unlocked) == contended {
		futex.Wake(&m.state, 1)
	}
}
