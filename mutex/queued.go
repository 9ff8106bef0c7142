package mutex

import (
	"sync/atomic"
	"time"

	"github.com/vantacore/corelib/internal/futex"
)

// Ticket states: waiting parks on the futex word, granted means the
// holder owns the lock, abandoned means TryLockUntil gave up on this
// ticket before it was granted.
const (
	ticketGranted   = 0
	ticketWaiting   = 1
	ticketAbandoned = 2
)

// Ticket is a queue position returned by QueuedMutex.Lock and consumed by
// the matching Unlock call, the way ordermutex's ticket pairs a Lock with
// its Unlock rather than relying on goroutine identity.
type Ticket struct {
	next   atomic.Pointer[Ticket]
	parked uint32 // one of the ticketXxx states above
}

// QueuedMutex is an MCS-style queued lock: each contending goroutine
// links a Ticket onto the tail of an intrusive list with a single atomic
// swap, and parks on that ticket's own futex word. The releaser wakes
// exactly the next ticket in the chain, so unlike the state-word Mutex
// no thread is ever woken only to lose a race for the lock, and waiters
// are granted the lock in the exact order they arrived.
type QueuedMutex struct {
	tail atomic.Pointer[Ticket]
}

// Lock acquires the mutex and returns the Ticket identifying this
// acquisition; the caller must pass it to Unlock.
func (m *QueuedMutex) Lock() *Ticket {
	t := &Ticket{parked: ticketWaiting}
	prev := m.tail.Swap(t)
	if prev == nil {
		// Tail was nil: the lock was free and we now hold it with no
		// one ahead of us in line.
		t.parked = ticketGranted
		return t
	}
	prev.next.Store(t)

	for atomic.LoadUint32(&t.parked) == ticketWaiting {
		_ = futex.Wait(&t.parked, ticketWaiting, 0)
	}
	return t
}

const tryLockPollInterval = 10 * time.Millisecond

// TryLockUntil acquires the mutex, giving up once deadline passes. On
// success it returns the Ticket to pass to Unlock, exactly like Lock. On
// timeout it returns ErrTimedOut; the ticket stays linked in the queue so
// the chain behind it is never broken, but Unlock's handoff recognizes an
// abandoned ticket and passes the lock straight through to whichever
// ticket comes after it. Only QueuedMutex exposes this: Mutex has no
// cancellation beyond the caller's own stop flag.
func (m *QueuedMutex) TryLockUntil(deadline time.Time) (*Ticket, error) {
	t := &Ticket{parked: ticketWaiting}
	prev := m.tail.Swap(t)
	if prev == nil {
		t.parked = ticketGranted
		return t, nil
	}
	prev.next.Store(t)

	for {
		if atomic.LoadUint32(&t.parked) == ticketGranted {
			return t, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			if atomic.CompareAndSwapUint32(&t.parked, ticketWaiting, ticketAbandoned) {
				return nil, ErrTimedOut
			}
			// Unlock's handoff won the race and already granted us the
			// lock; honor that instead of reporting a timeout we missed.
			return t, nil
		}
		waitFor := remaining
		if waitFor > tryLockPollInterval {
			waitFor = tryLockPollInterval
		}
		_ = futex.Wait(&t.parked, ticketWaiting, waitFor)
	}
}

// Unlock releases the mutex held via the given Ticket, handing it
// directly to the next queued waiter if one exists. A waiter that timed
// out via TryLockUntil is skipped: the lock passes straight through to
// whichever ticket follows it.
func (m *QueuedMutex) Unlock(t *Ticket) {
	cur := t
	for {
		next := cur.next.Load()
		if next == nil {
			if m.tail.CompareAndSwap(cur, nil) {
				return
			}
			// Another goroutine has already swapped itself onto the
			// tail but hasn't finished linking cur.next yet; it will
			// shortly.
			for {
				next = cur.next.Load()
				if next != nil {
					break
				}
			}
		}
		if atomic.CompareAndSwapUint32(&next.parked, ticketWaiting, ticketGranted) {
			futex.Wake(&next.parked, 1)
			return
		}
		// next already abandoned itself via TryLockUntil's timeout path;
		// nobody is listening on its futex word, so keep handing off
		// down the chain instead of waking it.
		cur = next
	}
}
