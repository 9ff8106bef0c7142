package mutex_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vantacore/corelib/internal/racetag"
	"github.com/vantacore/corelib/mutex"
)

func TestQueuedMutexMutualExclusion(t *testing.T) {
	var mu mutex.QueuedMutex
	var counter int
	goroutines := 10
	perGoroutine := 1000
	if racetag.Enabled {
		perGoroutine = 100
	}

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				t := mu.Lock()
				counter++
				mu.Unlock(t)
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*perGoroutine {
		t.Fatalf("counter = %d, want %d", counter, goroutines*perGoroutine)
	}
}

func TestQueuedMutexUncontendedFastPath(t *testing.T) {
	var mu mutex.QueuedMutex
	t1 := mu.Lock()
	mu.Unlock(t1)
	t2 := mu.Lock()
	mu.Unlock(t2)
}

func TestQueuedMutexTryLockUntilTimesOut(t *testing.T) {
	var mu mutex.QueuedMutex
	held := mu.Lock()
	defer mu.Unlock(held)

	start := time.Now()
	ticket, err := mu.TryLockUntil(start.Add(30 * time.Millisecond))
	if !errors.Is(err, mutex.ErrTimedOut) {
		t.Fatalf("TryLockUntil on held mutex: got (%v, %v), want (nil, ErrTimedOut)", ticket, err)
	}
	if ticket != nil {
		t.Fatalf("TryLockUntil on timeout: got non-nil ticket %v", ticket)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("TryLockUntil returned suspiciously early")
	}
}

// TestQueuedMutexTryLockUntilAbandonedTicketIsSkipped confirms that a
// ticket which times out while queued behind another waiter does not
// swallow the lock: Unlock's handoff must pass straight through it to
// whichever ticket comes next.
func TestQueuedMutexTryLockUntilAbandonedTicketIsSkipped(t *testing.T) {
	var mu mutex.QueuedMutex
	held := mu.Lock()

	timedOut := make(chan struct{})
	go func() {
		defer close(timedOut)
		_, err := mu.TryLockUntil(time.Now().Add(10 * time.Millisecond))
		if !errors.Is(err, mutex.ErrTimedOut) {
			t.Errorf("TryLockUntil: got err %v, want ErrTimedOut", err)
		}
	}()
	<-timedOut

	granted := make(chan *mutex.Ticket, 1)
	go func() {
		granted <- mu.Lock()
	}()

	// Give the third waiter a chance to link onto the queue before the
	// first ticket is released, so the handoff has to walk past the
	// abandoned ticket rather than granting the lock directly.
	time.Sleep(10 * time.Millisecond)
	mu.Unlock(held)

	select {
	case next := <-granted:
		mu.Unlock(next)
	case <-time.After(time.Second):
		t.Fatal("Lock never granted past an abandoned ticket")
	}
}
