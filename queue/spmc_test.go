package queue_test

import (
	"sync"
	"testing"

	"github.com/vantacore/corelib/queue"
)

func TestSPMCBasic(t *testing.T) {
	q := queue.NewSPMC[int](4)

	for i := 1; i <= 4; i++ {
		v := i
		if err := q.TryEnqueue(&v); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", i, err)
		}
	}

	v := 5
	if err := q.TryEnqueue(&v); !queue.IsWouldBlock(err) {
		t.Fatalf("TryEnqueue on full: got %v, want ErrWouldBlock", err)
	}

	for i := 1; i <= 4; i++ {
		got, err := q.TryDequeue()
		if err != nil || got != i {
			t.Fatalf("TryDequeue(%d): got (%d, %v), want (%d, nil)", i, got, err, i)
		}
	}
}

func TestSPMCMultiConsumerConservation(t *testing.T) {
	const total = 8000
	const consumers = 4

	q := queue.NewSPMC[int](512)
	go func() {
		for i := 0; i < total; i++ {
			v := 1
			q.Enqueue(&v)
		}
	}()

	var sum int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	received := 0
	var rmu sync.Mutex
	wg.Add(consumers)
	for c := 0; c < consumers; c++ {
		go func() {
			defer wg.Done()
			for {
				rmu.Lock()
				if received >= total {
					rmu.Unlock()
					return
				}
				received++
				rmu.Unlock()
				v := q.Dequeue()
				mu.Lock()
				sum += int64(v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if sum != total {
		t.Fatalf("conservation violated: got %d, want %d", sum, total)
	}
}
