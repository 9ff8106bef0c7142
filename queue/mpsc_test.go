package queue_test

import (
	"sync"
	"testing"

	"github.com/vantacore/corelib/queue"
)

func TestMPSCBasic(t *testing.T) {
	q := queue.NewMPSC[int](4)

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

func TestMPSCMultiProducerConservation(t *testing.T) {
	const producers = 4
	const perProducer = 2000
	const total = producers * perProducer

	q := queue.NewMPSC[int](512)
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := 1
				q.Enqueue(&v)
			}
		}()
	}

	sum := 0
	for i := 0; i < total; i++ {
		sum += q.Dequeue()
	}
	wg.Wait()

	if sum != total {
		t.Fatalf("conservation violated: got %d, want %d", sum, total)
	}
}
