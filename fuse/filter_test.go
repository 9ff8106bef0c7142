package fuse_test

import (
	"math/rand"
	"testing"

	uberatomic "go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/vantacore/corelib/fuse"
)

func TestFilter8AllKeysContained(t *testing.T) {
	const n = 100000
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = uint64(i)
	}

	f, err := fuse.Populate[uint8](keys)
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	for _, k := range keys {
		if !f.Contains(k) {
			t.Fatalf("Contains(%d) = false, want true", k)
		}
	}
}

func TestFilter8FalsePositiveRateApproximatelyExpected(t *testing.T) {
	const n = 100000
	keys := make([]uint64, n)
	present := make(map[uint64]struct{}, n)
	for i := range keys {
		keys[i] = uint64(i)
		present[uint64(i)] = struct{}{}
	}

	f, err := fuse.Populate[uint8](keys)
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}

	const probes = 200000
	const shards = 8
	const probesPerShard = probes / shards

	var falsePositives uberatomic.Int64
	var g errgroup.Group
	for s := 0; s < shards; s++ {
		s := s
		g.Go(func() error {
			rng := rand.New(rand.NewSource(int64(s) + 1))
			tried := 0
			for tried < probesPerShard {
				k := uint64(n) + rng.Uint64()%uint64(n)*37 + 1
				if _, ok := present[k]; ok {
					continue
				}
				tried++
				if f.Contains(k) {
					falsePositives.Inc()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	rate := float64(falsePositives.Load()) / float64(probesPerShard*shards)
	// Expected ~1/256 ≈ 0.0039; allow generous slack for a single run.
	if rate > 0.02 {
		t.Fatalf("false positive rate = %f, want roughly 1/256", rate)
	}
}

func TestFilterToleratesDuplicateKeys(t *testing.T) {
	keys := []uint64{303, 1, 77, 31, 241, 303}

	f, err := fuse.Populate[uint8](keys)
	if err != nil {
		t.Fatalf("Populate with a duplicate key: %v", err)
	}
	for _, k := range keys {
		if !f.Contains(k) {
			t.Fatalf("Contains(%d) = false, want true", k)
		}
	}
}

func TestPopulateIterRejectsNonRestartableIterator(t *testing.T) {
	it := &shrinkingIterator{remaining: 5}
	if _, err := fuse.PopulateIter[uint8](it); err != fuse.ErrIteratorNotRestartable {
		t.Fatalf("PopulateIter with a non-restartable iterator: got %v, want ErrIteratorNotRestartable", err)
	}
}

// shrinkingIterator reports a fixed Len but actually yields fewer keys
// than that on its one and only pass, simulating a violation of the
// restartable-iterator contract.
type shrinkingIterator struct {
	remaining int
	yielded   int
}

func (it *shrinkingIterator) Len() int { return it.remaining }

func (it *shrinkingIterator) Next() (uint64, bool) {
	if it.yielded >= it.remaining-1 {
		return 0, false
	}
	k := uint64(it.yielded)
	it.yielded++
	return k, true
}

func TestFilter16And32Construct(t *testing.T) {
	keys := make([]uint64, 5000)
	for i := range keys {
		keys[i] = uint64(i) * 2
	}

	if _, err := fuse.Populate[uint16](keys); err != nil {
		t.Fatalf("Populate[uint16]: %v", err)
	}
	if _, err := fuse.Populate[uint32](keys); err != nil {
		t.Fatalf("Populate[uint32]: %v", err)
	}
}
