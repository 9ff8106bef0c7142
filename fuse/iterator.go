package fuse

// KeyIterator is a restartable source of keys: once Next has returned
// (0, false) to signal exhaustion, the next call to Next must start
// again from the first element. PopulateIter walks the sequence once and
// rejects an iterator whose pass does not yield exactly Len keys.
type KeyIterator interface {
	Len() int
	Next() (uint64, bool)
}

// sliceIterator adapts a plain slice to KeyIterator.
type sliceIterator struct {
	keys []uint64
	pos  int
}

// NewSliceIterator returns a restartable KeyIterator over keys.
func NewSliceIterator(keys []uint64) KeyIterator {
	return &sliceIterator{keys: keys}
}

func (it *sliceIterator) Len() int { return len(it.keys) }

func (it *sliceIterator) Next() (uint64, bool) {
	if it.pos >= len(it.keys) {
		it.pos = 0
		return 0, false
	}
	k := it.keys[it.pos]
	it.pos++
	return k, true
}

func collectAndVerify(it KeyIterator) ([]uint64, error) {
	want := it.Len()
	keys := make([]uint64, 0, want)
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	if len(keys) != want {
		return nil, ErrIteratorNotRestartable
	}
	return keys, nil
}
