// Package fuse implements a binary fuse filter: a space-efficient
// approximate membership structure for a fixed set of 64-bit keys,
// built by peeling a random 3-uniform hypergraph and queried with three
// table lookups and two XORs.
package fuse

import "unsafe"

type fingerprintWidth interface {
	~uint8 | ~uint16 | ~uint32
}

// Filter is a binary fuse filter over a fixed key set, with a fingerprint
// width T controlling the false-positive rate: ~1/2^8 for uint8, 1/2^16
// for uint16, 1/2^32 for uint32.
type Filter[T fingerprintWidth] struct {
	seed         uint64
	p            params
	fingerprints []T
}

// Populate builds a filter containing exactly the keys in keys
// (duplicates are tolerated and collapse to a single membership entry).
func Populate[T fingerprintWidth](keys []uint64) (*Filter[T], error) {
	return PopulateIter[T](NewSliceIterator(keys))
}

// PopulateIter builds a filter from a KeyIterator. It walks the iterator
// once, from its current position to exhaustion, and keeps the keys for
// every construction attempt; if that pass yields a different number of
// keys than Len reports, it returns ErrIteratorNotRestartable.
func PopulateIter[T fingerprintWidth](it KeyIterator) (*Filter[T], error) {
	keys, err := collectAndVerify(it)
	if err != nil {
		return nil, err
	}

	unique := dedupe(keys)
	n := len(unique)
	p := computeParams(n)

	f := &Filter[T]{p: p}

	var rngState uint64 = 1
	seed := splitmix64(&rngState)

	t2count := make([]uint32, p.arrayLength)
	t2hash := make([]uint64, p.arrayLength)

	type peelStep struct {
		hash     uint64
		assigned uint32
	}

	for attempt := 0; attempt < MaxIterations; attempt++ {
		for i := range t2count {
			t2count[i] = 0
			t2hash[i] = 0
		}

		for _, k := range unique {
			hash := mixSplit(k, seed)
			h0, h1, h2 := p.cells(hash)
			t2count[h0]++
			t2hash[h0] ^= hash
			t2count[h1]++
			t2hash[h1] ^= hash
			t2count[h2]++
			t2hash[h2] ^= hash
		}

		var alone []uint32
		for i := range t2count {
			if t2count[i] == 1 {
				alone = append(alone, uint32(i))
			}
		}

		peelOrder := make([]peelStep, 0, n)
		for len(alone) > 0 {
			slot := alone[len(alone)-1]
			alone = alone[:len(alone)-1]
			if t2count[slot] != 1 {
				continue // was peeled already via one of its sibling slots
			}
			hash := t2hash[slot]
			h0, h1, h2 := p.cells(hash)

			peelOrder = append(peelOrder, peelStep{hash: hash, assigned: slot})

			for _, other := range [3]uint32{h0, h1, h2} {
				if other == slot {
					continue
				}
				t2count[other]--
				t2hash[other] ^= hash
				if t2count[other] == 1 {
					alone = append(alone, other)
				}
			}
			t2count[slot] = 0
		}

		if len(peelOrder) != n {
			seed = splitmix64(&rngState)
			continue
		}

		fingerprints := make([]T, p.arrayLength)
		for i := len(peelOrder) - 1; i >= 0; i-- {
			step := peelOrder[i]
			h0, h1, h2 := p.cells(step.hash)
			xor2 := fingerprintOf[T](step.hash)
			var other1, other2 uint32
			switch step.assigned {
			case h0:
				other1, other2 = h1, h2
			case h1:
				other1, other2 = h0, h2
			default:
				other1, other2 = h0, h1
			}
			fingerprints[step.assigned] = xor2 ^ fingerprints[other1] ^ fingerprints[other2]
		}

		f.seed = seed
		f.fingerprints = fingerprints
		return f, nil
	}

	return nil, ErrKeysLikelyNotUnique
}

// Contains reports whether k was a member of the set the filter was
// built from. False positives are possible at the rate implied by T;
// false negatives never occur for keys present at construction time.
func (f *Filter[T]) Contains(k uint64) bool {
	hash := mixSplit(k, f.seed)
	h0, h1, h2 := f.p.cells(hash)
	want := fingerprintOf[T](hash)
	got := f.fingerprints[h0] ^ f.fingerprints[h1] ^ f.fingerprints[h2]
	return want == got
}

// SizeInBytes reports the filter's approximate in-memory footprint: the
// fingerprint table plus the struct's own fixed overhead.
func (f *Filter[T]) SizeInBytes() int {
	var zero T
	return len(f.fingerprints)*int(unsafe.Sizeof(zero)) + int(unsafe.Sizeof(*f))
}

func fingerprintOf[T fingerprintWidth](hash uint64) T {
	switch any(T(0)).(type) {
	case uint8:
		v := uint8(hash) ^ uint8(hash>>8) ^ uint8(hash>>16) ^ uint8(hash>>24) ^
			uint8(hash>>32) ^ uint8(hash>>40) ^ uint8(hash>>48) ^ uint8(hash>>56)
		return T(v)
	case uint16:
		v := uint16(hash) ^ uint16(hash>>16) ^ uint16(hash>>32) ^ uint16(hash>>48)
		return T(v)
	default:
		v := uint32(hash) ^ uint32(hash>>32)
		return T(v)
	}
}

func dedupe(keys []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(keys))
	out := make([]uint64, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
