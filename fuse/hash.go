package fuse

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// mix64 is MurmurHash3's 64-bit finalizer (fmix64), not a wyhash-family
// mix; it is an avalanche step used both to spread a
// key+seed into a well-distributed hash and, via fingerprintOf's folding,
// to derive a key's stored fingerprint from that same hash.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func mixSplit(key, seed uint64) uint64 {
	return mix64(key + seed)
}

// splitmix64 advances state in place and returns the next pseudo-random
// value, used to pick a fresh seed between construction retries.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// mulhi returns the high 64 bits of the 128-bit product of a and b.
func mulhi(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

// HashKey maps an arbitrary byte key into the uint64 key space the filter
// operates on. Exposed for callers whose natural keys aren't already
// 64-bit integers.
func HashKey(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// cells returns the three candidate slot indices for hash under the
// given parameters.
func (p params) cells(hash uint64) (h0, h1, h2 uint32) {
	hi := uint32(mulhi(hash, uint64(p.segmentCountLength)))
	h0 = hi
	h1 = h0 + p.segmentLength
	h2 = h1 + p.segmentLength
	h1 ^= uint32(hash>>18) & p.segmentLengthMask
	h2 ^= uint32(hash) & p.segmentLengthMask
	return h0, h1, h2
}
