//go:build race

package racetag

// Enabled is true when the race detector is active. Concurrency stress
// tests in queue, ring, spsc, and mutex use it to skip (queue's MPMC
// conservation test) or shrink (the others) their heaviest scenarios,
// which otherwise make -race runs prohibitively slow.
const Enabled = true
