//go:build !race

package racetag

// Enabled is false when the race detector is not active.
const Enabled = false
