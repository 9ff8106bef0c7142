// Package fuse implements a binary fuse filter for fixed-set approximate
// membership queries.
//
// # Quick Start
//
//	f, err := fuse.Populate[uint8](keys)
//	if err != nil {
//		// keys very likely contain a pathological collision; vanishingly
//		// rare in practice
//	}
//	f.Contains(k) // true for every k in keys; false positive rate ~1/256
package fuse
