// Package testutil provides testing utilities for indexical.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for index workloads and a map-backed
// reference set that bit-set engines are checked against.
//
// # Random Index Generation
//
//	rng := testutil.NewRNG(seed)
//	idx := rng.Indices(100, 1000)      // 100 distinct indices in [0, 1000)
//	dense := rng.Bernoulli(1000, 0.3)  // each index kept with p=0.3
//	hot := rng.ZipfIndices(500, 1000, 1.5)
//
// # Reference Model
//
//	ref := testutil.NewReference(1000)
//	ref.Insert(7)
//	ref.Sorted() // []int{7}
package testutil
