// Package bitset defines the contract every dense index-set storage engine
// implements, plus the default strategies an engine can fall back on.
//
// # Contract
//
// A bit-set is a fixed-capacity collection of flags, one per index in
// [0, Capacity()). Engines are interchangeable: callers program against
// BitSet[S] and pick a backend with an EmptyFunc.
//
//	simdset     dense SIMD chunks of lanes (custom engine)
//	roaringset  compressed bitmap (github.com/RoaringBitmap/roaring/v2)
//	bitvec      dense bit-vector (github.com/bits-and-blooms/bitset)
//	sparseset   sparse bit-set (golang.org/x/tools/container/intsets)
//
// # Preconditions
//
// Pairwise operations require equal capacity. Violations are programming
// errors and panic with a *CapacityMismatchError that wraps
// ErrContractViolation; they are never reported through return values.
package bitset
