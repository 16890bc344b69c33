// Package indexical provides indexed sets: bit-sets over a numbered universe
// of domain values.
//
// An IndexedDomain assigns every value a dense, stable Index. An IndexSet
// stores membership over that domain as a bit-set, so unions, intersections
// and differences run word-at-a-time (or vector-at-a-time with the simdset
// engine) instead of hashing values. An IndexMatrix maps row keys to lazily
// created IndexSets over one shared column domain.
//
// # Quick Start
//
//	domain := indexical.DomainFrom([]string{"a", "b", "c"})
//	ptr := indexical.NewPointer(indexical.Shared, domain)
//
//	s := indexical.NewSimdIndexSet(ptr)
//	s.Insert(indexical.Value("a"))
//	s.Insert(indexical.At[string](2))
//	for v := range s.All() {
//	    fmt.Println(v) // a, c
//	}
//
// # Engines
//
// Every set is generic over a bitset.BitSet engine. The constructors in
// impls.go pick one:
//
//   - NewSimdIndexSet: dense chunked lanes (bitset/simdset)
//   - NewBitvecIndexSet: dense word vector (bitset/bitvec)
//   - NewRoaringIndexSet: compressed Roaring bitmap (bitset/roaringset)
//   - NewSparseIndexSet: sparse block list (bitset/sparseset)
//
// # Capacity Is Frozen
//
// A set's capacity is the domain length at the time the set was created.
// Growing the domain afterwards does not grow existing sets; indices past the
// frozen capacity are rejected with a panic. Finalize the domain before
// creating sets, or re-create them after growth. The domain logs a warning
// the first time it grows past a frozen capacity.
//
// # Errors
//
// Contract violations (capacity mismatch, index out of range, unknown value
// looked up through Index) panic with an error wrapping ErrContractViolation.
// Absence is never an error: Contains reports false, Ensure inserts, and
// missing matrix rows behave as empty sets.
//
// # Concurrency
//
// Nothing in this package synchronizes internally. Concurrent readers are
// safe while no goroutine mutates. IndexMatrix.ParallelRows hands disjoint
// rows to workers, which is safe as long as the column domain is not grown.
package indexical
