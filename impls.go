package indexical

import (
	"github.com/hupe1980/indexical/bitset/bitvec"
	"github.com/hupe1980/indexical/bitset/roaringset"
	"github.com/hupe1980/indexical/bitset/simdset"
	"github.com/hupe1980/indexical/bitset/sparseset"
)

// Engine-specific set and matrix types.
type (
	SimdIndexSet[T comparable]    = IndexSet[T, *simdset.Bitset[uint64]]
	BitvecIndexSet[T comparable]  = IndexSet[T, *bitvec.Set]
	RoaringIndexSet[T comparable] = IndexSet[T, *roaringset.Set]
	SparseIndexSet[T comparable]  = IndexSet[T, *sparseset.Set]

	SimdIndexMatrix[R, C comparable]    = IndexMatrix[R, C, *simdset.Bitset[uint64]]
	BitvecIndexMatrix[R, C comparable]  = IndexMatrix[R, C, *bitvec.Set]
	RoaringIndexMatrix[R, C comparable] = IndexMatrix[R, C, *roaringset.Set]
	SparseIndexMatrix[R, C comparable]  = IndexMatrix[R, C, *sparseset.Set]
)

// NewSimdIndexSet creates an empty set backed by 256-bit chunks of uint64 lanes.
func NewSimdIndexSet[T comparable](domain Pointer[IndexedDomain[T]]) *SimdIndexSet[T] {
	return NewIndexSet[T, *simdset.Bitset[uint64]](domain, simdset.New)
}

// NewNativeSimdIndexSet creates an empty set whose chunks match the active
// SIMD register width.
func NewNativeSimdIndexSet[T comparable](domain Pointer[IndexedDomain[T]]) *SimdIndexSet[T] {
	return NewIndexSet[T, *simdset.Bitset[uint64]](domain, simdset.NewNative)
}

// NewBitvecIndexSet creates an empty set backed by a dense bit vector.
func NewBitvecIndexSet[T comparable](domain Pointer[IndexedDomain[T]]) *BitvecIndexSet[T] {
	return NewIndexSet[T, *bitvec.Set](domain, bitvec.New)
}

// NewRoaringIndexSet creates an empty set backed by a Roaring bitmap.
func NewRoaringIndexSet[T comparable](domain Pointer[IndexedDomain[T]]) *RoaringIndexSet[T] {
	return NewIndexSet[T, *roaringset.Set](domain, roaringset.New)
}

// NewSparseIndexSet creates an empty set backed by a sparse block list.
func NewSparseIndexSet[T comparable](domain Pointer[IndexedDomain[T]]) *SparseIndexSet[T] {
	return NewIndexSet[T, *sparseset.Set](domain, sparseset.New)
}

// NewSimdIndexMatrix creates an empty matrix with simdset rows.
func NewSimdIndexMatrix[R, C comparable](colDomain Pointer[IndexedDomain[C]], opts ...Option) *SimdIndexMatrix[R, C] {
	return NewIndexMatrix[R, C, *simdset.Bitset[uint64]](colDomain, simdset.New, opts...)
}

// NewBitvecIndexMatrix creates an empty matrix with bitvec rows.
func NewBitvecIndexMatrix[R, C comparable](colDomain Pointer[IndexedDomain[C]], opts ...Option) *BitvecIndexMatrix[R, C] {
	return NewIndexMatrix[R, C, *bitvec.Set](colDomain, bitvec.New, opts...)
}

// NewRoaringIndexMatrix creates an empty matrix with roaringset rows.
func NewRoaringIndexMatrix[R, C comparable](colDomain Pointer[IndexedDomain[C]], opts ...Option) *RoaringIndexMatrix[R, C] {
	return NewIndexMatrix[R, C, *roaringset.Set](colDomain, roaringset.New, opts...)
}

// NewSparseIndexMatrix creates an empty matrix with sparseset rows.
func NewSparseIndexMatrix[R, C comparable](colDomain Pointer[IndexedDomain[C]], opts ...Option) *SparseIndexMatrix[R, C] {
	return NewIndexMatrix[R, C, *sparseset.Set](colDomain, sparseset.New, opts...)
}
