package bitset

import "iter"

// BitSet is the capability a dense index-set storage engine must provide.
//
// S is the concrete engine type, usually a pointer (e.g. *simdset.Bitset[uint64]).
type BitSet[S any] interface {
	// Capacity returns the number of addressable flags.
	Capacity() int

	// Insert sets flag i, returning true if it was previously clear.
	Insert(i int) bool

	// Remove clears flag i, returning true if it was previously set.
	Remove(i int) bool

	// Contains reports whether flag i is set.
	Contains(i int) bool

	// Iter returns the set indices in ascending order. Each call returns a
	// fresh sequence; the set must not be mutated while it is consumed.
	Iter() iter.Seq[int]

	// Len returns the number of set flags.
	Len() int

	// IsEmpty reports whether no flag is set.
	IsEmpty() bool

	// Union sets every flag set in other.
	Union(other S)

	// UnionChanged is Union, reporting whether the receiver changed.
	UnionChanged(other S) bool

	// Intersect clears every flag not set in other.
	Intersect(other S)

	// IntersectChanged is Intersect, reporting whether the receiver changed.
	IntersectChanged(other S) bool

	// Subtract clears every flag set in other.
	Subtract(other S)

	// SubtractChanged is Subtract, reporting whether the receiver changed.
	SubtractChanged(other S) bool

	// Invert flips every flag in [0, Capacity()).
	Invert()

	// Clear clears every flag.
	Clear()

	// InsertAll sets every flag in [0, Capacity()).
	InsertAll()

	// Superset reports whether every flag set in other is set in the receiver.
	Superset(other S) bool

	// CopyFrom overwrites the receiver with the contents of other.
	CopyFrom(other S)

	// Clone returns an independent copy.
	Clone() S

	// Equal reports whether both sets hold the same flags.
	Equal(other S) bool
}

// EmptyFunc constructs an engine with every flag clear and the given capacity.
type EmptyFunc[S any] func(size int) S
