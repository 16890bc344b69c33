// Package bitvec implements bitset.BitSet over the bits-and-blooms dense
// bit vector. It is the portable word-at-a-time baseline for the chunked
// engine in simdset.
package bitvec

import (
	"fmt"
	"iter"

	bbs "github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/indexical/bitset"
)

// Compile time check to ensure Set satisfies the bit-set contract.
var _ bitset.BitSet[*Set] = (*Set)(nil)

// Set is a fixed-capacity dense bit vector.
type Set struct {
	bits *bbs.BitSet
	size int
}

// New creates an empty set over [0, size).
func New(size int) *Set {
	if size < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", bitset.ErrContractViolation, size))
	}
	return &Set{
		bits: bbs.New(uint(size)),
		size: size,
	}
}

// Capacity returns the number of addressable flags.
func (s *Set) Capacity() int {
	return s.size
}

// Insert sets i, returning true if it was clear.
func (s *Set) Insert(i int) bool {
	bitset.MustContain(i, s.size)
	if s.bits.Test(uint(i)) {
		return false
	}
	s.bits.Set(uint(i))
	return true
}

// Remove clears i, returning true if it was set.
func (s *Set) Remove(i int) bool {
	bitset.MustContain(i, s.size)
	if !s.bits.Test(uint(i)) {
		return false
	}
	s.bits.Clear(uint(i))
	return true
}

// Contains reports whether i is set.
func (s *Set) Contains(i int) bool {
	return s.bits.Test(uint(i))
}

// Iter returns the set flags in ascending order.
func (s *Set) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// Len returns the number of set flags.
func (s *Set) Len() int {
	return int(s.bits.Count())
}

// IsEmpty reports whether no flag is set.
func (s *Set) IsEmpty() bool {
	return s.bits.None()
}

// Union sets every flag set in other.
func (s *Set) Union(other *Set) {
	bitset.MustMatch(s, other)
	s.bits.InPlaceUnion(other.bits)
}

// UnionChanged is Union, reporting whether s changed.
func (s *Set) UnionChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	if s.bits.UnionCardinality(other.bits) == s.bits.Count() {
		return false
	}
	s.bits.InPlaceUnion(other.bits)
	return true
}

// Intersect clears every flag not set in other.
func (s *Set) Intersect(other *Set) {
	bitset.MustMatch(s, other)
	s.bits.InPlaceIntersection(other.bits)
}

// IntersectChanged is Intersect, reporting whether s changed.
func (s *Set) IntersectChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	if s.bits.IntersectionCardinality(other.bits) == s.bits.Count() {
		return false
	}
	s.bits.InPlaceIntersection(other.bits)
	return true
}

// Subtract clears every flag set in other.
func (s *Set) Subtract(other *Set) {
	bitset.MustMatch(s, other)
	s.bits.InPlaceDifference(other.bits)
}

// SubtractChanged is Subtract, reporting whether s changed.
func (s *Set) SubtractChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	if s.bits.DifferenceCardinality(other.bits) == s.bits.Count() {
		return false
	}
	s.bits.InPlaceDifference(other.bits)
	return true
}

// Invert flips every flag in [0, Capacity()).
func (s *Set) Invert() {
	if s.size == 0 {
		return
	}
	s.bits.FlipRange(0, uint(s.size))
}

// Clear clears every flag.
func (s *Set) Clear() {
	s.bits.ClearAll()
}

// InsertAll sets every flag in [0, Capacity()).
func (s *Set) InsertAll() {
	s.bits.ClearAll()
	s.Invert()
}

// Superset reports whether every flag set in other is set in s.
func (s *Set) Superset(other *Set) bool {
	bitset.MustMatch(s, other)
	return s.bits.IsSuperSet(other.bits)
}

// CopyFrom overwrites s with the contents of other.
func (s *Set) CopyFrom(other *Set) {
	bitset.MustMatch(s, other)
	other.bits.Copy(s.bits)
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return &Set{
		bits: s.bits.Clone(),
		size: s.size,
	}
}

// Equal reports whether s and other have the same capacity and flags.
func (s *Set) Equal(other *Set) bool {
	return s.size == other.size && s.bits.Equal(other.bits)
}

// String renders the set flags, e.g. "{0,5}".
func (s *Set) String() string {
	return s.bits.String()
}
