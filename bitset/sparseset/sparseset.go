// Package sparseset implements bitset.BitSet over intsets.Sparse, the
// sparse bit-set used inside the Go tools. Memory is proportional to the
// occupied 256-bit blocks, not to the capacity.
package sparseset

import (
	"fmt"
	"iter"
	"math"

	"golang.org/x/tools/container/intsets"

	"github.com/hupe1980/indexical/bitset"
)

// Compile time check to ensure Set satisfies the bit-set contract.
var _ bitset.BitSet[*Set] = (*Set)(nil)

// Set is a fixed-capacity sparse bit-set.
type Set struct {
	sparse intsets.Sparse
	size   int
}

// New creates an empty set over [0, size).
func New(size int) *Set {
	if size < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", bitset.ErrContractViolation, size))
	}
	return &Set{size: size}
}

// Capacity returns the number of addressable flags.
func (s *Set) Capacity() int {
	return s.size
}

// Insert adds i, returning true if it was absent.
func (s *Set) Insert(i int) bool {
	bitset.MustContain(i, s.size)
	return s.sparse.Insert(i)
}

// Remove deletes i, returning true if it was present.
func (s *Set) Remove(i int) bool {
	bitset.MustContain(i, s.size)
	return s.sparse.Remove(i)
}

// Contains reports whether i is present.
func (s *Set) Contains(i int) bool {
	return s.sparse.Has(i)
}

// Iter returns the members in ascending order.
func (s *Set) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := s.sparse.LowerBound(0); i != math.MaxInt; i = s.sparse.LowerBound(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.sparse.Len()
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.sparse.IsEmpty()
}

// Union adds every member of other.
func (s *Set) Union(other *Set) {
	s.UnionChanged(other)
}

// UnionChanged is Union, reporting whether s changed.
func (s *Set) UnionChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	return s.sparse.UnionWith(&other.sparse)
}

// Intersect keeps only members of other.
func (s *Set) Intersect(other *Set) {
	bitset.MustMatch(s, other)
	s.sparse.IntersectionWith(&other.sparse)
}

// IntersectChanged is Intersect, reporting whether s changed.
func (s *Set) IntersectChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	n := s.sparse.Len()
	s.sparse.IntersectionWith(&other.sparse)
	return s.sparse.Len() != n
}

// Subtract removes every member of other.
func (s *Set) Subtract(other *Set) {
	bitset.MustMatch(s, other)
	s.sparse.DifferenceWith(&other.sparse)
}

// SubtractChanged is Subtract, reporting whether s changed.
func (s *Set) SubtractChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	if !s.sparse.Intersects(&other.sparse) {
		return false
	}
	s.sparse.DifferenceWith(&other.sparse)
	return true
}

// Invert complements the set within [0, Capacity()).
func (s *Set) Invert() {
	var full intsets.Sparse
	for i := range s.size {
		full.Insert(i)
	}
	full.DifferenceWith(&s.sparse)
	s.sparse.Copy(&full)
}

// Clear removes all members.
func (s *Set) Clear() {
	s.sparse.Clear()
}

// InsertAll adds every index in [0, Capacity()).
func (s *Set) InsertAll() {
	for i := range s.size {
		s.sparse.Insert(i)
	}
}

// Superset reports whether every member of other is in s.
func (s *Set) Superset(other *Set) bool {
	bitset.MustMatch(s, other)
	return other.sparse.SubsetOf(&s.sparse)
}

// CopyFrom overwrites s with the members of other.
func (s *Set) CopyFrom(other *Set) {
	bitset.MustMatch(s, other)
	s.sparse.Copy(&other.sparse)
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{size: s.size}
	c.sparse.Copy(&s.sparse)
	return c
}

// Equal reports whether s and other have the same capacity and members.
func (s *Set) Equal(other *Set) bool {
	return s.size == other.size && s.sparse.Equals(&other.sparse)
}

// String renders the members, e.g. "{0 5}".
func (s *Set) String() string {
	return s.sparse.String()
}
