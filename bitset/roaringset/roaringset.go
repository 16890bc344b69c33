// Package roaringset implements bitset.BitSet over a compressed Roaring
// bitmap. It suits sparse or clustered sets over large domains.
package roaringset

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/indexical/bitset"
	"github.com/hupe1980/indexical/internal/conv"
)

// Compile time check to ensure Set satisfies the bit-set contract.
var _ bitset.BitSet[*Set] = (*Set)(nil)

// Set is a fixed-capacity bit-set backed by a 32-bit Roaring bitmap.
type Set struct {
	rb   *roaring.Bitmap
	size int
}

// New creates an empty set over [0, size). size must fit in the uint32
// index space.
func New(size int) *Set {
	mustSize(size)
	return &Set{
		rb:   roaring.New(),
		size: size,
	}
}

func mustSize(size int) {
	if size < 0 || uint64(size) > conv.MaxUint32Range {
		panic(fmt.Errorf("%w: roaring capacity %d outside [0, 2^32]", bitset.ErrContractViolation, size))
	}
}

// Capacity returns the number of addressable flags.
func (s *Set) Capacity() int {
	return s.size
}

// Insert adds i, returning true if it was absent.
func (s *Set) Insert(i int) bool {
	return s.rb.CheckedAdd(conv.MustUint32(i))
}

// Remove deletes i, returning true if it was present.
func (s *Set) Remove(i int) bool {
	return s.rb.CheckedRemove(conv.MustUint32(i))
}

// Contains checks if i is in the set.
func (s *Set) Contains(i int) bool {
	return s.rb.Contains(conv.MustUint32(i))
}

// Iter returns the members in ascending order.
func (s *Set) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Len returns the number of members.
func (s *Set) Len() int {
	return conv.MustInt(s.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Union computes the union in place.
func (s *Set) Union(other *Set) {
	bitset.MustMatch(s, other)
	s.rb.Or(other.rb)
}

// UnionChanged is Union, reporting whether s changed.
func (s *Set) UnionChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	n := s.rb.GetCardinality()
	if s.rb.OrCardinality(other.rb) == n {
		return false
	}
	s.rb.Or(other.rb)
	return true
}

// Intersect computes the intersection in place.
func (s *Set) Intersect(other *Set) {
	bitset.MustMatch(s, other)
	s.rb.And(other.rb)
}

// IntersectChanged is Intersect, reporting whether s changed.
func (s *Set) IntersectChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	n := s.rb.GetCardinality()
	if s.rb.AndCardinality(other.rb) == n {
		return false
	}
	s.rb.And(other.rb)
	return true
}

// Subtract removes every member of other.
func (s *Set) Subtract(other *Set) {
	bitset.MustMatch(s, other)
	s.rb.AndNot(other.rb)
}

// SubtractChanged is Subtract, reporting whether s changed.
func (s *Set) SubtractChanged(other *Set) bool {
	bitset.MustMatch(s, other)
	if !s.rb.Intersects(other.rb) {
		return false
	}
	s.rb.AndNot(other.rb)
	return true
}

// Invert complements the set within [0, Capacity()).
func (s *Set) Invert() {
	s.rb.Flip(0, uint64(s.size))
}

// Clear removes all members.
func (s *Set) Clear() {
	s.rb.Clear()
}

// InsertAll adds every index in [0, Capacity()).
func (s *Set) InsertAll() {
	s.rb.AddRange(0, uint64(s.size))
}

// Superset reports whether every member of other is in s.
func (s *Set) Superset(other *Set) bool {
	bitset.MustMatch(s, other)
	return s.rb.AndCardinality(other.rb) == other.rb.GetCardinality()
}

// CopyFrom overwrites s with the members of other.
func (s *Set) CopyFrom(other *Set) {
	bitset.MustMatch(s, other)
	s.rb.Clear()
	s.rb.Or(other.rb)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb:   s.rb.Clone(),
		size: s.size,
	}
}

// Equal reports whether s and other have the same capacity and members.
func (s *Set) Equal(other *Set) bool {
	return s.size == other.size && s.rb.Equals(other.rb)
}

// RunOptimize compresses runs of consecutive members in place.
func (s *Set) RunOptimize() {
	s.rb.RunOptimize()
}

// GetSizeInBytes returns the size of the set in bytes.
func (s *Set) GetSizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// String renders the members, e.g. "{0,5}".
func (s *Set) String() string {
	return s.rb.String()
}
