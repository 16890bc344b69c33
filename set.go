package indexical

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/indexical/bitset"
)

// IndexSet is a set of domain values stored as a bit-set over their indices.
//
// The capacity is the domain length when the set was created. Element
// operations are range checked against it; pairwise operations require
// both sets to share a capacity and a domain. Sets whose handle is Unique
// own a private domain copy and are matched by capacity alone.
type IndexSet[T comparable, S bitset.BitSet[S]] struct {
	bits   S
	domain Pointer[IndexedDomain[T]]
}

// NewIndexSet creates an empty set over domain using the engine built by empty.
func NewIndexSet[T comparable, S bitset.BitSet[S]](domain Pointer[IndexedDomain[T]], empty bitset.EmptyFunc[S]) *IndexSet[T, S] {
	n := domain.Get().freeze()
	return &IndexSet[T, S]{
		bits:   empty(n),
		domain: domain,
	}
}

// index resolves e and checks it against the frozen capacity.
func (s *IndexSet[T, S]) index(e Elem[T]) int {
	d := s.domain.Get()
	i := e.Resolve(d)
	s.mustContain(d, i)
	return int(i)
}

func (s *IndexSet[T, S]) mustContain(d *IndexedDomain[T], i Index) {
	capacity := s.bits.Capacity()
	if i >= 0 && int(i) < capacity {
		return
	}
	if i >= 0 && int(i) < d.Len() {
		panic(&StaleSetError{Index: i, Capacity: capacity, Domain: d.Len()})
	}
	panic(&IndexOutOfRangeError{Index: int(i), Capacity: capacity})
}

// mustShareDomain panics unless other has the same capacity as s and
// ranges over the same domain.
func (s *IndexSet[T, S]) mustShareDomain(other *IndexSet[T, S]) {
	bitset.MustMatch(s.bits, other.bits)
	if s.domain.Family() == Unique || other.domain.Family() == Unique {
		return
	}
	if s.domain.Get() != other.domain.Get() {
		panic(ErrDomainMismatch)
	}
}

// Insert adds e, returning true if it was absent.
func (s *IndexSet[T, S]) Insert(e Elem[T]) bool {
	return s.bits.Insert(s.index(e))
}

// Remove deletes e, returning true if it was present.
func (s *IndexSet[T, S]) Remove(e Elem[T]) bool {
	return s.bits.Remove(s.index(e))
}

// Contains reports whether e is in the set. A value unknown to the domain,
// or an index the domain gained after the set was created, is simply absent.
func (s *IndexSet[T, S]) Contains(e Elem[T]) bool {
	d := s.domain.Get()
	i, ok := e.lookup(d)
	if !ok {
		return false
	}
	if int(i) >= s.bits.Capacity() && int(i) < d.Len() {
		return false
	}
	s.mustContain(d, i)
	return s.bits.Contains(int(i))
}

// Indices returns the member indices in ascending order.
func (s *IndexSet[T, S]) Indices() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for i := range s.bits.Iter() {
			if !yield(Index(i)) {
				return
			}
		}
	}
}

// All returns the member values in index order.
func (s *IndexSet[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		d := s.domain.Get()
		for i := range s.bits.Iter() {
			if !yield(d.values[i]) {
				return
			}
		}
	}
}

// Enumerate returns (index, value) pairs of the members in index order.
func (s *IndexSet[T, S]) Enumerate() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		d := s.domain.Get()
		for i := range s.bits.Iter() {
			if !yield(Index(i), d.values[i]) {
				return
			}
		}
	}
}

// Len returns the number of members.
func (s *IndexSet[T, S]) Len() int {
	return s.bits.Len()
}

// IsEmpty reports whether the set has no members.
func (s *IndexSet[T, S]) IsEmpty() bool {
	return s.bits.IsEmpty()
}

// Capacity returns the domain length frozen into the set.
func (s *IndexSet[T, S]) Capacity() int {
	return s.bits.Capacity()
}

// IsSuperset reports whether every member of other is in s.
func (s *IndexSet[T, S]) IsSuperset(other *IndexSet[T, S]) bool {
	s.mustShareDomain(other)
	return s.bits.Superset(other.bits)
}

// Union adds every member of other.
func (s *IndexSet[T, S]) Union(other *IndexSet[T, S]) {
	s.mustShareDomain(other)
	s.bits.Union(other.bits)
}

// UnionChanged is Union, reporting whether s changed.
func (s *IndexSet[T, S]) UnionChanged(other *IndexSet[T, S]) bool {
	s.mustShareDomain(other)
	return s.bits.UnionChanged(other.bits)
}

// Intersect keeps only members of other.
func (s *IndexSet[T, S]) Intersect(other *IndexSet[T, S]) {
	s.mustShareDomain(other)
	s.bits.Intersect(other.bits)
}

// IntersectChanged is Intersect, reporting whether s changed.
func (s *IndexSet[T, S]) IntersectChanged(other *IndexSet[T, S]) bool {
	s.mustShareDomain(other)
	return s.bits.IntersectChanged(other.bits)
}

// Subtract removes every member of other.
func (s *IndexSet[T, S]) Subtract(other *IndexSet[T, S]) {
	s.mustShareDomain(other)
	s.bits.Subtract(other.bits)
}

// SubtractChanged is Subtract, reporting whether s changed.
func (s *IndexSet[T, S]) SubtractChanged(other *IndexSet[T, S]) bool {
	s.mustShareDomain(other)
	return s.bits.SubtractChanged(other.bits)
}

// Invert complements the set within its capacity.
func (s *IndexSet[T, S]) Invert() {
	s.bits.Invert()
}

// Clear removes all members.
func (s *IndexSet[T, S]) Clear() {
	s.bits.Clear()
}

// InsertAll adds every index within the capacity.
func (s *IndexSet[T, S]) InsertAll() {
	s.bits.InsertAll()
}

// CopyFrom overwrites s with the members of other.
func (s *IndexSet[T, S]) CopyFrom(other *IndexSet[T, S]) {
	s.mustShareDomain(other)
	s.bits.CopyFrom(other.bits)
}

// Clone returns a copy with independent storage. The domain pointer is
// cloned according to its family.
func (s *IndexSet[T, S]) Clone() *IndexSet[T, S] {
	return &IndexSet[T, S]{
		bits:   s.bits.Clone(),
		domain: s.domain.Clone(),
	}
}

// Equal reports whether s and other have the same capacity and members.
func (s *IndexSet[T, S]) Equal(other *IndexSet[T, S]) bool {
	return s.bits.Equal(other.bits)
}

// Domain returns the domain the set ranges over.
func (s *IndexSet[T, S]) Domain() *IndexedDomain[T] {
	return s.domain.Get()
}

// DomainPointer returns the set's handle to its domain.
func (s *IndexSet[T, S]) DomainPointer() Pointer[IndexedDomain[T]] {
	return s.domain
}

// Bits returns the underlying engine. Mutating it mutates the set.
func (s *IndexSet[T, S]) Bits() S {
	return s.bits
}

// Stale reports whether the domain has grown past the set's capacity.
func (s *IndexSet[T, S]) Stale() bool {
	return s.domain.Get().Len() != s.bits.Capacity()
}

// Release drops the set's handle to its domain. The set is unusable afterwards.
func (s *IndexSet[T, S]) Release() bool {
	return s.domain.Release()
}

// String renders the member values, e.g. "{a, c}".
func (s *IndexSet[T, S]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
