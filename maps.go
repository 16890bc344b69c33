package indexical

import (
	"iter"
	"maps"
	"slices"
)

// SparseIndexMap maps a subset of a domain's indices to values.
type SparseIndexMap[K comparable, V any] struct {
	m      map[Index]V
	domain Pointer[IndexedDomain[K]]
}

// NewSparseIndexMap creates an empty map keyed by domain elements.
func NewSparseIndexMap[K comparable, V any](domain Pointer[IndexedDomain[K]]) *SparseIndexMap[K, V] {
	return &SparseIndexMap[K, V]{
		m:      make(map[Index]V),
		domain: domain,
	}
}

// Get returns the value for k and whether it is present. A value unknown
// to the domain is absent.
func (s *SparseIndexMap[K, V]) Get(k Elem[K]) (V, bool) {
	i, ok := k.lookup(s.domain.Get())
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := s.m[i]
	return v, ok
}

// Insert sets the value for k.
func (s *SparseIndexMap[K, V]) Insert(k Elem[K], v V) {
	s.m[k.Resolve(s.domain.Get())] = v
}

// Entry returns the value for k, inserting mk() first if absent.
func (s *SparseIndexMap[K, V]) Entry(k Elem[K], mk func() V) V {
	i := k.Resolve(s.domain.Get())
	v, ok := s.m[i]
	if !ok {
		v = mk()
		s.m[i] = v
	}
	return v
}

// Delete removes k and reports whether it was present.
func (s *SparseIndexMap[K, V]) Delete(k Elem[K]) bool {
	i, ok := k.lookup(s.domain.Get())
	if !ok {
		return false
	}
	if _, ok := s.m[i]; !ok {
		return false
	}
	delete(s.m, i)
	return true
}

// Len returns the number of entries.
func (s *SparseIndexMap[K, V]) Len() int {
	return len(s.m)
}

// All returns the entries in ascending index order.
func (s *SparseIndexMap[K, V]) All() iter.Seq2[Index, V] {
	return func(yield func(Index, V) bool) {
		for _, i := range slices.Sorted(maps.Keys(s.m)) {
			if !yield(i, s.m[i]) {
				return
			}
		}
	}
}

// Values returns the values in ascending index order.
func (s *SparseIndexMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// DenseIndexMap stores a value for every index of a domain and grows with it.
type DenseIndexMap[K comparable, V any] struct {
	vec    []V
	mk     func(Index) V
	domain Pointer[IndexedDomain[K]]
}

// NewDenseIndexMap creates a map holding mk(i) for every index i. Indices
// the domain gains later are filled with mk on first access.
func NewDenseIndexMap[K comparable, V any](domain Pointer[IndexedDomain[K]], mk func(Index) V) *DenseIndexMap[K, V] {
	m := &DenseIndexMap[K, V]{mk: mk, domain: domain}
	m.grow(domain.Get().Len())
	return m
}

func (m *DenseIndexMap[K, V]) grow(n int) {
	for i := len(m.vec); i < n; i++ {
		m.vec = append(m.vec, m.mk(Index(i)))
	}
}

// Get returns the value for k. It reports false for a value unknown to the
// domain or an index outside it.
func (m *DenseIndexMap[K, V]) Get(k Elem[K]) (V, bool) {
	d := m.domain.Get()
	i, ok := k.lookup(d)
	if !ok || !d.ContainsIndex(i) {
		var zero V
		return zero, false
	}
	m.grow(d.Len())
	return m.vec[i], true
}

// Insert sets the value for k.
func (m *DenseIndexMap[K, V]) Insert(k Elem[K], v V) {
	d := m.domain.Get()
	i := k.Resolve(d)
	if !d.ContainsIndex(i) {
		panic(&IndexOutOfRangeError{Index: int(i), Capacity: d.Len()})
	}
	m.grow(d.Len())
	m.vec[i] = v
}

// Len returns the number of stored values.
func (m *DenseIndexMap[K, V]) Len() int {
	return len(m.vec)
}

// All returns (index, value) pairs in index order.
func (m *DenseIndexMap[K, V]) All() iter.Seq2[Index, V] {
	return func(yield func(Index, V) bool) {
		m.grow(m.domain.Get().Len())
		for i, v := range m.vec {
			if !yield(Index(i), v) {
				return
			}
		}
	}
}
