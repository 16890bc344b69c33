package indexical

import "iter"

// IndexVec stores one V per index of a domain, sized at construction.
type IndexVec[K comparable, V any] struct {
	vec    []V
	domain Pointer[IndexedDomain[K]]
}

// NewIndexVecFromElem creates a vector holding elem for every index.
func NewIndexVecFromElem[K comparable, V any](domain Pointer[IndexedDomain[K]], elem V) *IndexVec[K, V] {
	vec := make([]V, domain.Get().Len())
	for i := range vec {
		vec[i] = elem
	}
	return &IndexVec[K, V]{vec: vec, domain: domain}
}

// NewIndexVecFromFunc creates a vector holding f(i) for every index i.
func NewIndexVecFromFunc[K comparable, V any](domain Pointer[IndexedDomain[K]], f func(Index) V) *IndexVec[K, V] {
	d := domain.Get()
	vec := make([]V, 0, d.Len())
	for i := range d.Indices() {
		vec = append(vec, f(i))
	}
	return &IndexVec[K, V]{vec: vec, domain: domain}
}

func (v *IndexVec[K, V]) index(k Elem[K]) int {
	i := k.Resolve(v.domain.Get())
	if i < 0 || int(i) >= len(v.vec) {
		panic(&IndexOutOfRangeError{Index: int(i), Capacity: len(v.vec)})
	}
	return int(i)
}

// Get returns the element for k.
func (v *IndexVec[K, V]) Get(k Elem[K]) V {
	return v.vec[v.index(k)]
}

// Ptr returns a pointer to the element for k. It stays valid for the
// lifetime of the vector.
func (v *IndexVec[K, V]) Ptr(k Elem[K]) *V {
	return &v.vec[v.index(k)]
}

// Set replaces the element for k.
func (v *IndexVec[K, V]) Set(k Elem[K], val V) {
	v.vec[v.index(k)] = val
}

// Len returns the number of elements.
func (v *IndexVec[K, V]) Len() int {
	return len(v.vec)
}

// All returns (index, element) pairs in index order.
func (v *IndexVec[K, V]) All() iter.Seq2[Index, V] {
	return func(yield func(Index, V) bool) {
		for i, e := range v.vec {
			if !yield(Index(i), e) {
				return
			}
		}
	}
}

// Slice returns the backing slice. Writes through it are visible to v.
func (v *IndexVec[K, V]) Slice() []V {
	return v.vec
}

// Domain returns the key domain.
func (v *IndexVec[K, V]) Domain() *IndexedDomain[K] {
	return v.domain.Get()
}
