package indexical

// Elem names a domain element either by value or by a precomputed index.
// Build one with Value or At.
type Elem[T comparable] struct {
	value   T
	index   Index
	isIndex bool
}

// Value names an element by its domain value.
func Value[T comparable](v T) Elem[T] {
	return Elem[T]{value: v}
}

// At names an element by its index.
func At[T comparable](i Index) Elem[T] {
	return Elem[T]{index: i, isIndex: true}
}

// IsIndex reports whether e was built with At.
func (e Elem[T]) IsIndex() bool {
	return e.isIndex
}

// Resolve returns e's index in d. Values missing from d panic with a
// *ValueNotFoundError; indices are returned unchecked.
func (e Elem[T]) Resolve(d *IndexedDomain[T]) Index {
	if e.isIndex {
		return e.index
	}
	return d.Index(e.value)
}

// lookup is Resolve without the panic for missing values.
func (e Elem[T]) lookup(d *IndexedDomain[T]) (Index, bool) {
	if e.isIndex {
		return e.index, true
	}
	return d.Lookup(e.value)
}
