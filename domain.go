package indexical

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Index is the dense position of a value within an IndexedDomain.
// Valid indices are [0, Len()).
type Index int

// IndexedDomain is an append-only numbering of distinct values.
//
// Indices are assigned in insertion order and never reused. A domain is
// usually built first, then shared through a Pointer and treated as
// read-only by the sets created over it.
type IndexedDomain[T comparable] struct {
	values []T
	lookup map[T]Index

	// frozen is the largest length captured as a set capacity. It is only
	// meaningful once sealed is set.
	frozen int
	sealed bool
	warned bool

	logger  *Logger
	metrics MetricsCollector
}

// NewDomain creates an empty domain.
func NewDomain[T comparable](opts ...Option) *IndexedDomain[T] {
	o := applyOptions(opts)
	return &IndexedDomain[T]{
		values:  make([]T, 0, o.capacity),
		lookup:  make(map[T]Index, o.capacity),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// DomainFrom creates a domain numbering values in order.
func DomainFrom[T comparable](values []T, opts ...Option) *IndexedDomain[T] {
	d := NewDomain[T](append([]Option{WithCapacity(len(values))}, opts...)...)
	for _, v := range values {
		d.Insert(v)
	}
	return d
}

// Insert appends v and returns its new index.
//
// Inserting a value that is already present assigns it a second index; the
// reverse lookup keeps the first one. Use Ensure for idempotent insertion.
func (d *IndexedDomain[T]) Insert(v T) Index {
	i := Index(len(d.values))
	d.values = append(d.values, v)
	if _, ok := d.lookup[v]; !ok {
		d.lookup[v] = i
	}

	stale := d.sealed && len(d.values) > d.frozen
	if stale && !d.warned {
		d.warned = true
		d.logger.LogDomainGrowth(d.frozen, len(d.values))
	}
	d.metrics.RecordDomainGrowth(len(d.values), stale)
	return i
}

// Ensure returns the index of v, inserting it first if absent.
func (d *IndexedDomain[T]) Ensure(v T) Index {
	if i, ok := d.lookup[v]; ok {
		return i
	}
	return d.Insert(v)
}

// Index returns the index of v. It panics with a *ValueNotFoundError if v
// was never inserted.
func (d *IndexedDomain[T]) Index(v T) Index {
	i, ok := d.lookup[v]
	if !ok {
		panic(&ValueNotFoundError{Value: v})
	}
	return i
}

// Lookup returns the index of v and whether it is present.
func (d *IndexedDomain[T]) Lookup(v T) (Index, bool) {
	i, ok := d.lookup[v]
	return i, ok
}

// Value returns the value at index i. It panics with an
// *IndexOutOfRangeError if i is not in [0, Len()).
func (d *IndexedDomain[T]) Value(i Index) T {
	if !d.ContainsIndex(i) {
		panic(&IndexOutOfRangeError{Index: int(i), Capacity: len(d.values)})
	}
	return d.values[i]
}

// Contains reports whether v has been inserted.
func (d *IndexedDomain[T]) Contains(v T) bool {
	_, ok := d.lookup[v]
	return ok
}

// ContainsIndex reports whether i is in [0, Len()).
func (d *IndexedDomain[T]) ContainsIndex(i Index) bool {
	return i >= 0 && int(i) < len(d.values)
}

// Len returns the number of assigned indices.
func (d *IndexedDomain[T]) Len() int {
	return len(d.values)
}

// IsEmpty reports whether the domain has no values.
func (d *IndexedDomain[T]) IsEmpty() bool {
	return len(d.values) == 0
}

// Indices returns [0, Len()) in order. The bound is read when iteration starts.
func (d *IndexedDomain[T]) Indices() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		n := len(d.values)
		for i := range n {
			if !yield(Index(i)) {
				return
			}
		}
	}
}

// All returns the values in index order.
func (d *IndexedDomain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate returns (index, value) pairs in index order.
func (d *IndexedDomain[T]) Enumerate() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i, v := range d.values {
			if !yield(Index(i), v) {
				return
			}
		}
	}
}

// Values returns a copy of the values in index order.
func (d *IndexedDomain[T]) Values() []T {
	return slices.Clone(d.values)
}

// Frozen returns the largest domain length captured as a set capacity, or
// 0 if no set has been created over the domain.
func (d *IndexedDomain[T]) Frozen() int {
	return d.frozen
}

// freeze records that a set captured the current length as its capacity.
func (d *IndexedDomain[T]) freeze() int {
	n := len(d.values)
	if !d.sealed || n > d.frozen {
		d.frozen = n
		d.sealed = true
		d.warned = false
	}
	return n
}

// Clone returns an independent copy of the domain. The copy has no frozen
// capacity.
func (d *IndexedDomain[T]) Clone() *IndexedDomain[T] {
	return &IndexedDomain[T]{
		values:  slices.Clone(d.values),
		lookup:  maps.Clone(d.lookup),
		logger:  d.logger,
		metrics: d.metrics,
	}
}

// String renders the values in index order, e.g. "[a b]".
func (d *IndexedDomain[T]) String() string {
	return fmt.Sprint(d.values)
}
