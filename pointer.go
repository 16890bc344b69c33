package indexical

import (
	"fmt"
	"sync/atomic"
)

// Family selects how a Pointer owns its target.
type Family uint8

const (
	// Unique owns the target exclusively. Clone deep-copies it.
	Unique Family = iota
	// Shared counts references without synchronization. Use from one
	// goroutine at a time.
	Shared
	// AtomicShared counts references atomically. The target itself still
	// needs external synchronization for writes.
	AtomicShared
	// Borrowed references a target owned elsewhere and never counts.
	Borrowed
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Unique:
		return "unique"
	case Shared:
		return "shared"
	case AtomicShared:
		return "atomic-shared"
	case Borrowed:
		return "borrowed"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Pointer is a handle to a *T under one ownership Family.
//
// Pointers are small values; copy them with Clone so reference counts stay
// correct. The zero Pointer is released.
type Pointer[T any] struct {
	target *T
	family Family
	shared *int
	atomic *atomic.Int64
}

// NewPointer wraps target in a handle of the given family.
func NewPointer[T any](family Family, target *T) Pointer[T] {
	p := Pointer[T]{target: target, family: family}
	switch family {
	case Shared:
		n := 1
		p.shared = &n
	case AtomicShared:
		p.atomic = new(atomic.Int64)
		p.atomic.Store(1)
	case Unique, Borrowed:
	default:
		panic(fmt.Errorf("%w: unknown pointer family %d", ErrContractViolation, family))
	}
	return p
}

// Borrow returns a Borrowed handle to target.
func Borrow[T any](target *T) Pointer[T] {
	return NewPointer(Borrowed, target)
}

// Get returns the target. It panics with ErrReleased after Release.
func (p Pointer[T]) Get() *T {
	if p.target == nil {
		panic(ErrReleased)
	}
	return p.target
}

// Clone returns a new handle. Unique handles deep-copy a target that has a
// Clone() *T method and panic with ErrNotCloneable otherwise.
func (p Pointer[T]) Clone() Pointer[T] {
	t := p.Get()
	switch p.family {
	case Unique:
		c, ok := any(t).(interface{ Clone() *T })
		if !ok {
			panic(ErrNotCloneable)
		}
		return Pointer[T]{target: c.Clone(), family: Unique}
	case Shared:
		*p.shared++
	case AtomicShared:
		p.atomic.Add(1)
	}
	return p
}

// Release drops this handle and reports whether it was the last owner of
// the target. Borrowed handles never own.
func (p *Pointer[T]) Release() bool {
	p.Get()

	last := false
	switch p.family {
	case Unique:
		last = true
	case Shared:
		*p.shared--
		last = *p.shared == 0
	case AtomicShared:
		last = p.atomic.Add(-1) == 0
	}
	*p = Pointer[T]{family: p.family}
	return last
}

// Refs returns the number of live owning handles: 1 for Unique, 0 for
// Borrowed and for released handles.
func (p Pointer[T]) Refs() int {
	if p.target == nil {
		return 0
	}
	switch p.family {
	case Unique:
		return 1
	case Shared:
		return *p.shared
	case AtomicShared:
		return int(p.atomic.Load())
	default:
		return 0
	}
}

// Family returns the ownership family.
func (p Pointer[T]) Family() Family {
	return p.family
}

// Same reports whether p and q point at the same target.
func (p Pointer[T]) Same(q Pointer[T]) bool {
	return p.target != nil && p.target == q.target
}

// borrow returns a non-owning view of p's target.
func (p Pointer[T]) borrow() Pointer[T] {
	return Pointer[T]{target: p.Get(), family: Borrowed}
}
