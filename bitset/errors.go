package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation marks a broken caller precondition. Values
	// wrapping it are raised with panic, never returned.
	ErrContractViolation = errors.New("bitset: contract violation")
)

// CapacityMismatchError indicates a pairwise operation on sets of different capacity.
type CapacityMismatchError struct {
	Left  int
	Right int
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("bitset: capacity mismatch: %d != %d", e.Left, e.Right)
}

func (e *CapacityMismatchError) Unwrap() error { return ErrContractViolation }

// IndexOutOfRangeError indicates an index outside [0, Capacity).
type IndexOutOfRangeError struct {
	Index    int
	Capacity int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("bitset: index %d out of range [0, %d)", e.Index, e.Capacity)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrContractViolation }

type capacitor interface {
	Capacity() int
}

// MustMatch panics with a *CapacityMismatchError unless a and b have equal capacity.
func MustMatch(a, b capacitor) {
	if l, r := a.Capacity(), b.Capacity(); l != r {
		panic(&CapacityMismatchError{Left: l, Right: r})
	}
}

// MustContain panics with an *IndexOutOfRangeError unless 0 <= i < capacity.
func MustContain(i, capacity int) {
	if uint(i) >= uint(capacity) {
		panic(&IndexOutOfRangeError{Index: i, Capacity: capacity})
	}
}
