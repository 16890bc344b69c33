package indexical

import (
	"errors"
	"fmt"

	"github.com/hupe1980/indexical/bitset"
)

var (
	// ErrContractViolation marks a broken caller precondition. Errors
	// wrapping it are raised with panic.
	ErrContractViolation = bitset.ErrContractViolation

	// ErrValueNotFound is raised by IndexedDomain.Index for a value that was
	// never inserted.
	ErrValueNotFound = fmt.Errorf("indexical: value not in domain: %w", ErrContractViolation)

	// ErrReleased is raised when a Pointer is used after Release.
	ErrReleased = fmt.Errorf("indexical: pointer used after release: %w", ErrContractViolation)

	// ErrNotCloneable is raised when a Unique pointer to a type without a
	// Clone method is cloned.
	ErrNotCloneable = fmt.Errorf("indexical: unique target cannot be cloned: %w", ErrContractViolation)

	// ErrDomainMismatch is raised by pairwise set operations on sets over
	// different domains.
	ErrDomainMismatch = fmt.Errorf("indexical: sets range over different domains: %w", ErrContractViolation)

	// ErrInvalidProblem is returned for malformed inputs to a solver or
	// constructor that reports errors instead of panicking.
	ErrInvalidProblem = errors.New("indexical: invalid problem")
)

// CapacityMismatchError indicates a pairwise operation on sets of different capacity.
type CapacityMismatchError = bitset.CapacityMismatchError

// IndexOutOfRangeError indicates an index outside [0, capacity).
type IndexOutOfRangeError = bitset.IndexOutOfRangeError

// ValueNotFoundError carries the missing value.
//
// It matches ErrValueNotFound and ErrContractViolation with errors.Is.
type ValueNotFoundError struct {
	Value any
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("indexical: value %v not in domain", e.Value)
}

func (e *ValueNotFoundError) Unwrap() error { return ErrValueNotFound }

// StaleSetError indicates an index that exists in the domain but lies past
// the capacity frozen into a set.
type StaleSetError struct {
	Index    Index
	Capacity int
	Domain   int
}

func (e *StaleSetError) Error() string {
	return fmt.Sprintf("indexical: index %d beyond frozen capacity %d (domain has grown to %d)", e.Index, e.Capacity, e.Domain)
}

func (e *StaleSetError) Unwrap() error { return ErrContractViolation }
