package indexical

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/indexical/bitset"
)

// IndexMatrix maps row keys to IndexSets over one shared column domain.
//
// Rows are created on first write. A row that was never written behaves as
// the empty set. Rows borrow the matrix's column domain pointer.
type IndexMatrix[R comparable, C comparable, S bitset.BitSet[S]] struct {
	rows  map[R]*IndexSet[C, S]
	order []R

	colDomain Pointer[IndexedDomain[C]]

	// newBits builds row storage at the frozen column capacity.
	newBits  func() S
	capacity int

	// zero stands in for rows that were never written.
	zero *IndexSet[C, S]

	logger  *Logger
	metrics MetricsCollector
}

// NewIndexMatrix creates an empty matrix over colDomain using the engine
// built by empty.
func NewIndexMatrix[R comparable, C comparable, S bitset.BitSet[S]](colDomain Pointer[IndexedDomain[C]], empty bitset.EmptyFunc[S], opts ...Option) *IndexMatrix[R, C, S] {
	o := applyOptions(opts)
	zero := NewIndexSet(colDomain.borrow(), empty)
	n := zero.Capacity()
	return &IndexMatrix[R, C, S]{
		rows:      make(map[R]*IndexSet[C, S], o.capacity),
		order:     make([]R, 0, o.capacity),
		colDomain: colDomain,
		newBits:   func() S { return empty(n) },
		capacity:  n,
		zero:      zero,
		logger:    o.logger.WithCapacity(n),
		metrics:   o.metrics,
	}
}

// EnsureRow returns the set for row, creating an empty one if needed.
func (m *IndexMatrix[R, C, S]) EnsureRow(row R) *IndexSet[C, S] {
	if s, ok := m.rows[row]; ok {
		return s
	}
	s := &IndexSet[C, S]{
		bits:   m.newBits(),
		domain: m.zero.domain,
	}
	m.rows[row] = s
	m.order = append(m.order, row)

	m.logger.LogRowMaterialized(row, len(m.rows))
	m.metrics.RecordRowMaterialized()
	return s
}

// Insert adds col to row, returning true if it was absent.
func (m *IndexMatrix[R, C, S]) Insert(row R, col Elem[C]) bool {
	return m.EnsureRow(row).Insert(col)
}

// Remove deletes col from row, returning true if it was present.
func (m *IndexMatrix[R, C, S]) Remove(row R, col Elem[C]) bool {
	s, ok := m.rows[row]
	if !ok {
		return false
	}
	return s.Remove(col)
}

// Contains reports whether col is in row.
func (m *IndexMatrix[R, C, S]) Contains(row R, col Elem[C]) bool {
	return m.RowSet(row).Contains(col)
}

// UnionIntoRow adds every member of from to row and reports whether row changed.
func (m *IndexMatrix[R, C, S]) UnionIntoRow(row R, from *IndexSet[C, S]) bool {
	return m.EnsureRow(row).UnionChanged(from)
}

// UnionRows adds every member of row from to row to and reports whether to
// changed. Unioning a row with itself is a no-op.
func (m *IndexMatrix[R, C, S]) UnionRows(from, to R) bool {
	if from == to {
		return false
	}
	src, ok := m.rows[from]
	if !ok {
		return false
	}
	return m.EnsureRow(to).UnionChanged(src)
}

// Row returns the members of row in index order.
func (m *IndexMatrix[R, C, S]) Row(row R) iter.Seq[C] {
	return m.RowSet(row).All()
}

// RowSet returns the set for row, or a shared empty set if the row was
// never written. The shared set must not be mutated; RowSet panics with an
// error wrapping ErrContractViolation once it has been.
func (m *IndexMatrix[R, C, S]) RowSet(row R) *IndexSet[C, S] {
	if s, ok := m.rows[row]; ok {
		return s
	}
	if !m.zero.IsEmpty() {
		panic(fmt.Errorf("%w: empty row placeholder was written to; use EnsureRow for writes", ErrContractViolation))
	}
	return m.zero
}

// HasRow reports whether row has been materialized.
func (m *IndexMatrix[R, C, S]) HasRow(row R) bool {
	_, ok := m.rows[row]
	return ok
}

// ClearRow removes every member of row, keeping the row.
func (m *IndexMatrix[R, C, S]) ClearRow(row R) {
	if s, ok := m.rows[row]; ok {
		s.Clear()
	}
}

// Rows returns the materialized rows in creation order.
func (m *IndexMatrix[R, C, S]) Rows() iter.Seq2[R, *IndexSet[C, S]] {
	return func(yield func(R, *IndexSet[C, S]) bool) {
		for _, r := range m.order {
			if !yield(r, m.rows[r]) {
				return
			}
		}
	}
}

// Len returns the number of materialized rows.
func (m *IndexMatrix[R, C, S]) Len() int {
	return len(m.rows)
}

// Capacity returns the column capacity frozen into every row.
func (m *IndexMatrix[R, C, S]) Capacity() int {
	return m.capacity
}

// ColDomain returns the column domain.
func (m *IndexMatrix[R, C, S]) ColDomain() *IndexedDomain[C] {
	return m.colDomain.Get()
}

// Clone returns a copy with independent row storage over the same column
// domain pointer, cloned according to its family.
func (m *IndexMatrix[R, C, S]) Clone() *IndexMatrix[R, C, S] {
	col := m.colDomain.Clone()
	view := col.borrow()
	c := &IndexMatrix[R, C, S]{
		rows:      make(map[R]*IndexSet[C, S], len(m.rows)),
		order:     make([]R, len(m.order)),
		colDomain: col,
		newBits:   m.newBits,
		capacity:  m.capacity,
		zero:      &IndexSet[C, S]{bits: m.newBits(), domain: view},
		logger:    m.logger,
		metrics:   m.metrics,
	}
	copy(c.order, m.order)
	for r, s := range m.rows {
		c.rows[r] = &IndexSet[C, S]{bits: s.bits.Clone(), domain: view}
	}
	return c
}

// Equal reports whether every row holds the same members in m and other.
// A missing row equals an empty one.
func (m *IndexMatrix[R, C, S]) Equal(other *IndexMatrix[R, C, S]) bool {
	for r, s := range m.rows {
		if !s.Equal(other.RowSet(r)) {
			return false
		}
	}
	for r, s := range other.rows {
		if _, ok := m.rows[r]; !ok && !s.IsEmpty() {
			return false
		}
	}
	return true
}

// ParallelRows calls fn for every materialized row using up to workers
// goroutines. Each row is visited by exactly one goroutine, so fn may
// mutate the set it is given but nothing else in the matrix. The first
// error cancels the remaining visits and is returned.
//
// The column domain must not grow while ParallelRows runs.
func (m *IndexMatrix[R, C, S]) ParallelRows(ctx context.Context, workers int, fn func(ctx context.Context, row R, set *IndexSet[C, S]) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, r := range m.order {
		s := m.rows[r]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, r, s)
		})
	}
	return g.Wait()
}
