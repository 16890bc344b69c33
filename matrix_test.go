package indexical

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLetterMatrix() *SimdIndexMatrix[int, string] {
	col := NewPointer(Shared, DomainFrom([]string{"a", "b", "c"}))
	return NewSimdIndexMatrix[int](col)
}

func TestMatrixUnionRows(t *testing.T) {
	m := newLetterMatrix()
	m.Insert(0, Value("b"))
	m.Insert(1, Value("c"))

	assert.True(t, m.UnionRows(0, 1))
	assert.Equal(t, []string{"b", "c"}, slices.Collect(m.Row(1)))
	assert.Equal(t, []string{"b"}, slices.Collect(m.Row(0)), "source row unchanged")

	assert.False(t, m.UnionRows(0, 1), "second union changes nothing")
	assert.False(t, m.UnionRows(1, 1), "self union is a no-op")
	assert.Equal(t, []string{"b", "c"}, slices.Collect(m.Row(1)))
}

func TestMatrixMissingRows(t *testing.T) {
	m := newLetterMatrix()

	assert.Empty(t, slices.Collect(m.Row(7)))
	assert.True(t, m.RowSet(7).IsEmpty())
	assert.False(t, m.Contains(7, Value("a")))
	assert.False(t, m.Remove(7, Value("a")))
	assert.False(t, m.HasRow(7))
	assert.Zero(t, m.Len(), "reads do not materialize rows")

	assert.False(t, m.UnionRows(7, 8), "union from a missing row")
	assert.False(t, m.HasRow(8))
}

func TestMatrixEmptyRowWrite(t *testing.T) {
	m := newLetterMatrix()
	m.RowSet(99).Insert(Value("a"))

	assert.True(t, m.Insert(5, Value("c")))
	assert.Equal(t, []string{"c"}, slices.Collect(m.RowSet(5).All()), "new rows start empty")

	err := catch(func() { m.RowSet(42) })
	assert.ErrorIs(t, err, ErrContractViolation)
	assert.ErrorIs(t, catch(func() { m.Contains(42, Value("a")) }), ErrContractViolation)
}

func TestMatrixInsert(t *testing.T) {
	m := newLetterMatrix()

	assert.True(t, m.Insert(0, Value("a")))
	assert.False(t, m.Insert(0, Value("a")))
	assert.True(t, m.Insert(0, At[string](2)))
	assert.True(t, m.Contains(0, Value("c")))
	assert.True(t, m.Remove(0, Value("c")))

	m.ClearRow(0)
	assert.True(t, m.HasRow(0))
	assert.True(t, m.RowSet(0).IsEmpty())
	m.ClearRow(99)
	assert.False(t, m.HasRow(99))
}

func TestMatrixUnionIntoRow(t *testing.T) {
	m := newLetterMatrix()
	s := NewSimdIndexSet(m.RowSet(0).DomainPointer())
	s.Insert(Value("a"))
	s.Insert(Value("c"))

	assert.True(t, m.UnionIntoRow(3, s))
	assert.False(t, m.UnionIntoRow(3, s))
	assert.Equal(t, []string{"a", "c"}, slices.Collect(m.Row(3)))
}

func TestMatrixRowsOrder(t *testing.T) {
	m := newLetterMatrix()
	for _, r := range []int{5, 1, 3} {
		m.EnsureRow(r)
	}
	m.EnsureRow(1)

	var rows []int
	for r := range m.Rows() {
		rows = append(rows, r)
	}
	assert.Equal(t, []int{5, 1, 3}, rows)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.ColDomain().Len())
}

func TestMatrixCloneEqual(t *testing.T) {
	m := newLetterMatrix()
	m.Insert(0, Value("a"))
	m.EnsureRow(1)

	c := m.Clone()
	assert.True(t, m.Equal(c))
	assert.True(t, c.Equal(m))

	c.Insert(0, Value("b"))
	assert.False(t, m.Equal(c))
	assert.Equal(t, []string{"a"}, slices.Collect(m.Row(0)))

	// An empty materialized row equals a missing one.
	n := newLetterMatrix()
	n.Insert(0, Value("a"))
	assert.True(t, m.Equal(n))
	assert.True(t, n.Equal(m))
}

func TestMatrixLogsAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	col := NewPointer(Shared, DomainFrom([]string{"a"}))
	m := NewBitvecIndexMatrix[string](col, WithLogger(logger), WithMetricsCollector(metrics), WithCapacity(4))
	m.Insert("r1", Value("a"))
	m.Insert("r1", Value("a"))
	m.Insert("r2", Value("a"))

	assert.Equal(t, int64(2), metrics.GetStats().RowsMaterialized)
	assert.Contains(t, buf.String(), "matrix row materialized")
	assert.Contains(t, buf.String(), "row=r2")
	assert.Contains(t, buf.String(), "capacity=1")
	assert.Equal(t, 1, m.Capacity())
}

func TestMatrixParallelRows(t *testing.T) {
	col := NewPointer(AtomicShared, DomainFrom([]int{0, 1, 2, 3, 4, 5, 6, 7}))
	m := NewRoaringIndexMatrix[int](col)
	for r := range 100 {
		m.EnsureRow(r)
	}

	var visited atomic.Int64
	err := m.ParallelRows(context.Background(), 4, func(_ context.Context, row int, set *RoaringIndexSet[int]) error {
		set.Insert(At[int](Index(row % 8)))
		visited.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), visited.Load())

	for r, s := range m.Rows() {
		assert.Equal(t, []int{r % 8}, slices.Collect(s.All()))
	}
}

func TestMatrixParallelRowsError(t *testing.T) {
	m := newLetterMatrix()
	for r := range 10 {
		m.EnsureRow(r)
	}
	boom := errors.New("boom")

	err := m.ParallelRows(context.Background(), 2, func(_ context.Context, row int, _ *SimdIndexSet[string]) error {
		if row == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestMatrixParallelRowsCanceled(t *testing.T) {
	m := newLetterMatrix()
	m.EnsureRow(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.ParallelRows(ctx, 1, func(context.Context, int, *SimdIndexSet[string]) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatrixEngines(t *testing.T) {
	col := NewPointer(Shared, DomainFrom([]string{"x", "y"}))

	sparse := NewSparseIndexMatrix[int](col)
	sparse.Insert(1, Value("y"))
	assert.Equal(t, []string{"y"}, slices.Collect(sparse.Row(1)))

	roar := NewRoaringIndexMatrix[int](col)
	roar.Insert(1, Value("x"))
	assert.Equal(t, []string{"x"}, slices.Collect(roar.Row(1)))

	vec := NewBitvecIndexMatrix[int](col)
	vec.Insert(1, Value("x"))
	assert.True(t, vec.Contains(1, Value("x")))
}
