package bitsettest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/indexical/bitset"
	"github.com/hupe1980/indexical/testutil"
)

// Capacities exercised by the randomized checks. They straddle word and
// 256-bit chunk boundaries.
var Capacities = []int{1, 10, 63, 64, 65, 64*4 + 1, 64*7 + 63, 1000}

// Run checks empty against the bit-set contract.
func Run[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	t.Helper()

	t.Run("Basic", func(t *testing.T) { testBasic(t, empty) })
	t.Run("Empty", func(t *testing.T) { testEmpty(t, empty) })
	t.Run("InsertRemove", func(t *testing.T) { testInsertRemove(t, empty) })
	t.Run("ChunkBoundary", func(t *testing.T) { testChunkBoundary(t, empty) })
	t.Run("Invert", func(t *testing.T) { testInvert(t, empty) })
	t.Run("InsertAllClear", func(t *testing.T) { testInsertAllClear(t, empty) })
	t.Run("Changed", func(t *testing.T) { testChanged(t, empty) })
	t.Run("CopyCloneEqual", func(t *testing.T) { testCopyCloneEqual(t, empty) })
	t.Run("Iter", func(t *testing.T) { testIter(t, empty) })
	t.Run("CapacityMismatch", func(t *testing.T) { testCapacityMismatch(t, empty) })
	t.Run("Random", func(t *testing.T) { testRandom(t, empty) })
}

func testBasic[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	bv := empty(10)
	assert.False(t, bv.Contains(0))

	bv.Insert(0)
	bv.Insert(5)
	assert.True(t, bv.Contains(0))
	assert.True(t, bv.Contains(5))
	assert.False(t, bv.Contains(1))
	assert.Equal(t, []int{0, 5}, bitset.Collect(bv))
	assert.Equal(t, 2, bv.Len())

	bv2 := empty(10)
	bv2.Insert(5)
	assert.True(t, bv.Superset(bv2))
	bv2.Insert(1)
	assert.False(t, bv.Superset(bv2))

	bv.Intersect(bv2)
	assert.Equal(t, []int{5}, bitset.Collect(bv))
}

func testEmpty[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	for _, n := range append([]int{0}, Capacities...) {
		s := empty(n)
		assert.Equal(t, n, s.Capacity())
		assert.Zero(t, s.Len(), "capacity %d", n)
		assert.True(t, s.IsEmpty(), "capacity %d", n)
		assert.Empty(t, bitset.Collect(s), "capacity %d", n)
	}
}

func testInsertRemove[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	s := empty(100)

	assert.True(t, s.Insert(42))
	assert.False(t, s.Insert(42), "second insert must be a no-op")
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Insert(43))
	assert.True(t, s.Remove(42))
	assert.False(t, s.Remove(42))
	assert.False(t, s.Contains(42))
	assert.True(t, s.Contains(43), "remove must not touch neighbouring flags")
	assert.Equal(t, []int{43}, bitset.Collect(s))
}

func testChunkBoundary[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	n := 64*4 + 1
	s := empty(n)
	s.Insert(n - 1)

	assert.Equal(t, []int{n - 1}, bitset.Collect(s))
	assert.Equal(t, 1, s.Len())

	edges := []int{0, 63, 64, 127, 128, 255, 256}
	for _, i := range edges {
		s.Insert(i)
	}
	assert.Equal(t, edges, bitset.Collect(s))
}

func testInvert[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	s := empty(10)
	s.Insert(1)
	s.Invert()
	assert.Equal(t, []int{0, 2, 3, 4, 5, 6, 7, 8, 9}, bitset.Collect(s))
	assert.Equal(t, 9, s.Len())

	for _, n := range Capacities {
		s := empty(n)
		s.Invert()
		assert.Equal(t, n, s.Len(), "invert of empty set, capacity %d", n)
		s.Invert()
		assert.True(t, s.IsEmpty(), "double invert, capacity %d", n)
	}
}

func testInsertAllClear[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	for _, n := range Capacities {
		s := empty(n)
		s.InsertAll()
		assert.Equal(t, n, s.Len(), "capacity %d", n)
		assert.True(t, s.Contains(n-1))

		full := empty(n)
		full.Invert()
		assert.True(t, s.Equal(full), "InsertAll must match Invert of empty, capacity %d", n)

		s.Clear()
		assert.True(t, s.IsEmpty())
		assert.Empty(t, bitset.Collect(s))
	}
}

func testChanged[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	a := empty(200)
	b := empty(200)
	b.Insert(3)
	b.Insert(150)

	assert.True(t, a.UnionChanged(b))
	assert.False(t, a.UnionChanged(b))

	a.Insert(7)
	assert.True(t, a.IntersectChanged(b))
	assert.False(t, a.IntersectChanged(b))
	assert.Equal(t, []int{3, 150}, bitset.Collect(a))

	c := empty(200)
	c.Insert(150)
	c.Insert(199)
	assert.True(t, a.SubtractChanged(c))
	assert.False(t, a.SubtractChanged(c))
	assert.Equal(t, []int{3}, bitset.Collect(a))

	a.Subtract(b)
	assert.True(t, a.IsEmpty())
}

func testCopyCloneEqual[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	a := empty(300)
	a.Insert(0)
	a.Insert(299)

	c := a.Clone()
	assert.True(t, a.Equal(c))
	c.Insert(5)
	assert.False(t, a.Equal(c))
	assert.False(t, a.Contains(5), "clone must not share storage")

	d := empty(300)
	d.CopyFrom(c)
	assert.True(t, d.Equal(c))
	assert.Equal(t, []int{0, 5, 299}, bitset.Collect(d))

	assert.False(t, empty(10).Equal(empty(11)))
}

func testIter[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	s := empty(1000)
	for _, i := range []int{999, 2, 500, 64} {
		s.Insert(i)
	}

	seq := s.Iter()
	var first, second []int
	for i := range seq {
		first = append(first, i)
	}
	for i := range seq {
		second = append(second, i)
	}
	assert.Equal(t, []int{2, 64, 500, 999}, first)
	assert.Equal(t, first, second, "sequence must be restartable")

	var stopped []int
	for i := range s.Iter() {
		stopped = append(stopped, i)
		if len(stopped) == 2 {
			break
		}
	}
	assert.Equal(t, []int{2, 64}, stopped)
}

func testCapacityMismatch[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	ops := map[string]func(a, b S){
		"Union":     func(a, b S) { a.Union(b) },
		"Intersect": func(a, b S) { a.Intersect(b) },
		"Subtract":  func(a, b S) { a.Subtract(b) },
		"Superset":  func(a, b S) { a.Superset(b) },
		"CopyFrom":  func(a, b S) { a.CopyFrom(b) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := catch(func() { op(empty(10), empty(20)) })
			require.Error(t, err)
			assert.ErrorIs(t, err, bitset.ErrContractViolation)

			var mismatch *bitset.CapacityMismatchError
			assert.ErrorAs(t, err, &mismatch)
		})
	}
}

func testRandom[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	rng := testutil.NewRNG(4711)

	for _, n := range Capacities {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a, ra := fill(empty, n, rng.Bernoulli(n, 0.3))
			b, rb := fill(empty, n, rng.Bernoulli(n, 0.3))

			require.Equal(t, ra.Sorted(), bitset.Collect(a))
			require.Equal(t, ra.Len(), a.Len())

			// Superset law: a ⊇ b iff a ∪ b == a.
			u := a.Clone()
			u.Union(b)
			assert.Equal(t, u.Equal(a), a.Superset(b))
			assert.True(t, u.Superset(a))
			assert.True(t, u.Superset(b))

			// De Morgan: a \ b == a ∩ ¬b.
			diff := a.Clone()
			diff.Subtract(b)
			nb := b.Clone()
			nb.Invert()
			viaInvert := a.Clone()
			viaInvert.Intersect(nb)
			assert.True(t, diff.Equal(viaInvert))
			assert.Equal(t, rb.Complement(), bitset.Collect(nb))

			for _, i := range bitset.Collect(diff) {
				assert.True(t, ra.Contains(i) && !rb.Contains(i))
			}

			// Cardinality identity.
			inter := a.Clone()
			inter.Intersect(b)
			assert.Equal(t, a.Len()+b.Len(), u.Len()+inter.Len())
		})
	}
}

func fill[S bitset.BitSet[S]](empty bitset.EmptyFunc[S], n int, idx []int) (S, *testutil.Reference) {
	s := empty(n)
	ref := testutil.NewReference(n)
	for _, i := range idx {
		s.Insert(i)
		ref.Insert(i)
	}
	return s, ref
}

// catch runs fn and returns the error it panicked with, if any.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
