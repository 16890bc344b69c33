package indexical

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/indexical/bitset"
	"github.com/hupe1980/indexical/bitset/bitvec"
	"github.com/hupe1980/indexical/bitset/roaringset"
	"github.com/hupe1980/indexical/bitset/simdset"
	"github.com/hupe1980/indexical/bitset/sparseset"
)

func TestIndexSet(t *testing.T) {
	t.Run("simd", func(t *testing.T) { testIndexSet[*simdset.Bitset[uint64]](t, simdset.New) })
	t.Run("simd-native", func(t *testing.T) { testIndexSet[*simdset.Bitset[uint64]](t, simdset.NewNative) })
	t.Run("simd-uint8", func(t *testing.T) { testIndexSet(t, simdset.Empty[uint8](32)) })
	t.Run("bitvec", func(t *testing.T) { testIndexSet[*bitvec.Set](t, bitvec.New) })
	t.Run("roaring", func(t *testing.T) { testIndexSet[*roaringset.Set](t, roaringset.New) })
	t.Run("sparse", func(t *testing.T) { testIndexSet[*sparseset.Set](t, sparseset.New) })
}

func testIndexSet[S bitset.BitSet[S]](t *testing.T, empty bitset.EmptyFunc[S]) {
	letters := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	domain := NewPointer(Shared, DomainFrom(letters))

	t.Run("ValueAndIndex", func(t *testing.T) {
		s := NewIndexSet(domain, empty)
		assert.True(t, s.Insert(Value("a")))
		assert.True(t, s.Insert(At[string](5)))
		assert.False(t, s.Insert(Value("f")), "f is index 5")

		assert.True(t, s.Contains(Value("a")))
		assert.True(t, s.Contains(At[string](0)))
		assert.False(t, s.Contains(Value("b")))
		assert.False(t, s.Contains(Value("zzz")), "unknown value is absent")

		assert.Equal(t, []string{"a", "f"}, slices.Collect(s.All()))
		assert.Equal(t, []Index{0, 5}, slices.Collect(s.Indices()))
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, "{a, f}", s.String())

		assert.True(t, s.Remove(Value("a")))
		assert.False(t, s.Remove(Value("a")))
		assert.Equal(t, []string{"f"}, slices.Collect(s.All()))
	})

	t.Run("Superset", func(t *testing.T) {
		a := NewIndexSet(domain, empty)
		a.Insert(Value("a"))
		a.Insert(Value("f"))
		b := NewIndexSet(domain, empty)
		b.Insert(Value("f"))
		assert.True(t, a.IsSuperset(b))
		b.Insert(Value("b"))
		assert.False(t, a.IsSuperset(b))

		a.Intersect(b)
		assert.Equal(t, []string{"f"}, slices.Collect(a.All()))
	})

	t.Run("InvertAfterSubtract", func(t *testing.T) {
		a := NewIndexSet(domain, empty)
		a.Insert(At[string](0))
		a.Insert(At[string](1))
		b := NewIndexSet(domain, empty)
		b.Insert(At[string](0))

		a.Subtract(b)
		require.Equal(t, []Index{1}, slices.Collect(a.Indices()))

		a.Invert()
		assert.Equal(t, []Index{0, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(a.Indices()))
	})

	t.Run("Changed", func(t *testing.T) {
		a := NewIndexSet(domain, empty)
		b := NewIndexSet(domain, empty)
		b.Insert(Value("c"))

		assert.True(t, a.UnionChanged(b))
		assert.False(t, a.UnionChanged(b))
		assert.False(t, a.IntersectChanged(b))
		assert.True(t, a.SubtractChanged(b))
		assert.True(t, a.IsEmpty())

		a.InsertAll()
		assert.Equal(t, 10, a.Len())
		a.Union(b)
		a.Clear()
		assert.True(t, a.IsEmpty())
	})

	t.Run("CloneCopyEqual", func(t *testing.T) {
		a := NewIndexSet(domain, empty)
		a.Insert(Value("j"))

		c := a.Clone()
		assert.True(t, a.Equal(c))
		assert.True(t, c.DomainPointer().Same(domain))
		c.Insert(Value("a"))
		assert.False(t, a.Equal(c))
		assert.False(t, a.Contains(Value("a")))

		a.CopyFrom(c)
		assert.True(t, a.Equal(c))
		assert.Same(t, domain.Get(), a.Domain())
		assert.Equal(t, 2, a.Bits().Len())
	})

	t.Run("Enumerate", func(t *testing.T) {
		s := NewIndexSet(domain, empty)
		s.Insert(Value("c"))
		s.Insert(Value("h"))

		var got []string
		for i, v := range s.Enumerate() {
			assert.Equal(t, domain.Get().Value(i), v)
			got = append(got, v)
		}
		assert.Equal(t, []string{"c", "h"}, got)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		s := NewIndexSet(domain, empty)
		err := catch(func() { s.Insert(At[string](10)) })

		var oor *IndexOutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, 10, oor.Index)
		assert.Equal(t, 10, oor.Capacity)
		assert.ErrorIs(t, err, ErrContractViolation)

		assert.Panics(t, func() { s.Contains(At[string](-1)) })
		assert.ErrorIs(t, catch(func() { s.Insert(Value("zzz")) }), ErrValueNotFound)
	})

	t.Run("CapacityMismatch", func(t *testing.T) {
		small := NewPointer(Shared, DomainFrom([]string{"a"}))
		a := NewIndexSet(domain, empty)
		b := NewIndexSet(small, empty)

		var mismatch *CapacityMismatchError
		assert.ErrorAs(t, catch(func() { a.Union(b) }), &mismatch)
	})

	t.Run("DomainMismatch", func(t *testing.T) {
		twin := NewPointer(Shared, DomainFrom(letters))
		a := NewIndexSet(domain, empty)
		b := NewIndexSet(twin, empty)
		b.Insert(Value("c"))

		for name, op := range map[string]func(){
			"Union":        func() { a.Union(b) },
			"UnionChanged": func() { a.UnionChanged(b) },
			"Intersect":    func() { a.Intersect(b) },
			"Subtract":     func() { a.Subtract(b) },
			"IsSuperset":   func() { a.IsSuperset(b) },
			"CopyFrom":     func() { a.CopyFrom(b) },
		} {
			assert.ErrorIs(t, catch(op), ErrDomainMismatch, name)
		}
		assert.True(t, a.IsEmpty())

		view := NewIndexSet(Borrow(domain.Get()), empty)
		view.Insert(Value("c"))
		assert.True(t, a.UnionChanged(view), "borrowed view of the same domain")
	})
}

func TestIndexSetFrozenCapacity(t *testing.T) {
	d := DomainFrom([]string{"a", "b"})
	s := NewSimdIndexSet(NewPointer(Shared, d))
	s.Insert(Value("a"))

	c := d.Insert("c")
	assert.True(t, s.Stale())
	assert.Equal(t, 2, s.Capacity())
	assert.False(t, s.Contains(Value("c")), "index past the frozen capacity is absent")

	err := catch(func() { s.Insert(At[string](c)) })
	var stale *StaleSetError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, c, stale.Index)
	assert.Equal(t, 2, stale.Capacity)
	assert.Equal(t, 3, stale.Domain)
	assert.ErrorIs(t, err, ErrContractViolation)

	fresh := NewSimdIndexSet(NewPointer(Shared, d))
	assert.True(t, fresh.Insert(Value("c")))
	assert.False(t, fresh.Stale())
}

func TestIndexSetUniqueDomain(t *testing.T) {
	p := NewPointer(Unique, DomainFrom([]int{10, 20, 30}))
	s := NewBitvecIndexSet(p)
	s.Insert(Value(20))

	c := s.Clone()
	assert.False(t, c.DomainPointer().Same(p))
	assert.Equal(t, []int{20}, slices.Collect(c.All()))
	assert.True(t, s.Equal(c))

	c.Insert(Value(30))
	assert.True(t, s.UnionChanged(c), "unique copies combine by capacity")
	assert.Equal(t, []int{20, 30}, slices.Collect(s.All()))
}

func TestIndexSetRelease(t *testing.T) {
	p := NewPointer(Shared, DomainFrom([]int{1}))
	s := NewRoaringIndexSet(p.Clone())
	assert.Equal(t, 2, p.Refs())

	assert.False(t, s.Release())
	assert.Equal(t, 1, p.Refs())
	assert.ErrorIs(t, catch(func() { s.Domain() }), ErrReleased)
}

func TestIndexSetEngines(t *testing.T) {
	values := make([]int, 1000)
	for i := range values {
		values[i] = i * 7
	}
	p := NewPointer(AtomicShared, DomainFrom(values))

	simd := NewSimdIndexSet(p)
	native := NewNativeSimdIndexSet(p)
	vec := NewBitvecIndexSet(p)
	roar := NewRoaringIndexSet(p)
	sparse := NewSparseIndexSet(p)

	for i := 0; i < 1000; i += 13 {
		simd.Insert(At[int](Index(i)))
		native.Insert(At[int](Index(i)))
		vec.Insert(At[int](Index(i)))
		roar.Insert(At[int](Index(i)))
		sparse.Insert(At[int](Index(i)))
	}

	want := slices.Collect(simd.All())
	assert.Equal(t, want, slices.Collect(native.All()))
	assert.Equal(t, want, slices.Collect(vec.All()))
	assert.Equal(t, want, slices.Collect(roar.All()))
	assert.Equal(t, want, slices.Collect(sparse.All()))
	assert.Len(t, want, 77)
}
