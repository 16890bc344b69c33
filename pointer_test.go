package indexical

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plain struct{ n int }

func TestPointerShared(t *testing.T) {
	d := DomainFrom([]string{"a"})
	p := NewPointer(Shared, d)
	assert.Equal(t, 1, p.Refs())

	q := p.Clone()
	assert.True(t, p.Same(q))
	assert.Equal(t, 2, p.Refs())
	assert.Equal(t, 2, q.Refs())

	assert.False(t, q.Release())
	assert.Equal(t, 1, p.Refs())
	assert.Zero(t, q.Refs())
	assert.True(t, p.Release())
}

func TestPointerAtomicShared(t *testing.T) {
	p := NewPointer(AtomicShared, &plain{n: 1})

	var wg sync.WaitGroup
	clones := make([]Pointer[plain], 64)
	for i := range clones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clones[i] = p.Clone()
		}()
	}
	wg.Wait()
	assert.Equal(t, 65, p.Refs())

	for i := range clones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clones[i].Release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, p.Refs())
	assert.True(t, p.Release())
}

func TestPointerUnique(t *testing.T) {
	d := DomainFrom([]string{"a"})
	p := NewPointer(Unique, d)

	q := p.Clone()
	assert.False(t, p.Same(q), "unique clone deep-copies")
	q.Get().Insert("b")
	assert.Equal(t, 1, p.Get().Len())
	assert.Equal(t, 1, q.Refs())

	u := NewPointer(Unique, &plain{})
	err := catch(func() { u.Clone() })
	assert.ErrorIs(t, err, ErrNotCloneable)
}

func TestPointerBorrowed(t *testing.T) {
	v := &plain{n: 7}
	p := Borrow(v)

	q := p.Clone()
	assert.True(t, p.Same(q))
	assert.Zero(t, p.Refs())
	assert.Equal(t, Borrowed, q.Family())
	assert.False(t, q.Release())
	assert.Equal(t, 7, p.Get().n)
}

func TestPointerReleased(t *testing.T) {
	p := NewPointer(Shared, &plain{})
	require.True(t, p.Release())

	assert.ErrorIs(t, catch(func() { p.Get() }), ErrReleased)
	assert.ErrorIs(t, catch(func() { p.Release() }), ErrReleased)

	var zero Pointer[plain]
	assert.ErrorIs(t, catch(func() { zero.Get() }), ErrReleased)
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "unique", Unique.String())
	assert.Equal(t, "shared", Shared.String())
	assert.Equal(t, "atomic-shared", AtomicShared.String())
	assert.Equal(t, "borrowed", Borrowed.String())
	assert.Equal(t, "Family(9)", Family(9).String())
	assert.Panics(t, func() { NewPointer(Family(9), &plain{}) })
}
