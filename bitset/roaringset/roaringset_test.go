package roaringset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/indexical/bitset"
	"github.com/hupe1980/indexical/bitset/bitsettest"
)

func TestContract(t *testing.T) {
	bitsettest.Run[*Set](t, New)
}

func TestRunOptimize(t *testing.T) {
	s := New(1 << 20)
	for i := range 1 << 16 {
		s.Insert(i)
	}
	before := s.GetSizeInBytes()
	s.RunOptimize()

	assert.Less(t, s.GetSizeInBytes(), before)
	assert.Equal(t, 1<<16, s.Len())
}

func TestInvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { New(-1) })
}

func TestNegativeIndexPanics(t *testing.T) {
	s := New(10)
	assert.Panics(t, func() { s.Insert(-1) })
	assert.Equal(t, []int{}, bitset.Collect(s))
}
