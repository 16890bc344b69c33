package sparseset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/indexical/bitset"
	"github.com/hupe1980/indexical/bitset/bitsettest"
)

func TestContract(t *testing.T) {
	bitsettest.Run[*Set](t, New)
}

func TestString(t *testing.T) {
	s := New(10)
	s.Insert(0)
	s.Insert(5)
	assert.Equal(t, "{0 5}", s.String())
}

func TestSparseCapacity(t *testing.T) {
	s := New(1 << 30)
	s.Insert(3)
	s.Insert(1<<30 - 1)

	assert.Equal(t, []int{3, 1<<30 - 1}, bitset.Collect(s))
}
