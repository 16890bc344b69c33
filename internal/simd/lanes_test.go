package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaneBits(t *testing.T) {
	assert.Equal(t, 8, LaneBits[uint8]())
	assert.Equal(t, 16, LaneBits[uint16]())
	assert.Equal(t, 32, LaneBits[uint32]())
	assert.Equal(t, 64, LaneBits[uint64]())
}

func TestLaneOps_Narrow(t *testing.T) {
	dst := []uint8{0b0000_1111, 0}
	src := []uint8{0b1111_0000, 0}

	assert.True(t, Or(dst, src))
	assert.Equal(t, []uint8{0xFF, 0}, dst)
	assert.False(t, Or(dst, src))

	assert.True(t, And(dst, []uint8{0x0F, 0xFF}))
	assert.Equal(t, []uint8{0x0F, 0}, dst)

	assert.True(t, AndNot(dst, []uint8{0x01, 0}))
	assert.Equal(t, []uint8{0x0E, 0}, dst)
	assert.False(t, AndNot(dst, []uint8{0x01, 0}))

	Not(dst)
	assert.Equal(t, []uint8{0xF1, 0xFF}, dst)
	assert.Equal(t, 13, Popcount(dst))
}

func TestLaneOps_Wide(t *testing.T) {
	dst := []uint64{1, 0, 0, 0, 0}
	src := []uint64{0, 0, 0, 0, 1 << 63}

	assert.True(t, Or(dst, src))
	assert.Equal(t, 2, Popcount(dst))
	assert.False(t, IsZero(dst))

	Fill(dst, 0)
	assert.True(t, IsZero(dst))
}

func TestTrailingZeros(t *testing.T) {
	assert.Equal(t, 8, TrailingZeros[uint8](0))
	assert.Equal(t, 3, TrailingZeros[uint8](0b1000))
	assert.Equal(t, 64, TrailingZeros[uint64](0))
	assert.Equal(t, 63, TrailingZeros[uint64](1<<63))
	assert.Equal(t, 2, OnesCount[uint16](0b101))
}

func TestLowMask(t *testing.T) {
	assert.Equal(t, uint8(0), LowMask[uint8](0))
	assert.Equal(t, uint8(0b111), LowMask[uint8](3))
	assert.Equal(t, uint8(0xFF), LowMask[uint8](8))
	assert.Equal(t, ^uint64(0), LowMask[uint64](64))
}

func TestPreferredLanes(t *testing.T) {
	n := PreferredLanes(64)
	assert.GreaterOrEqual(t, n, 2)
	assert.Equal(t, ActiveISA().RegisterBits()/8, PreferredLanes(8))
	assert.Equal(t, 1, PreferredLanes(0))
}
