package simdset

import "github.com/hupe1980/indexical/internal/simd"

// Iterator walks the set flags of a Bitset in ascending order.
//
// The cursor holds the bit offset of the current lane and a working copy of
// that lane with already-yielded bits cleared. An exhausted lane advances to
// the next one; crossing into a new chunk skips whole chunks of zeros.
//
// Mutating the set while iterating yields unspecified (but memory safe)
// results.
type Iterator[L simd.Lane] struct {
	set *Bitset[L]

	// index is the bit offset of bit 0 of the current lane.
	index int

	// slot is the buffer position of the current lane.
	slot int

	// lane is the current lane with consumed bits cleared.
	lane L
}

func newIterator[L simd.Lane](set *Bitset[L]) *Iterator[L] {
	// Start one lane before the buffer so the first advance lands on
	// chunk 0 and gets the zero-chunk skip.
	return &Iterator[L]{
		set:   set,
		index: -simd.LaneBits[L](),
		slot:  -1,
	}
}

// Next returns the next set flag, or false when the iteration is done.
func (it *Iterator[L]) Next() (int, bool) {
	b := it.set
	if it.index >= b.nbits {
		return 0, false
	}

	laneBits := simd.LaneBits[L]()
	for it.lane == 0 {
		it.slot++
		it.index += laneBits

		if b.width > 0 && it.slot%b.width == 0 {
			chunkBits := b.chunkBits()
			for it.slot < len(b.lanes) && simd.IsZero(b.lanes[it.slot:it.slot+b.width]) {
				it.slot += b.width
				it.index += chunkBits
			}
		}

		if it.slot >= len(b.lanes) || it.index >= b.nbits {
			it.finish()
			return 0, false
		}
		it.lane = b.lanes[it.slot]
	}

	bit := simd.TrailingZeros(it.lane)
	it.lane &^= L(1) << uint(bit)

	i := it.index + bit
	if i >= b.nbits {
		it.finish()
		return 0, false
	}
	return i, true
}

// finish parks the cursor past the end.
func (it *Iterator[L]) finish() {
	it.index = it.set.nbits
	it.slot = len(it.set.lanes)
	it.lane = 0
}
