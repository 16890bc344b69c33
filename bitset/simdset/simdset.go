package simdset

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hupe1980/indexical/bitset"
	"github.com/hupe1980/indexical/internal/simd"
)

// DefaultLanes is the chunk width used by New: four 64-bit lanes, one
// 256-bit register.
const DefaultLanes = 4

// Compile time check to ensure Bitset satisfies the bit-set contract.
var _ bitset.BitSet[*Bitset[uint64]] = (*Bitset[uint64])(nil)

// Bitset is a dense bit-set with SIMD-friendly chunked storage.
//
// The zero value is an empty set of capacity 0.
type Bitset[L simd.Lane] struct {
	// lanes is the backing buffer. Chunk c, lane l is lanes[c*width+l].
	lanes []L

	// width is the number of lanes per chunk.
	width int

	// nbits is the capacity in flags.
	nbits int
}

// New creates an empty set of nbits flags with DefaultLanes uint64 lanes per chunk.
func New(nbits int) *Bitset[uint64] {
	return NewWithLanes[uint64](nbits, DefaultLanes)
}

// NewNative creates an empty set whose chunks match the register width of
// the active SIMD ISA.
func NewNative(nbits int) *Bitset[uint64] {
	return NewWithLanes[uint64](nbits, simd.PreferredLanes(64))
}

// NewWithLanes creates an empty set of nbits flags, with width lanes of
// type L per chunk.
func NewWithLanes[L simd.Lane](nbits, width int) *Bitset[L] {
	if nbits < 0 || width < 1 {
		panic(fmt.Errorf("%w: invalid layout nbits=%d lanes=%d", bitset.ErrContractViolation, nbits, width))
	}
	chunkBits := width * simd.LaneBits[L]()
	chunks := (nbits + chunkBits - 1) / chunkBits
	return &Bitset[L]{
		lanes: make([]L, chunks*width),
		width: width,
		nbits: nbits,
	}
}

// Empty returns a constructor for sets with width lanes of type L per chunk.
func Empty[L simd.Lane](width int) bitset.EmptyFunc[*Bitset[L]] {
	return func(nbits int) *Bitset[L] {
		return NewWithLanes[L](nbits, width)
	}
}

// chunkBits returns the number of flags per chunk.
func (b *Bitset[L]) chunkBits() int {
	return b.width * simd.LaneBits[L]()
}

// coords splits index into (chunk, lane, bit) coordinates.
func (b *Bitset[L]) coords(index int) (chunk, lane, bit int) {
	laneBits := simd.LaneBits[L]()
	chunkBits := b.width * laneBits
	chunk, index = index/chunkBits, index%chunkBits
	lane, bit = index/laneBits, index%laneBits
	return chunk, lane, bit
}

// slot returns the buffer position of the lane holding index, together with
// the bit offset inside that lane.
func (b *Bitset[L]) slot(index int) (int, L) {
	if debugChecks {
		bitset.MustContain(index, b.nbits)
	}
	chunk, lane, bit := b.coords(index)
	return chunk*b.width + lane, L(1) << uint(bit)
}

// mustMatch panics unless other shares capacity and chunk layout.
func (b *Bitset[L]) mustMatch(other *Bitset[L]) {
	bitset.MustMatch(b, other)
	if b.width != other.width {
		panic(fmt.Errorf("%w: chunk layout mismatch: %d != %d lanes", bitset.ErrContractViolation, b.width, other.width))
	}
}

// maskTail clears the bits at or beyond nbits in the final chunk.
func (b *Bitset[L]) maskTail() {
	if len(b.lanes) == 0 {
		return
	}
	laneBits := simd.LaneBits[L]()
	if b.nbits == 0 {
		simd.Fill(b.lanes, 0)
		return
	}
	last := (b.nbits - 1) / laneBits
	b.lanes[last] &= simd.LowMask[L](b.nbits - last*laneBits)
	simd.Fill(b.lanes[last+1:], 0)
}

// Capacity returns the number of addressable flags.
func (b *Bitset[L]) Capacity() int {
	return b.nbits
}

// Chunks returns the number of chunks in the buffer.
func (b *Bitset[L]) Chunks() int {
	if b.width == 0 {
		return 0
	}
	return len(b.lanes) / b.width
}

// Lanes returns the number of lanes per chunk.
func (b *Bitset[L]) Lanes() int {
	return b.width
}

// LaneBits returns the bit width of one lane.
func (b *Bitset[L]) LaneBits() int {
	return simd.LaneBits[L]()
}

// Chunk returns the lanes of chunk c. The slice aliases the set's storage.
func (b *Bitset[L]) Chunk(c int) []L {
	return b.lanes[c*b.width : (c+1)*b.width : (c+1)*b.width]
}

// Insert sets flag index, returning true if it was previously clear.
// Requires 0 <= index < Capacity(); any other index, negative ones
// included, gives an undefined result unless built with -tags indexicaldebug.
func (b *Bitset[L]) Insert(index int) bool {
	s, mask := b.slot(index)
	lane := b.lanes[s]
	b.lanes[s] = lane | mask
	return lane&mask == 0
}

// Remove clears flag index, returning true if it was previously set.
// Requires 0 <= index < Capacity(); any other index, negative ones
// included, gives an undefined result unless built with -tags indexicaldebug.
func (b *Bitset[L]) Remove(index int) bool {
	s, mask := b.slot(index)
	lane := b.lanes[s]
	b.lanes[s] = lane &^ mask
	return lane&mask != 0
}

// Contains reports whether flag index is set.
// Requires 0 <= index < Capacity(); any other index, negative ones
// included, gives an undefined result unless built with -tags indexicaldebug.
func (b *Bitset[L]) Contains(index int) bool {
	s, mask := b.slot(index)
	return b.lanes[s]&mask != 0
}

// Cursor returns a new iterator positioned before the first set flag.
func (b *Bitset[L]) Cursor() *Iterator[L] {
	return newIterator(b)
}

// Iter returns the set flags in ascending order.
func (b *Bitset[L]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := newIterator(b)
		for {
			i, ok := it.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

// Len returns the number of set flags. O(lanes).
func (b *Bitset[L]) Len() int {
	return simd.Popcount(b.lanes)
}

// IsEmpty reports whether no flag is set.
func (b *Bitset[L]) IsEmpty() bool {
	return simd.IsZero(b.lanes)
}

// Union sets every flag set in other.
func (b *Bitset[L]) Union(other *Bitset[L]) {
	b.mustMatch(other)
	simd.Or(b.lanes, other.lanes)
}

// UnionChanged is Union, reporting whether b changed.
func (b *Bitset[L]) UnionChanged(other *Bitset[L]) bool {
	b.mustMatch(other)
	return simd.Or(b.lanes, other.lanes)
}

// Intersect clears every flag not set in other.
func (b *Bitset[L]) Intersect(other *Bitset[L]) {
	b.mustMatch(other)
	simd.And(b.lanes, other.lanes)
}

// IntersectChanged is Intersect, reporting whether b changed.
func (b *Bitset[L]) IntersectChanged(other *Bitset[L]) bool {
	b.mustMatch(other)
	return simd.And(b.lanes, other.lanes)
}

// Subtract clears every flag set in other, computed as b ∩ ¬other.
func (b *Bitset[L]) Subtract(other *Bitset[L]) {
	b.mustMatch(other)
	bitset.SubtractViaInvert(b, other)
}

// SubtractChanged is Subtract, reporting whether b changed.
func (b *Bitset[L]) SubtractChanged(other *Bitset[L]) bool {
	b.mustMatch(other)
	return simd.AndNot(b.lanes, other.lanes)
}

// Invert flips every flag in [0, Capacity()).
func (b *Bitset[L]) Invert() {
	simd.Not(b.lanes)
	b.maskTail()
}

// Clear clears every flag.
func (b *Bitset[L]) Clear() {
	simd.Fill(b.lanes, 0)
}

// InsertAll sets every flag in [0, Capacity()).
func (b *Bitset[L]) InsertAll() {
	simd.Fill(b.lanes, ^L(0))
	b.maskTail()
}

// Superset reports whether every flag set in other is set in b.
func (b *Bitset[L]) Superset(other *Bitset[L]) bool {
	b.mustMatch(other)
	for i, lane := range other.lanes {
		if lane&^b.lanes[i] != 0 {
			return false
		}
	}
	return true
}

// CopyFrom overwrites b with the contents of other.
func (b *Bitset[L]) CopyFrom(other *Bitset[L]) {
	b.mustMatch(other)
	copy(b.lanes, other.lanes)
}

// Clone returns an independent copy of b.
func (b *Bitset[L]) Clone() *Bitset[L] {
	return &Bitset[L]{
		lanes: slices.Clone(b.lanes),
		width: b.width,
		nbits: b.nbits,
	}
}

// Equal reports whether b and other have the same layout and flags.
func (b *Bitset[L]) Equal(other *Bitset[L]) bool {
	return b.nbits == other.nbits && b.width == other.width && slices.Equal(b.lanes, other.lanes)
}

// String renders the set flags, e.g. "{0, 5}".
func (b *Bitset[L]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i := range b.Iter() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", i)
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
