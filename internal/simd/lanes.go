package simd

import (
	"math/bits"
	"unsafe"
)

// Lane is the set of unsigned integer types that can fill a vector lane.
type Lane interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// LaneBits returns the bit width of L.
func LaneBits[L Lane]() int {
	var zero L
	return int(unsafe.Sizeof(zero)) * 8
}

// asWords reinterprets a 64-bit lane slice as []uint64 so it can use the
// word kernels. Narrower lanes report false.
func asWords[L Lane](s []L) ([]uint64, bool) {
	var zero L
	if unsafe.Sizeof(zero) != 8 {
		return nil, false
	}
	if len(s) == 0 {
		return nil, true
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(s))), len(s)), true
}

// Or performs dst[i] |= src[i] and reports whether dst changed.
func Or[L Lane](dst, src []L) bool {
	if d, ok := asWords(dst); ok {
		s, _ := asWords(src)
		return kernelOrWords(d, s)
	}
	src = src[:len(dst)]
	var diff L
	for i := range dst {
		diff |= src[i] &^ dst[i]
		dst[i] |= src[i]
	}
	return diff != 0
}

// And performs dst[i] &= src[i] and reports whether dst changed.
func And[L Lane](dst, src []L) bool {
	if d, ok := asWords(dst); ok {
		s, _ := asWords(src)
		return kernelAndWords(d, s)
	}
	src = src[:len(dst)]
	var diff L
	for i := range dst {
		diff |= dst[i] &^ src[i]
		dst[i] &= src[i]
	}
	return diff != 0
}

// AndNot performs dst[i] &^= src[i] and reports whether dst changed.
func AndNot[L Lane](dst, src []L) bool {
	if d, ok := asWords(dst); ok {
		s, _ := asWords(src)
		return kernelAndNotWords(d, s)
	}
	src = src[:len(dst)]
	var diff L
	for i := range dst {
		diff |= dst[i] & src[i]
		dst[i] &^= src[i]
	}
	return diff != 0
}

// Not flips every bit of dst.
func Not[L Lane](dst []L) {
	if d, ok := asWords(dst); ok {
		kernelNotWords(d)
		return
	}
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

// Fill assigns v to every lane of dst.
func Fill[L Lane](dst []L, v L) {
	for i := range dst {
		dst[i] = v
	}
}

// Popcount counts the set bits across all lanes.
func Popcount[L Lane](src []L) int {
	if w, ok := asWords(src); ok {
		return kernelPopcountWords(w)
	}
	count := 0
	for _, v := range src {
		count += bits.OnesCount64(uint64(v))
	}
	return count
}

// IsZero reports whether every lane of src is zero.
func IsZero[L Lane](src []L) bool {
	var acc L
	for _, v := range src {
		acc |= v
	}
	return acc == 0
}

// TrailingZeros returns the number of trailing zero bits in v, or the lane
// width if v is zero.
func TrailingZeros[L Lane](v L) int {
	if v == 0 {
		return LaneBits[L]()
	}
	return bits.TrailingZeros64(uint64(v))
}

// OnesCount returns the number of set bits in v.
func OnesCount[L Lane](v L) int {
	return bits.OnesCount64(uint64(v))
}

// LowMask returns a lane with the low n bits set. n may equal the lane width.
func LowMask[L Lane](n int) L {
	if n >= LaneBits[L]() {
		return ^L(0)
	}
	return L(1)<<uint(n) - 1
}
