package simd

import "math/bits"

// ==============================================================================
// Word kernels
// ==============================================================================
//
// These kernels operate on []uint64 bit arrays. Every mutating kernel also
// reports whether any word of dst changed, which bit-sets use to answer
// *Changed queries without a second popcount pass.

// Kernel function pointers for word operations.
// selectISA swaps in the variant unrolled to the active register width.
var (
	kernelOrWords       = orWords4
	kernelAndWords      = andWords4
	kernelAndNotWords   = andNotWords4
	kernelNotWords      = notWords4
	kernelPopcountWords = popcountWords4
)

// selectISA records the active ISA and installs its kernels.
func selectISA(isa ISA) {
	activeISA = isa

	switch isa {
	case AVX512, SVE2:
		kernelOrWords = orWords8
		kernelAndWords = andWords8
		kernelAndNotWords = andNotWords8
		kernelNotWords = notWords8
		kernelPopcountWords = popcountWords8
	default:
		kernelOrWords = orWords4
		kernelAndWords = andWords4
		kernelAndNotWords = andNotWords4
		kernelNotWords = notWords4
		kernelPopcountWords = popcountWords4
	}
}

// ==============================================================================
// 4-word unrolled implementations (generic, AVX2, NEON)
// ==============================================================================

func orWords4(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		d0, d1, d2, d3 := dst[i], dst[i+1], dst[i+2], dst[i+3]
		s0, s1, s2, s3 := src[i], src[i+1], src[i+2], src[i+3]
		diff |= s0&^d0 | s1&^d1 | s2&^d2 | s3&^d3
		dst[i] = d0 | s0
		dst[i+1] = d1 | s1
		dst[i+2] = d2 | s2
		dst[i+3] = d3 | s3
	}
	for ; i < len(dst); i++ {
		diff |= src[i] &^ dst[i]
		dst[i] |= src[i]
	}
	return diff != 0
}

func andWords4(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		d0, d1, d2, d3 := dst[i], dst[i+1], dst[i+2], dst[i+3]
		s0, s1, s2, s3 := src[i], src[i+1], src[i+2], src[i+3]
		diff |= d0&^s0 | d1&^s1 | d2&^s2 | d3&^s3
		dst[i] = d0 & s0
		dst[i+1] = d1 & s1
		dst[i+2] = d2 & s2
		dst[i+3] = d3 & s3
	}
	for ; i < len(dst); i++ {
		diff |= dst[i] &^ src[i]
		dst[i] &= src[i]
	}
	return diff != 0
}

func andNotWords4(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		d0, d1, d2, d3 := dst[i], dst[i+1], dst[i+2], dst[i+3]
		s0, s1, s2, s3 := src[i], src[i+1], src[i+2], src[i+3]
		diff |= d0&s0 | d1&s1 | d2&s2 | d3&s3
		dst[i] = d0 &^ s0
		dst[i+1] = d1 &^ s1
		dst[i+2] = d2 &^ s2
		dst[i+3] = d3 &^ s3
	}
	for ; i < len(dst); i++ {
		diff |= dst[i] & src[i]
		dst[i] &^= src[i]
	}
	return diff != 0
}

func notWords4(dst []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^dst[i]
		dst[i+1] = ^dst[i+1]
		dst[i+2] = ^dst[i+2]
		dst[i+3] = ^dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^dst[i]
	}
}

func popcountWords4(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

// ==============================================================================
// 8-word unrolled implementations (AVX-512, SVE2)
// ==============================================================================

func orWords8(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+8 <= len(dst); i += 8 {
		d := dst[i : i+8 : i+8]
		s := src[i : i+8 : i+8]
		diff |= s[0]&^d[0] | s[1]&^d[1] | s[2]&^d[2] | s[3]&^d[3] |
			s[4]&^d[4] | s[5]&^d[5] | s[6]&^d[6] | s[7]&^d[7]
		d[0] |= s[0]
		d[1] |= s[1]
		d[2] |= s[2]
		d[3] |= s[3]
		d[4] |= s[4]
		d[5] |= s[5]
		d[6] |= s[6]
		d[7] |= s[7]
	}
	if i < len(dst) && orWords4(dst[i:], src[i:]) {
		diff = 1
	}
	return diff != 0
}

func andWords8(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+8 <= len(dst); i += 8 {
		d := dst[i : i+8 : i+8]
		s := src[i : i+8 : i+8]
		diff |= d[0]&^s[0] | d[1]&^s[1] | d[2]&^s[2] | d[3]&^s[3] |
			d[4]&^s[4] | d[5]&^s[5] | d[6]&^s[6] | d[7]&^s[7]
		d[0] &= s[0]
		d[1] &= s[1]
		d[2] &= s[2]
		d[3] &= s[3]
		d[4] &= s[4]
		d[5] &= s[5]
		d[6] &= s[6]
		d[7] &= s[7]
	}
	if i < len(dst) && andWords4(dst[i:], src[i:]) {
		diff = 1
	}
	return diff != 0
}

func andNotWords8(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+8 <= len(dst); i += 8 {
		d := dst[i : i+8 : i+8]
		s := src[i : i+8 : i+8]
		diff |= d[0]&s[0] | d[1]&s[1] | d[2]&s[2] | d[3]&s[3] |
			d[4]&s[4] | d[5]&s[5] | d[6]&s[6] | d[7]&s[7]
		d[0] &^= s[0]
		d[1] &^= s[1]
		d[2] &^= s[2]
		d[3] &^= s[3]
		d[4] &^= s[4]
		d[5] &^= s[5]
		d[6] &^= s[6]
		d[7] &^= s[7]
	}
	if i < len(dst) && andNotWords4(dst[i:], src[i:]) {
		diff = 1
	}
	return diff != 0
}

func notWords8(dst []uint64) {
	i := 0
	for ; i+8 <= len(dst); i += 8 {
		d := dst[i : i+8 : i+8]
		d[0], d[1], d[2], d[3] = ^d[0], ^d[1], ^d[2], ^d[3]
		d[4], d[5], d[6], d[7] = ^d[4], ^d[5], ^d[6], ^d[7]
	}
	notWords4(dst[i:])
}

func popcountWords8(words []uint64) int {
	count := 0
	i := 0
	for ; i+8 <= len(words); i += 8 {
		w := words[i : i+8 : i+8]
		count += bits.OnesCount64(w[0]) + bits.OnesCount64(w[1]) +
			bits.OnesCount64(w[2]) + bits.OnesCount64(w[3]) +
			bits.OnesCount64(w[4]) + bits.OnesCount64(w[5]) +
			bits.OnesCount64(w[6]) + bits.OnesCount64(w[7])
	}
	return count + popcountWords4(words[i:])
}
