// Package simd provides lane-wise bit kernels for the dense bit-set engine.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects the kernel
// variant unrolled to the register width of the active ISA. Set
// INDEXICAL_SIMD=generic|neon|sve2|avx2|avx512 to force a specific variant.
//
// # Operations
//
//   - Boolean: Or, And, AndNot, Not, Fill (with change reporting)
//   - Counting: Popcount, OnesCount, TrailingZeros
//   - Layout: LaneBits, LowMask, PreferredLanes
//
// Kernels over 64-bit lanes share the []uint64 word kernels; narrower lanes
// use a plain loop.
package simd
