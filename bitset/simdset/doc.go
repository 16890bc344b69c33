// Package simdset implements a dense bit-set whose flags are packed into
// vector-register sized chunks of unsigned integer lanes.
//
// # Layout
//
// The nbits flags live in one flat buffer of lanes. Lanes are grouped into
// chunks of Lanes() lanes, one vector register worth of bits:
//
//	┌──────────────── chunk 0 ────────────────┬──────── chunk 1 ───────
//	│ lane 0 │ lane 1 │ lane 2 │ lane 3       │ lane 0 │ lane 1 │ ...
//	│ [0,64) │[64,128)│        │              │[256,..)│        │
//	└─────────────────────────────────────────┴────────────────────────
//
// Bit i sits in chunk i/(N·W), lane (i/W) mod N, bit i mod W for N lanes of
// W bits. Pairwise operations run the internal/simd kernels over the whole
// buffer; iteration skips all-zero lanes and chunks without testing bits.
//
// # Preconditions
//
// Element access (Insert, Remove, Contains) trusts the caller to pass
// 0 <= i < Capacity(); negative indices are as undefined as indices past
// the end. The checks are compiled in only with -tags indexicaldebug. Pairwise operations always verify that both sets
// share capacity and chunk layout and panic otherwise.
//
// The engine never sets bits at or beyond Capacity(): Invert and InsertAll
// mask the trailing bits of the final chunk.
package simdset
