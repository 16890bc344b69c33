package simd

import (
	"math/bits"
	"math/rand"
	"testing"
)

type wordKernel struct {
	name string
	or   func(dst, src []uint64) bool
	and  func(dst, src []uint64) bool
	not  func(dst, src []uint64) bool
	inv  func(dst []uint64)
	pop  func([]uint64) int
}

var wordKernels = []wordKernel{
	{"unrolled4", orWords4, andWords4, andNotWords4, notWords4, popcountWords4},
	{"unrolled8", orWords8, andWords8, andNotWords8, notWords8, popcountWords8},
}

func TestOrWords(t *testing.T) {
	tests := []struct {
		name        string
		dst, src    []uint64
		want        []uint64
		wantChanged bool
	}{
		{"Empty", []uint64{}, []uint64{}, []uint64{}, false},
		{"Single word", []uint64{0xF0}, []uint64{0x0F}, []uint64{0xFF}, true},
		{"Subset adds nothing", []uint64{0xFF, 0x01}, []uint64{0x0F, 0x01}, []uint64{0xFF, 0x01}, false},
		{"5 words (unroll + tail)", []uint64{0, 0, 0, 0, 0}, []uint64{0, 0, 0, 0, 1}, []uint64{0, 0, 0, 0, 1}, true},
		{"9 words (wide unroll + tail)", make([]uint64, 9), []uint64{0, 0, 0, 0, 0, 0, 0, 0, 2}, []uint64{0, 0, 0, 0, 0, 0, 0, 0, 2}, true},
	}

	for _, k := range wordKernels {
		for _, tt := range tests {
			t.Run(k.name+"/"+tt.name, func(t *testing.T) {
				dst := append([]uint64(nil), tt.dst...)
				changed := k.or(dst, tt.src)
				if changed != tt.wantChanged {
					t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
				}
				for i := range dst {
					if dst[i] != tt.want[i] {
						t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], tt.want[i])
					}
				}
			})
		}
	}
}

func TestAndWords(t *testing.T) {
	tests := []struct {
		name        string
		dst, src    []uint64
		want        []uint64
		wantChanged bool
	}{
		{"Empty", []uint64{}, []uint64{}, []uint64{}, false},
		{"Single word", []uint64{0xFF00FF00FF00FF00}, []uint64{0x0F0F0F0F0F0F0F0F}, []uint64{0x0F000F000F000F00}, true},
		{"Identity", []uint64{0x1234, 0x5678}, []uint64{^uint64(0), ^uint64(0)}, []uint64{0x1234, 0x5678}, false},
		{"All ones AND zeros", []uint64{^uint64(0), ^uint64(0)}, []uint64{0, 0}, []uint64{0, 0}, true},
	}

	for _, k := range wordKernels {
		for _, tt := range tests {
			t.Run(k.name+"/"+tt.name, func(t *testing.T) {
				dst := append([]uint64(nil), tt.dst...)
				if changed := k.and(dst, tt.src); changed != tt.wantChanged {
					t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
				}
				for i := range dst {
					if dst[i] != tt.want[i] {
						t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], tt.want[i])
					}
				}
			})
		}
	}
}

func TestAndNotWords(t *testing.T) {
	for _, k := range wordKernels {
		t.Run(k.name, func(t *testing.T) {
			dst := []uint64{0xFF, 0xF0}
			if !k.not(dst, []uint64{0x0F, 0x0F}) {
				t.Error("expected change when removing overlapping bits")
			}
			if dst[0] != 0xF0 || dst[1] != 0xF0 {
				t.Errorf("dst = %#x, want [0xf0 0xf0]", dst)
			}
			if k.not(dst, []uint64{0x0F, 0x0F}) {
				t.Error("expected no change when bits are already clear")
			}
		})
	}
}

func TestKernelsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{0, 1, 3, 4, 7, 8, 9, 31, 64, 100} {
		a := make([]uint64, n)
		b := make([]uint64, n)
		for i := range a {
			a[i] = rng.Uint64()
			b[i] = rng.Uint64()
		}

		wantPop := 0
		for _, w := range a {
			wantPop += bits.OnesCount64(w)
		}

		var results [][]uint64
		for _, k := range wordKernels {
			if got := k.pop(a); got != wantPop {
				t.Errorf("%s popcount(n=%d) = %d, want %d", k.name, n, got, wantPop)
			}

			dst := append([]uint64(nil), a...)
			k.or(dst, b)
			k.and(dst, a)
			k.not(dst, b)
			k.inv(dst)
			results = append(results, dst)
		}

		for i := range results[0] {
			if results[0][i] != results[1][i] {
				t.Fatalf("kernels disagree at n=%d word %d: %#x vs %#x", n, i, results[0][i], results[1][i])
			}
		}
	}
}

func TestParseISA(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, SVE2, AVX2, AVX512} {
		got, ok := ParseISA(" " + isa.String() + " ")
		if !ok || got != isa {
			t.Errorf("ParseISA(%q) = %v, %v", isa.String(), got, ok)
		}
	}
	if _, ok := ParseISA("mmx"); ok {
		t.Error("ParseISA(mmx) should fail")
	}
}

func BenchmarkOrWords(b *testing.B) {
	dst := make([]uint64, 1024)
	src := make([]uint64, 1024)
	for i := range src {
		src[i] = uint64(i) * 0x9E3779B97F4A7C15
	}
	for _, k := range wordKernels {
		b.Run(k.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				k.or(dst, src)
			}
		})
	}
}
