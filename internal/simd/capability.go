package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 128-2048 bit).
	SVE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// EnvOverride is the environment variable that forces a specific ISA.
const EnvOverride = "INDEXICAL_SIMD"

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// RegisterBits returns the vector register width of the ISA in bits.
func (i ISA) RegisterBits() int {
	switch i {
	case NEON, SVE2:
		return 128
	case AVX2:
		return 256
	case AVX512:
		return 512
	default:
		// The generic kernels are unrolled four words deep.
		return 256
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Package-level state, initialized once at package init.
var (
	// activeISA is the selected kernel set.
	activeISA ISA

	// hasOverride is true if INDEXICAL_SIMD selected the ISA.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasASIMD    bool // ARM64 NEON
	hasSVE2     bool // ARM64 SVE2
	hasAVX2     bool // x86-64 AVX2
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok {
			if isISAAvailable(isa) {
				hasOverride = true
				selectISA(isa)
				return
			}
			// Unavailable override - fall through to auto-detection
		}
	}

	selectISA(selectBestISA())
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case SVE2:
		return hasSVE2
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F && hasAVX512BW
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		return selectBestARM64()
	case "amd64":
		return selectBestAMD64()
	default:
		return Generic
	}
}

// selectBestARM64 selects the best ISA for ARM64.
func selectBestARM64() ISA {
	// Apple silicon runs NEON faster than its SVE2 path.
	preferNEON := runtime.GOOS == "darwin"

	if hasSVE2 && !preferNEON {
		return SVE2
	}
	if hasASIMD {
		return NEON
	}
	return Generic
}

// selectBestAMD64 selects the best ISA for AMD64.
func selectBestAMD64() ISA {
	if hasAVX512F && hasAVX512BW {
		return AVX512
	}
	if hasAVX2 {
		return AVX2
	}
	return Generic
}

// ActiveISA returns the kernel set selected at init.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if INDEXICAL_SIMD was set to an available ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// HasSVE2 returns true if ARM64 SVE2 is available.
func HasSVE2() bool {
	return hasSVE2
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if x86-64 AVX-512 (F+BW) is available.
func HasAVX512() bool {
	return hasAVX512F && hasAVX512BW
}

// PreferredLanes returns how many lanes of laneBits bits fill one vector
// register of the active ISA. It is the natural chunk width for bit-sets.
func PreferredLanes(laneBits int) int {
	if laneBits <= 0 {
		return 1
	}
	n := activeISA.RegisterBits() / laneBits
	if n < 1 {
		return 1
	}
	return n
}
