package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is wrapped by every conversion error.
var ErrOverflow = errors.New("integer overflow")

// MaxUint32Range is the largest capacity addressable with uint32 indices.
const MaxUint32Range uint64 = math.MaxUint32 + 1

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", ErrOverflow, v)
	}
	return int(v), nil
}

// MustUint32 is IntToUint32 that panics on overflow.
func MustUint32(v int) uint32 {
	u, err := IntToUint32(v)
	if err != nil {
		panic(err)
	}
	return u
}

// MustInt is Uint64ToInt that panics on overflow.
func MustInt(v uint64) int {
	i, err := Uint64ToInt(v)
	if err != nil {
		panic(err)
	}
	return i
}
