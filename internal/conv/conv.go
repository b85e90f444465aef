// Package conv provides checked integer conversions used at the edges of the
// locate engine: roaring bitmap keys (uint32) and host integer matrices (int32).
//
// The helpers panic on overflow where overflow means a programming error
// (e.g. a container larger than a bitmap can address). Callers that can see
// user-controlled values use the error-returning variants instead.
package conv

import (
	"errors"
	"math"
)

// ErrOverflow is returned when a value does not fit the target integer type.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToInt32 converts an int to int32, reporting ErrOverflow when n does not
// fit. math.MinInt32 is rejected as well since hosts reserve it for NA.
func IntToInt32(n int) (int32, error) {
	if n <= math.MinInt32 || n > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return int32(n), nil
}
