// Package recycle implements the recycling rule that reconciles several input
// sequences of different lengths into one vectorized length.
//
// Shorter sequences are broadcast to the longest one by modular repetition:
// the i-th vectorized element of a sequence of length n is element i mod n.
// A combination is compatible when every nonzero length divides the longest.
package recycle

import (
	"errors"
	"fmt"
)

// ErrIncompatible indicates that a nonzero sequence length does not evenly
// divide the vectorized length.
var ErrIncompatible = errors.New("longer object length is not a multiple of shorter object length")

// IncompatibleError reports a length combination that cannot be recycled.
// The vectorized length is still reported so that callers which treat the
// condition as a warning can proceed with it.
type IncompatibleError struct {
	// Lengths are the sequence lengths passed to Plan.
	Lengths []int
	// Length is the vectorized length, i.e. the maximum of Lengths.
	Length int
}

// Error implements the error interface
func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("recycling: %v: lengths %v, vectorized length %d", ErrIncompatible, e.Lengths, e.Length)
}

// Unwrap returns ErrIncompatible so errors.Is matches the sentinel
func (e *IncompatibleError) Unwrap() error {
	return ErrIncompatible
}

// Plan computes the vectorized length for the given sequence lengths.
//
// If requireNonzero is true and any length is 0, the result is 0: an empty
// input produces an empty result set regardless of the other lengths.
// Otherwise the result is the maximum length. If a nonzero length does not
// divide it, Plan returns the maximum together with an *IncompatibleError;
// whether that is fatal is the caller's decision.
//
// Plan panics on a negative length.
//
// Example:
//
//	n, err := recycle.Plan(true, 6, 3, 1) // n == 6, err == nil
//	n, err = recycle.Plan(true, 4, 3)     // n == 4, errors.Is(err, recycle.ErrIncompatible)
//	n, err = recycle.Plan(true, 5, 0)     // n == 0, err == nil
func Plan(requireNonzero bool, lengths ...int) (int, error) {
	longest := 0
	for _, n := range lengths {
		if n < 0 {
			panic("recycle: negative sequence length")
		}
		if n == 0 && requireNonzero {
			return 0, nil
		}
		if n > longest {
			longest = n
		}
	}

	for _, n := range lengths {
		if n != 0 && longest%n != 0 {
			return longest, &IncompatibleError{
				Lengths: append([]int(nil), lengths...),
				Length:  longest,
			}
		}
	}
	return longest, nil
}

// At maps vectorized index i onto a sequence of length n.
//
//go:inline
func At(i, n int) int {
	return i % n
}
