package locate

import (
	"fmt"

	"github.com/coregx/fixedloc/matcher"
)

// Options select matching semantics for one call.
// The zero value is exact, case-sensitive, non-overlapping matching.
type Options struct {
	// CaseInsensitive enables matching under Unicode simple case folding.
	CaseInsensitive bool

	// Overlap makes All report overlapping occurrences: after an occurrence
	// starting at s the next search begins one codepoint after s instead of
	// at the end of the occurrence. First and Last ignore it.
	Overlap bool
}

func (o Options) flags() matcher.Flags {
	var f matcher.Flags
	if o.CaseInsensitive {
		f |= matcher.CaseInsensitive
	}
	if o.Overlap {
		f |= matcher.Overlap
	}
	return f
}

// Mode identifies the engine entry point of a call.
type Mode uint8

const (
	// ModeFirst locates the leftmost occurrence.
	ModeFirst Mode = iota

	// ModeLast locates the rightmost occurrence.
	ModeLast

	// ModeAll locates every occurrence.
	ModeAll

	// ModeFirstAny locates the leftmost occurrence of any dictionary literal.
	ModeFirstAny
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeFirst:
		return "first"
	case ModeLast:
		return "last"
	case ModeAll:
		return "all"
	case ModeFirstAny:
		return "first_any"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}
