package matcher

import "github.com/coregx/fixedloc/simd"

// Fixed searches for an exact byte sequence.
type Fixed struct {
	needle   []byte
	overlap  bool
	haystack []byte
	start    int
}

// NewFixed returns an exact-byte matcher for needle. The needle is retained,
// not copied.
func NewFixed(needle []byte, overlap bool) *Fixed {
	return &Fixed{needle: needle, overlap: overlap, start: notStarted}
}

// Reset implements Matcher.
func (f *Fixed) Reset(haystack []byte) {
	f.haystack = haystack
	f.start = notStarted
}

// FindFirst implements Matcher.
func (f *Fixed) FindFirst() int {
	return f.searchFrom(0)
}

// FindNext implements Matcher.
func (f *Fixed) FindNext() int {
	switch f.start {
	case notStarted:
		return f.FindFirst()
	case Done:
		return Done
	}
	if f.overlap {
		// A valid UTF-8 needle cannot match at a continuation byte, so
		// stepping one byte is the same as stepping one codepoint.
		return f.searchFrom(f.start + 1)
	}
	return f.searchFrom(f.start + len(f.needle))
}

// FindLast implements Matcher.
func (f *Fixed) FindLast() int {
	if len(f.needle) == 0 {
		f.start = Done
		return Done
	}
	f.start = simd.MemmemLast(f.haystack, f.needle)
	return f.start
}

// MatchedLen implements Matcher.
func (f *Fixed) MatchedLen() int {
	if f.start < 0 {
		return 0
	}
	return len(f.needle)
}

func (f *Fixed) searchFrom(from int) int {
	if len(f.needle) == 0 || from > len(f.haystack) {
		f.start = Done
		return Done
	}
	pos := simd.Memmem(f.haystack[from:], f.needle)
	if pos == -1 {
		f.start = Done
		return Done
	}
	f.start = from + pos
	return f.start
}
