package matcher

import (
	"unicode"
	"unicode/utf8"
)

// Folded searches for a pattern under Unicode simple case folding.
//
// Matching is codepoint by codepoint, so an occurrence always spans as many
// codepoints as the pattern, but its byte length may differ from the
// pattern's (e.g. 'k' matches the three-byte KELVIN SIGN).
type Folded struct {
	runes    []rune
	overlap  bool
	haystack []byte
	start    int
	length   int
}

// NewFolded returns a case-insensitive matcher for pattern, which must be
// valid UTF-8.
func NewFolded(pattern []byte, overlap bool) *Folded {
	runes := make([]rune, 0, utf8.RuneCount(pattern))
	for len(pattern) > 0 {
		r, size := utf8.DecodeRune(pattern)
		runes = append(runes, r)
		pattern = pattern[size:]
	}
	return &Folded{runes: runes, overlap: overlap, start: notStarted}
}

// Reset implements Matcher.
func (m *Folded) Reset(haystack []byte) {
	m.haystack = haystack
	m.start = notStarted
	m.length = 0
}

// FindFirst implements Matcher.
func (m *Folded) FindFirst() int {
	return m.searchFrom(0)
}

// FindNext implements Matcher.
func (m *Folded) FindNext() int {
	switch m.start {
	case notStarted:
		return m.FindFirst()
	case Done:
		return Done
	}
	if m.overlap {
		_, size := utf8.DecodeRune(m.haystack[m.start:])
		return m.searchFrom(m.start + size)
	}
	return m.searchFrom(m.start + m.length)
}

// FindLast implements Matcher.
func (m *Folded) FindLast() int {
	if len(m.runes) > 0 {
		for pos := len(m.haystack); pos > 0; {
			_, size := utf8.DecodeLastRune(m.haystack[:pos])
			pos -= size
			if n := m.matchAt(pos); n >= 0 {
				m.start, m.length = pos, n
				return pos
			}
		}
	}
	m.start, m.length = Done, 0
	return Done
}

// MatchedLen implements Matcher.
func (m *Folded) MatchedLen() int {
	return m.length
}

func (m *Folded) searchFrom(from int) int {
	if len(m.runes) > 0 {
		for pos := from; pos < len(m.haystack); {
			if n := m.matchAt(pos); n >= 0 {
				m.start, m.length = pos, n
				return pos
			}
			if m.haystack[pos] < utf8.RuneSelf {
				pos++
			} else {
				_, size := utf8.DecodeRune(m.haystack[pos:])
				pos += size
			}
		}
	}
	m.start, m.length = Done, 0
	return Done
}

// matchAt returns the byte length of an occurrence starting at pos, or -1.
func (m *Folded) matchAt(pos int) int {
	off := pos
	for _, pr := range m.runes {
		if off >= len(m.haystack) {
			return -1
		}
		r, size := rune(m.haystack[off]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(m.haystack[off:])
		}
		if !equalFold(pr, r) {
			return -1
		}
		off += size
	}
	return off - pos
}

// equalFold reports whether a and b are equal under simple case folding.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}
	// Walk the fold orbit of a, e.g. k -> K (U+212A) -> K -> k.
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// hasFoldVariants reports whether pattern contains a codepoint whose simple
// fold orbit is not trivial.
func hasFoldVariants(pattern []byte) bool {
	for len(pattern) > 0 {
		r, size := rune(pattern[0]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(pattern)
		} else if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return true
		}
		if r >= utf8.RuneSelf && unicode.SimpleFold(r) != r {
			return true
		}
		pattern = pattern[size:]
	}
	return false
}
