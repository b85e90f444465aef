// Package matcher provides fixed-pattern search cursors over UTF-8 byte
// buffers.
//
// A Matcher is compiled once per pattern and bound to one haystack at a time
// with Reset; its cursor state is reused across haystacks rather than
// reallocated. Two backends implement the interface:
//   - Fixed: exact byte-substring search (SIMD-assisted, see package simd)
//   - Folded: case-insensitive search using Unicode simple case folding
//
// Dictionary searches for the leftmost occurrence of any of several literals
// and is backed by an Aho-Corasick automaton.
package matcher

// Done is returned by the Find methods when no (further) occurrence exists.
const Done = -1

// notStarted marks a cursor that has been reset but not searched yet.
const notStarted = -2

// Flags configure pattern matching.
type Flags uint8

const (
	// CaseInsensitive enables matching under Unicode simple case folding.
	CaseInsensitive Flags = 1 << iota

	// Overlap lets FindNext report occurrences that overlap the previous one:
	// the next search begins one codepoint after the previous start instead of
	// at the previous end.
	Overlap
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Matcher is a stateful search cursor for one compiled pattern.
//
// A Matcher is not safe for concurrent use.
type Matcher interface {
	// Reset binds the cursor to haystack and forgets any previous match.
	Reset(haystack []byte)

	// FindFirst returns the byte offset of the leftmost occurrence, or Done.
	FindFirst() int

	// FindNext returns the byte offset of the next occurrence after the
	// current one according to the overlap policy, or Done. On a freshly
	// reset cursor it behaves like FindFirst.
	FindNext() int

	// FindLast returns the byte offset of the rightmost occurrence, or Done.
	// The rightmost occurrence may overlap earlier ones.
	FindLast() int

	// MatchedLen returns the byte length of the current occurrence in the
	// haystack, or 0 if there is none.
	MatchedLen() int
}

// New compiles pattern into a Matcher.
//
// Case-insensitive patterns without any case-variant codepoint compile to an
// exact Fixed matcher since folding cannot change their matches.
// An empty pattern compiles to a matcher that never matches.
func New(pattern []byte, flags Flags) Matcher {
	if flags.Has(CaseInsensitive) && hasFoldVariants(pattern) {
		return NewFolded(pattern, flags.Has(Overlap))
	}
	return NewFixed(pattern, flags.Has(Overlap))
}
