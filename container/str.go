// Package container holds the recyclable input collections of a locate call:
// Subjects (haystacks with lazily built codepoint indexes) and Patterns
// (compiled matchers).
//
// Both containers are constructed once per call, validate their input
// eagerly and are read-only afterwards apart from matcher cursor state.
// Element i of a container of raw length n is element i mod n.
package container

// Str is an immutable UTF-8 byte string or NA (missing).
//
// The zero value is the empty, non-missing string.
type Str struct {
	b  []byte
	na bool
}

// String returns a non-missing Str holding s.
func String(s string) Str {
	return Str{b: []byte(s)}
}

// Bytes returns a non-missing Str holding b. The slice is retained, not
// copied, and must not be modified afterwards.
func Bytes(b []byte) Str {
	return Str{b: b}
}

// NA returns the missing string.
func NA() Str {
	return Str{na: true}
}

// Strings converts ss to non-missing Strs.
func Strings(ss ...string) []Str {
	out := make([]Str, len(ss))
	for i, s := range ss {
		out[i] = String(s)
	}
	return out
}

// IsNA reports whether s is missing.
func (s Str) IsNA() bool {
	return s.na
}

// Bytes returns the string's bytes, nil for NA.
func (s Str) Bytes() []byte {
	if s.na {
		return nil
	}
	return s.b
}

// Len returns the length in bytes, 0 for NA.
func (s Str) Len() int {
	return len(s.Bytes())
}

// String implements fmt.Stringer.
func (s Str) String() string {
	if s.na {
		return "NA"
	}
	return string(s.b)
}
