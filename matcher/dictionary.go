package matcher

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// Dictionary finds the leftmost occurrence of any of a set of literals.
//
// The leftmost occurrence wins; among literals starting at the same position
// the one listed first wins. Case-sensitive dictionaries compile into a
// single Aho-Corasick automaton that locates the earliest-ending occurrence;
// the leftmost start is then settled within one literal length before it.
// Case-insensitive dictionaries scan each literal with a Folded matcher.
//
// A Dictionary is safe for concurrent use.
type Dictionary struct {
	auto     *ahocorasick.Automaton
	literals [][]byte
	maxLen   int
	folded   []Folded
	size     int
}

// NewDictionary compiles literals. Empty literals are skipped; a dictionary
// without literals never matches. Only CaseInsensitive is meaningful in
// flags.
func NewDictionary(literals [][]byte, flags Flags) (*Dictionary, error) {
	d := &Dictionary{}

	if flags.Has(CaseInsensitive) {
		for _, lit := range literals {
			if len(lit) == 0 {
				continue
			}
			d.folded = append(d.folded, *NewFolded(lit, false))
		}
		d.size = len(d.folded)
		return d, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		if len(lit) == 0 {
			continue
		}
		builder.AddPattern(lit)
		d.literals = append(d.literals, lit)
		d.maxLen = max(d.maxLen, len(lit))
		d.size++
	}
	if d.size == 0 {
		return d, nil
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("matcher: building dictionary of %d literals: %w", d.size, err)
	}
	d.auto = auto
	return d, nil
}

// Len returns the number of literals in the dictionary.
func (d *Dictionary) Len() int {
	return d.size
}

// Find returns the byte range of the leftmost occurrence of any literal in
// haystack, or (Done, Done).
func (d *Dictionary) Find(haystack []byte) (start, end int) {
	if d.auto != nil {
		m := d.auto.Find(haystack, 0)
		if m == nil {
			return Done, Done
		}
		return d.leftmost(haystack, m.Start, m.End)
	}

	start, end = Done, Done
	for i := range d.folded {
		m := d.folded[i] // private cursor over shared runes
		m.Reset(haystack)
		s := m.FindFirst()
		if s == Done || (start != Done && s >= start) {
			continue
		}
		start, end = s, s+m.MatchedLen()
	}
	return start, end
}

// leftmost returns the leftmost, first-listed occurrence given the
// earliest-ending occurrence [start, end). Every other occurrence ends at or
// after end, so none can start before end-maxLen.
func (d *Dictionary) leftmost(haystack []byte, start, end int) (int, int) {
	for pos := max(0, end-d.maxLen); pos <= start; pos++ {
		for _, lit := range d.literals {
			if bytes.HasPrefix(haystack[pos:], lit) {
				return pos, pos + len(lit)
			}
		}
	}
	return start, end
}
