package container

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/fixedloc/matcher"
)

// Kind classifies a pattern before searching.
type Kind uint8

const (
	// Usable patterns are non-empty and non-missing.
	Usable Kind = iota

	// Empty patterns have zero bytes.
	Empty

	// Missing patterns are NA.
	Missing
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case Usable:
		return "Usable"
	case Empty:
		return "Empty"
	case Missing:
		return "Missing"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Patterns is the recyclable set of compiled patterns of a locate call.
//
// Each raw pattern owns one matcher cursor; vectorized positions with the
// same residue (i mod Len()) share it, so they must not be searched
// concurrently.
type Patterns struct {
	strs     []Str
	vlen     int
	flags    matcher.Flags
	na       naMask
	matchers []matcher.Matcher
}

// NewPatterns validates and compiles strs for a vectorized pass of length
// vlen. It fails with an *EncodingError naming the first element that is not
// valid UTF-8.
func NewPatterns(strs []Str, vlen int, flags matcher.Flags) (*Patterns, error) {
	matchers := make([]matcher.Matcher, len(strs))
	for i, s := range strs {
		if s.IsNA() || len(s.b) == 0 {
			continue
		}
		if !utf8.Valid(s.b) {
			return nil, &EncodingError{Role: RolePattern, Index: i}
		}
		matchers[i] = matcher.New(s.b, flags)
	}
	return &Patterns{
		strs:     strs,
		vlen:     vlen,
		flags:    flags,
		na:       newNAMask(strs),
		matchers: matchers,
	}, nil
}

// Len returns the raw number of patterns, before recycling.
func (p *Patterns) Len() int {
	return len(p.strs)
}

// Flags returns the flags the patterns were compiled with.
func (p *Patterns) Flags() matcher.Flags {
	return p.flags
}

// Residue returns the raw pattern index used by vectorized position i.
func (p *Patterns) Residue(i int) int {
	if debugChecks && (i < 0 || i >= p.vlen) {
		panic("container: Patterns: index out of bounds")
	}
	return i % len(p.strs)
}

// Kind classifies vectorized pattern i.
func (p *Patterns) Kind(i int) Kind {
	r := p.Residue(i)
	switch {
	case p.na.contains(r):
		return Missing
	case len(p.strs[r].b) == 0:
		return Empty
	default:
		return Usable
	}
}

// Matcher returns the matcher cursor of vectorized pattern i; nil unless
// Kind(i) is Usable.
func (p *Patterns) Matcher(i int) matcher.Matcher {
	m := p.matchers[p.Residue(i)]
	if debugChecks && m == nil {
		panic("container: Patterns.Matcher: pattern is empty or NA")
	}
	return m
}

// Literals returns the bytes of every usable raw pattern, in order.
func (p *Patterns) Literals() [][]byte {
	out := make([][]byte, 0, len(p.strs))
	for r, s := range p.strs {
		if p.matchers[r] != nil {
			out = append(out, s.b)
		}
	}
	return out
}
