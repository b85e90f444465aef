package container

import (
	"unicode/utf8"

	"github.com/coregx/fixedloc/utf8index"
)

// Subjects is the recyclable set of haystacks of a locate call.
type Subjects struct {
	strs  []Str
	vlen  int
	na    naMask
	index []*utf8index.Index
}

// NewSubjects validates strs and prepares them for a vectorized pass of
// length vlen. It fails with an *EncodingError naming the first element that
// is not valid UTF-8.
func NewSubjects(strs []Str, vlen int) (*Subjects, error) {
	index := make([]*utf8index.Index, len(strs))
	for i, s := range strs {
		if s.IsNA() {
			continue
		}
		if !utf8.Valid(s.b) {
			return nil, &EncodingError{Role: RoleSubject, Index: i}
		}
		index[i] = utf8index.New(s.b)
	}
	return &Subjects{
		strs:  strs,
		vlen:  vlen,
		na:    newNAMask(strs),
		index: index,
	}, nil
}

// Len returns the raw number of subjects, before recycling.
func (s *Subjects) Len() int {
	return len(s.strs)
}

// VectorLen returns the vectorized length the set was built for.
func (s *Subjects) VectorLen() int {
	return s.vlen
}

// NACount returns the number of missing raw subjects.
func (s *Subjects) NACount() int {
	return s.na.count()
}

// IsNA reports whether vectorized subject i is missing.
func (s *Subjects) IsNA(i int) bool {
	return s.na.contains(s.raw(i))
}

// Get returns the bytes of vectorized subject i.
func (s *Subjects) Get(i int) []byte {
	r := s.raw(i)
	if debugChecks && s.strs[r].IsNA() {
		panic("container: Subjects.Get: access of NA")
	}
	return s.strs[r].b
}

// Index returns the codepoint index of vectorized subject i; nil for NA.
// The index is shared by every vectorized position recycling the same raw
// subject and is built on first use.
func (s *Subjects) Index(i int) *utf8index.Index {
	return s.index[s.raw(i)]
}

// ConvertMatch rewrites byte ranges found in vectorized subject i into
// codepoint positions in place. See utf8index.Index.Convert for the meaning
// of base and exclusiveEnd.
func (s *Subjects) ConvertMatch(i int, starts, ends []int, base int, exclusiveEnd bool) {
	s.Index(i).Convert(starts, ends, base, exclusiveEnd)
}

func (s *Subjects) raw(i int) int {
	if debugChecks && (i < 0 || i >= s.vlen) {
		panic("container: Subjects: index out of bounds")
	}
	return i % len(s.strs)
}
