package matcher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect runs FindFirst/FindNext to exhaustion and returns [start, end) pairs.
func collect(m Matcher, haystack string) [][2]int {
	m.Reset([]byte(haystack))
	var out [][2]int
	for s := m.FindFirst(); s != Done; s = m.FindNext() {
		out = append(out, [2]int{s, s + m.MatchedLen()})
	}
	return out
}

func TestFixedAll(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		pattern  string
		overlap  bool
		want     [][2]int
	}{
		{"single_byte", "aaa", "a", false, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"single_byte_overlap", "aaa", "a", true, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"self_overlap_off", "aaaa", "aa", false, [][2]int{{0, 2}, {2, 4}}},
		{"self_overlap_on", "aaaa", "aa", true, [][2]int{{0, 2}, {1, 3}, {2, 4}}},
		{"none", "xyz", "bc", false, nil},
		{"utf8", "ébcébc", "bc", false, [][2]int{{2, 4}, {6, 8}}},
		{"empty_haystack", "", "a", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New([]byte(tt.pattern), flagsFor(false, tt.overlap))
			require.IsType(t, &Fixed{}, m)
			assert.Equal(t, tt.want, collect(m, tt.haystack))
		})
	}
}

func flagsFor(ci, overlap bool) Flags {
	var f Flags
	if ci {
		f |= CaseInsensitive
	}
	if overlap {
		f |= Overlap
	}
	return f
}

// TestFixedNonOverlapping checks the greedy left-to-right count against
// bytes.Count, which counts non-overlapping instances the same way.
func TestFixedNonOverlapping(t *testing.T) {
	cases := []struct{ haystack, pattern string }{
		{"abababab", "aba"},
		{"aaaaaaa", "aaa"},
		{"mississippi", "ss"},
		{"zażółć zażółć", "żó"},
	}
	for _, c := range cases {
		got := collect(NewFixed([]byte(c.pattern), false), c.haystack)
		assert.Len(t, got, bytes.Count([]byte(c.haystack), []byte(c.pattern)), "%q in %q", c.pattern, c.haystack)
		for k := 1; k < len(got); k++ {
			assert.LessOrEqual(t, got[k-1][1], got[k][0], "occurrences overlap")
		}
	}
}

func TestFixedLast(t *testing.T) {
	tests := []struct {
		haystack, pattern string
		want              int
	}{
		{"abcabc", "bc", 4},
		{"aaa", "aa", 1},
		{"xyz", "bc", Done},
		{"", "a", Done},
	}
	for _, tt := range tests {
		m := NewFixed([]byte(tt.pattern), false)
		m.Reset([]byte(tt.haystack))
		assert.Equal(t, tt.want, m.FindLast(), "%q in %q", tt.pattern, tt.haystack)
		if tt.want != Done {
			assert.Equal(t, len(tt.pattern), m.MatchedLen())
		} else {
			assert.Zero(t, m.MatchedLen())
		}
	}
}

func TestFixedCursorReuse(t *testing.T) {
	m := NewFixed([]byte("ab"), false)
	assert.Equal(t, [][2]int{{0, 2}}, collect(m, "ab"))
	assert.Nil(t, collect(m, "ba"))
	assert.Equal(t, [][2]int{{1, 3}}, collect(m, "xab"))

	// FindNext on a fresh cursor starts from the beginning.
	m.Reset([]byte("zab"))
	assert.Equal(t, 1, m.FindNext())
	assert.Equal(t, Done, m.FindNext())
	assert.Equal(t, Done, m.FindNext())
}

func TestEmptyPatternNeverMatches(t *testing.T) {
	for _, flags := range []Flags{0, Overlap, CaseInsensitive} {
		m := New(nil, flags)
		m.Reset([]byte("abc"))
		assert.Equal(t, Done, m.FindFirst())
		assert.Equal(t, Done, m.FindNext())
		assert.Equal(t, Done, m.FindLast())
	}
}

func TestFolded(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		pattern  string
		overlap  bool
		want     [][2]int
	}{
		{"ascii", "Hello HELLO hello", "hello", false, [][2]int{{0, 5}, {6, 11}, {12, 17}}},
		{"polish", "ZAŻÓŁĆ zażółć", "żółć", false, [][2]int{{2, 10}, {13, 21}}},
		{"kelvin_sign", "Kelvin", "kelvin", false, [][2]int{{0, 8}}},
		{"long_s", "ſs", "ss", false, [][2]int{{0, 3}}},
		{"overlap", "AaAa", "aa", true, [][2]int{{0, 2}, {1, 3}, {2, 4}}},
		{"no_overlap", "AaAa", "aa", false, [][2]int{{0, 2}, {2, 4}}},
		{"none", "abc", "x", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New([]byte(tt.pattern), flagsFor(true, tt.overlap))
			require.IsType(t, &Folded{}, m)
			assert.Equal(t, tt.want, collect(m, tt.haystack))
		})
	}
}

func TestFoldedLast(t *testing.T) {
	m := NewFolded([]byte("ab"), false)
	m.Reset([]byte("AB ab Ab"))
	assert.Equal(t, 6, m.FindLast())
	assert.Equal(t, 2, m.MatchedLen())

	m.Reset([]byte("zzz"))
	assert.Equal(t, Done, m.FindLast())
}

func TestCaseInsensitiveWithoutVariants(t *testing.T) {
	// Digits and punctuation have no case variants: exact search is used.
	m := New([]byte("12-34"), CaseInsensitive)
	require.IsType(t, &Fixed{}, m)
	assert.Equal(t, [][2]int{{2, 7}}, collect(m, "x 12-34"))
}

func TestEqualFold(t *testing.T) {
	assert.True(t, equalFold('a', 'A'))
	assert.True(t, equalFold('k', 'K'))
	assert.True(t, equalFold('ß', 'ẞ'))
	assert.True(t, equalFold('ł', 'Ł'))
	assert.False(t, equalFold('a', 'b'))
	assert.False(t, equalFold('@', '`'))
}

func TestDictionary(t *testing.T) {
	tests := []struct {
		name      string
		literals  []string
		flags     Flags
		haystack  string
		wantStart int
		wantEnd   int
	}{
		{"leftmost", []string{"world", "hello"}, 0, "say hello world", 4, 9},
		{"none", []string{"foo", "bar"}, 0, "baz", Done, Done},
		{"skips_empty", []string{"", "b"}, 0, "ab", 1, 2},
		{"utf8", []string{"łć", "gęś"}, 0, "zażółć gęślą", 6, 10},
		{"folded_leftmost", []string{"WORLD", "Hello"}, CaseInsensitive, "say hello world", 4, 9},
		{"folded_none", []string{"qq"}, CaseInsensitive, "abc", Done, Done},
		{"empty_dictionary", nil, 0, "abc", Done, Done},
		{"longer_starts_first", []string{"abcd", "c"}, 0, "abcd", 0, 4},
		{"folded_longer_starts_first", []string{"abcd", "c"}, CaseInsensitive, "abcd", 0, 4},
		{"shorter_ends_first", []string{"bcd", "b"}, 0, "xbcd", 1, 4},
		{"folded_shorter_ends_first", []string{"bcd", "b"}, CaseInsensitive, "xbcd", 1, 4},
		{"same_start_listed_first", []string{"ab", "abc", "a"}, 0, "xabcd", 1, 3},
		{"folded_same_start_listed_first", []string{"ab", "abc", "a"}, CaseInsensitive, "xabcd", 1, 3},
		{"same_start_prefix_listed_first", []string{"a", "abc"}, 0, "xabc", 1, 2},
		{"nested_suffix", []string{"zzzzab", "b", "ab"}, 0, "zzzzzab", 1, 7},
		{"utf8_overlapping", []string{"żółw", "ó"}, 0, "xżółw", 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lits := make([][]byte, len(tt.literals))
			for i, l := range tt.literals {
				lits[i] = []byte(l)
			}
			d, err := NewDictionary(lits, tt.flags)
			require.NoError(t, err)
			s, e := d.Find([]byte(tt.haystack))
			assert.Equal(t, tt.wantStart, s)
			assert.Equal(t, tt.wantEnd, e)
		})
	}
}

// TestDictionaryAgreesWithFolded checks that the automaton and the folded
// scan pick the same occurrence for caseless literals.
func TestDictionaryAgreesWithFolded(t *testing.T) {
	dictionaries := [][]string{
		{"abcd", "c"},
		{"bcd", "b"},
		{"ab", "abc", "a"},
		{"ba", "aba", "ab"},
		{"1234", "23", "3", "234"},
		{"a.b", ".", "b.a"},
	}
	haystacks := []string{"abcd", "xbcd", "xabcd", "abababa", "0123423", "ab.a.b.a", "zzz"}
	for _, words := range dictionaries {
		lits := make([][]byte, len(words))
		for i, w := range words {
			lits[i] = []byte(w)
		}
		exact, err := NewDictionary(lits, 0)
		require.NoError(t, err)
		folded, err := NewDictionary(lits, CaseInsensitive)
		require.NoError(t, err)
		for _, h := range haystacks {
			es, ee := exact.Find([]byte(h))
			fs, fe := folded.Find([]byte(h))
			assert.Equal(t, [2]int{fs, fe}, [2]int{es, ee}, "%q in %q", words, h)
		}
	}
}

func BenchmarkFixedFindAll(b *testing.B) {
	hay := bytes.Repeat([]byte("lorem ipsum dolor sit amet "), 100)
	m := NewFixed([]byte("or"), false)
	b.SetBytes(int64(len(hay)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Reset(hay)
		for s := m.FindFirst(); s != Done; s = m.FindNext() {
		}
	}
}

func BenchmarkFoldedFindAll(b *testing.B) {
	hay := bytes.Repeat([]byte("Lorem Ipsum Dolor Sit Amet "), 100)
	m := NewFolded([]byte("or"), false)
	b.SetBytes(int64(len(hay)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Reset(hay)
		for s := m.FindFirst(); s != Done; s = m.FindNext() {
		}
	}
}
