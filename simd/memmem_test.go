package simd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// TestMemmemBasic tests basic functionality and edge cases
func TestMemmemBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   []byte
		want     int
		wantLast int
	}{
		{"empty_needle", []byte("hello"), []byte{}, 0, 5},
		{"empty_haystack", []byte{}, []byte("x"), -1, -1},
		{"both_empty", []byte{}, []byte{}, 0, 0},
		{"single_found", []byte("hello"), []byte("l"), 2, 3},
		{"single_not_found", []byte("hello"), []byte("x"), -1, -1},
		{"at_start", []byte("hello world"), []byte("hello"), 0, 0},
		{"at_end", []byte("hello world"), []byte("world"), 6, 6},
		{"not_found", []byte("hello world"), []byte("xyz"), -1, -1},
		{"needle_too_long", []byte("hi"), []byte("hello"), -1, -1},
		{"multiple", []byte("hello hello"), []byte("hello"), 0, 6},
		{"self_overlapping", []byte("aaa"), []byte("aa"), 0, 1},
		{"repeated_in_haystack", []byte("aaaaaabaaaa"), []byte("aab"), 4, 4},
		{"high_bytes", []byte{1, 2, 255, 254, 5, 255, 254}, []byte{255, 254}, 2, 5},
		{"utf8", []byte("éabcé"), []byte("bc"), 3, 3},
		{"utf8_needle", []byte("aéé"), []byte("é"), 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memmem(tt.haystack, tt.needle); got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if got := MemmemLast(tt.haystack, tt.needle); got != tt.wantLast {
				t.Errorf("MemmemLast(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.wantLast)
			}
		})
	}
}

// TestMemmemMatchesStdlib cross-checks every needle position and size
// against bytes.Index and bytes.LastIndex.
func TestMemmemMatchesStdlib(t *testing.T) {
	haystacks := []string{
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("ab", 50) + "abc" + strings.Repeat("ab", 50),
		strings.Repeat("zażółć gęślą jaźń ", 8),
	}
	for hi, h := range haystacks {
		hay := []byte(h)
		for start := 0; start < len(hay); start += 3 {
			for size := 1; size <= 40 && start+size <= len(hay); size += 7 {
				needle := hay[start : start+size]
				t.Run(fmt.Sprintf("h%d_s%d_n%d", hi, start, size), func(t *testing.T) {
					if got, want := Memmem(hay, needle), bytes.Index(hay, needle); got != want {
						t.Errorf("Memmem = %d, bytes.Index = %d (needle=%q)", got, want, needle)
					}
					if got, want := MemmemLast(hay, needle), bytes.LastIndex(hay, needle); got != want {
						t.Errorf("MemmemLast = %d, bytes.LastIndex = %d (needle=%q)", got, want, needle)
					}
				})
			}
		}
	}
}

func TestMemchrSizes(t *testing.T) {
	for size := 0; size < 100; size++ {
		hay := bytes.Repeat([]byte{'a'}, size)
		for pos := 0; pos < size; pos++ {
			hay[pos] = 'x'
			if got := Memchr(hay, 'x'); got != pos {
				t.Fatalf("Memchr(size=%d, pos=%d) = %d", size, pos, got)
			}
			if got := memchrGeneric(hay, 'x'); got != pos {
				t.Fatalf("memchrGeneric(size=%d, pos=%d) = %d", size, pos, got)
			}
			if got := Memrchr(hay, 'x'); got != pos {
				t.Fatalf("Memrchr(size=%d, pos=%d) = %d", size, pos, got)
			}
			hay[pos] = 'a'
		}
		if got := Memchr(hay, 'x'); got != -1 {
			t.Fatalf("Memchr(size=%d) not found = %d", size, got)
		}
	}
}

func BenchmarkMemmem(b *testing.B) {
	hay := []byte(strings.Repeat("lorem ipsum dolor sit amet ", 200) + "needle")
	needle := []byte("needle")
	b.SetBytes(int64(len(hay)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Memmem(hay, needle)
	}
}

func BenchmarkMemmemLast(b *testing.B) {
	hay := []byte("needle" + strings.Repeat("lorem ipsum dolor sit amet ", 200))
	needle := []byte("needle")
	b.SetBytes(int64(len(hay)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MemmemLast(hay, needle)
	}
}
