// Package utf8index converts byte offsets into a UTF-8 buffer to codepoint
// offsets.
//
// An Index is attached to one immutable buffer and built lazily, at most once,
// on the first conversion. ASCII-only buffers need no table since both
// coordinate systems coincide. Other buffers get one checkpoint per 64-byte
// block holding the number of codepoints that start before the block, so a
// random lookup costs at most one block scan; batches of non-decreasing
// offsets are converted in a single forward pass.
//
// Two boundary policies are provided:
//   - Containing(off): index of the codepoint containing byte off
//     (used for match starts)
//   - Following(off): index of the first codepoint starting at or after off
//     (used for exclusive match ends, which may equal the buffer length)
package utf8index

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/fixedloc/simd"
)

// blockSize is the checkpoint distance in bytes.
const blockSize = 64

// Index maps byte offsets of a UTF-8 buffer to 0-based codepoint offsets.
//
// An Index is safe for concurrent use; the lazy build is synchronized.
// The buffer must not be modified while the Index is in use.
type Index struct {
	buf   []byte
	once  sync.Once
	built atomic.Bool

	ascii bool
	runes int
	// blocks[k] is the number of codepoints starting in buf[:k*blockSize].
	blocks []int
}

// New returns an unbuilt Index over buf. buf is expected to be valid UTF-8;
// offsets into invalid sequences convert to unspecified (but in-range) values.
func New(buf []byte) *Index {
	return &Index{buf: buf}
}

// Built reports whether the lazy structure has been built.
func (x *Index) Built() bool {
	return x.built.Load()
}

// Len returns the number of codepoints in the buffer.
func (x *Index) Len() int {
	x.build()
	return x.runes
}

// Containing returns the 0-based index of the codepoint that contains byte
// off. Offsets at or past the end of the buffer map to Len().
func (x *Index) Containing(off int) int {
	x.build()
	if off >= len(x.buf) {
		return x.runes
	}
	return x.startsBefore(off+1) - 1
}

// Following returns the 0-based index of the first codepoint starting at or
// after byte off, i.e. the number of codepoints starting before off.
// Offsets at or past the end of the buffer map to Len().
func (x *Index) Following(off int) int {
	x.build()
	if off >= len(x.buf) {
		return x.runes
	}
	return x.startsBefore(off)
}

// Convert rewrites match boundaries in place from byte offsets to codepoint
// positions, shifted by base (base 1 gives 1-based positions).
//
// starts[j] becomes Containing(starts[j]) + base. ends[j] is an exclusive
// byte end and becomes Following(ends[j]) + base when exclusiveEnd is set,
// otherwise the position of the last matched codepoint,
// Following(ends[j]) + base - 1.
//
// Both slices must have the same length. When each of them is sorted in
// non-decreasing order the whole batch is converted in one forward scan;
// unsorted input is still converted correctly using checkpoint lookups.
func (x *Index) Convert(starts, ends []int, base int, exclusiveEnd bool) {
	if len(starts) != len(ends) {
		panic("utf8index: starts and ends differ in length")
	}
	if len(starts) == 0 {
		return
	}
	x.build()

	endAdj := base - 1
	if exclusiveEnd {
		endAdj = base
	}

	if x.ascii {
		for j := range starts {
			starts[j] = min(starts[j], x.runes) + base
			ends[j] = min(ends[j], x.runes) + endAdj
		}
		return
	}

	// Starts and ends are each monotonic but interleave when occurrences
	// overlap, so each gets its own cursor.
	sc := cursor{x: x}
	ec := cursor{x: x}
	n := len(x.buf)
	for j := range starts {
		if s := starts[j]; s >= n {
			starts[j] = x.runes + base
		} else {
			starts[j] = sc.startsBefore(s+1) - 1 + base
		}
		if e := ends[j]; e >= n {
			ends[j] = x.runes + endAdj
		} else {
			ends[j] = ec.startsBefore(e) + endAdj
		}
	}
}

func (x *Index) build() {
	x.once.Do(func() {
		defer x.built.Store(true)

		if simd.IsASCII(x.buf) {
			x.ascii = true
			x.runes = len(x.buf)
			return
		}

		full := len(x.buf) / blockSize
		x.blocks = make([]int, full+1)
		count := 0
		for k := 0; k < full; k++ {
			x.blocks[k] = count
			count += simd.CountRuneStarts(x.buf[k*blockSize : (k+1)*blockSize])
		}
		x.blocks[full] = count
		x.runes = count + simd.CountRuneStarts(x.buf[full*blockSize:])
	})
}

// startsBefore returns the number of codepoints starting in buf[:off].
// Requires a built index and 0 <= off <= len(buf).
func (x *Index) startsBefore(off int) int {
	if x.ascii {
		return off
	}
	k := off / blockSize
	return x.blocks[k] + simd.CountRuneStarts(x.buf[k*blockSize:off])
}

// cursor counts codepoint starts incrementally for non-decreasing offsets.
type cursor struct {
	x     *Index
	pos   int
	count int
}

func (c *cursor) startsBefore(off int) int {
	if off < c.pos {
		return c.x.startsBefore(off)
	}
	if off-c.pos > blockSize {
		// Skip whole blocks using the checkpoint table.
		k := off / blockSize
		c.pos = k * blockSize
		c.count = c.x.blocks[k]
	}
	c.count += simd.CountRuneStarts(c.x.buf[c.pos:off])
	c.pos = off
	return c.count
}
