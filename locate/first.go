package locate

import (
	"time"

	"github.com/coregx/fixedloc/container"
	"github.com/coregx/fixedloc/matcher"
)

// First locates the leftmost occurrence of pattern i in subject i for every
// vectorized position i, one record per position.
//
// Sentinels per position:
//   - NA subject or NA pattern: NA
//   - empty pattern or no occurrence: {-1,-1} in length mode, NA otherwise
//
// opts.Overlap has no effect.
func (e *Engine) First(subjects, patterns []container.Str, opts Options, asLength bool) ([]Record, error) {
	return e.firstLast(ModeFirst, subjects, patterns, opts, asLength)
}

// Last is First for the rightmost occurrence. The rightmost occurrence may
// overlap an earlier one: "aa" in "aaa" is found at codepoint 2.
func (e *Engine) Last(subjects, patterns []container.Str, opts Options, asLength bool) ([]Record, error) {
	return e.firstLast(ModeLast, subjects, patterns, opts, asLength)
}

func (e *Engine) firstLast(mode Mode, subjects, patterns []container.Str, opts Options, asLength bool) (out []Record, err error) {
	began := time.Now()
	workers := 1
	c, err := e.prepare(mode, subjects, patterns, opts.flags())
	defer func() { e.finish(mode, c, workers, began, err) }()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return []Record{}, nil
	}

	out = make([]Record, c.length)
	workers, err = e.run(c.length, c.patterns.Len(), func(_ *scratch, i int) {
		out[i] = e.locateOne(c, i, mode == ModeLast, asLength)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) locateOne(c *call, i int, last, asLength bool) Record {
	ok, kind := e.usable(c, i)
	if !ok {
		if kind == container.Missing {
			return NARecord()
		}
		// Empty patterns are "not found" in length mode but NA otherwise;
		// kept for compatibility with the established output.
		return NotFound(asLength)
	}

	m := c.patterns.Matcher(i)
	m.Reset(c.subjects.Get(i))
	var start int
	if last {
		start = m.FindLast()
	} else {
		start = m.FindFirst()
	}
	if start == matcher.Done {
		return NotFound(asLength)
	}
	c.matches.Add(1)

	starts := [1]int{start}
	ends := [1]int{start + m.MatchedLen()}
	c.subjects.ConvertMatch(i, starts[:], ends[:], 1, false)

	r := Record{Start: starts[0], End: ends[0]}
	if asLength {
		r.End = r.End - r.Start + 1
	}
	return r
}
