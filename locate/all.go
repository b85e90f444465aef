package locate

import (
	"time"

	"github.com/coregx/fixedloc/container"
	"github.com/coregx/fixedloc/matcher"
)

// All locates every occurrence of pattern i in subject i for every
// vectorized position i, returning one list of records per position in
// left-to-right order.
//
// Occurrences do not overlap unless opts.Overlap is set. Sentinels per
// position:
//   - NA subject or NA pattern: a single NA record
//   - empty pattern or no occurrence: no records if omitNoMatch, otherwise a
//     single {-1,-1} (length mode) or NA record
func (e *Engine) All(subjects, patterns []container.Str, opts Options, omitNoMatch, asLength bool) (out [][]Record, err error) {
	began := time.Now()
	workers := 1
	c, err := e.prepare(ModeAll, subjects, patterns, opts.flags())
	defer func() { e.finish(ModeAll, c, workers, began, err) }()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return [][]Record{}, nil
	}

	out = make([][]Record, c.length)
	workers, err = e.run(c.length, c.patterns.Len(), func(sc *scratch, i int) {
		out[i] = e.locateAll(c, sc, i, omitNoMatch, asLength)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func noMatchRows(omitNoMatch, asLength bool) []Record {
	if omitNoMatch {
		return []Record{}
	}
	return []Record{NotFound(asLength)}
}

func (e *Engine) locateAll(c *call, sc *scratch, i int, omitNoMatch, asLength bool) []Record {
	ok, kind := e.usable(c, i)
	if !ok {
		if kind == container.Missing {
			return []Record{NARecord()}
		}
		return noMatchRows(omitNoMatch, asLength)
	}

	m := c.patterns.Matcher(i)
	m.Reset(c.subjects.Get(i))
	start := m.FindFirst()
	if start == matcher.Done {
		return noMatchRows(omitNoMatch, asLength)
	}

	sc.starts, sc.ends = sc.starts[:0], sc.ends[:0]
	for start != matcher.Done {
		sc.starts = append(sc.starts, start)
		sc.ends = append(sc.ends, start+m.MatchedLen())
		start = m.FindNext()
	}
	c.matches.Add(int64(len(sc.starts)))

	c.subjects.ConvertMatch(i, sc.starts, sc.ends, 1, false)

	rows := make([]Record, len(sc.starts))
	for j := range rows {
		rows[j] = Record{Start: sc.starts[j], End: sc.ends[j]}
		if asLength {
			rows[j].End -= rows[j].Start - 1
		}
	}
	return rows
}
