package locate

import (
	"time"

	"github.com/coregx/fixedloc/container"
	"github.com/coregx/fixedloc/matcher"
)

// FirstAny locates, for every subject, the leftmost occurrence of any
// literal of dictionary. The dictionary is not recycled: the result has one
// record per subject. Among literals starting at the same position the one
// listed first wins.
//
// NA and empty dictionary entries are ignored. Sentinels per subject:
//   - NA subject: NA
//   - no occurrence (or no usable literal): {-1,-1} in length mode, NA
//     otherwise
//
// opts.Overlap has no effect.
func (e *Engine) FirstAny(subjects, dictionary []container.Str, opts Options, asLength bool) (out []Record, err error) {
	began := time.Now()
	workers := 1
	var c *call
	defer func() { e.finish(ModeFirstAny, c, workers, began, err) }()

	n := len(subjects)
	if n == 0 {
		return []Record{}, nil
	}
	subs, err := container.NewSubjects(subjects, n)
	if err != nil {
		return nil, err
	}
	lits, err := container.NewPatterns(dictionary, len(dictionary), opts.flags())
	if err != nil {
		return nil, err
	}
	dict, err := matcher.NewDictionary(lits.Literals(), opts.flags())
	if err != nil {
		return nil, err
	}
	c = &call{mode: ModeFirstAny, length: n, subjects: subs, patterns: lits}

	out = make([]Record, n)
	// The dictionary holds no cursor state, so every position is its own
	// residue class.
	workers, err = e.run(n, n, func(_ *scratch, i int) {
		out[i] = e.locateAny(c, dict, i, asLength)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) locateAny(c *call, dict *matcher.Dictionary, i int, asLength bool) Record {
	if c.subjects.IsNA(i) {
		e.stats.missing.Add(1)
		return NARecord()
	}
	if dict.Len() == 0 {
		return NotFound(asLength)
	}

	e.stats.dictionary.Add(1)
	start, end := dict.Find(c.subjects.Get(i))
	if start == matcher.Done {
		return NotFound(asLength)
	}
	c.matches.Add(1)

	starts, ends := [1]int{start}, [1]int{end}
	c.subjects.ConvertMatch(i, starts[:], ends[:], 1, false)

	r := Record{Start: starts[0], End: ends[0]}
	if asLength {
		r.End = r.End - r.Start + 1
	}
	return r
}
