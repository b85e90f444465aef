package locate

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/fixedloc/container"
	"github.com/coregx/fixedloc/matcher"
	"github.com/coregx/fixedloc/recycle"
)

// Engine runs locate calls. An Engine is safe for concurrent use; every call
// builds its own containers.
type Engine struct {
	config  Config
	logger  *Logger
	metrics MetricsCollector
	stats   stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Calls counts engine calls, successful or not.
	Calls uint64

	// Elements counts vectorized positions processed.
	Elements uint64

	// Searches counts matcher runs (positions with a usable subject and
	// pattern).
	Searches uint64

	// Matches counts occurrences reported.
	Matches uint64

	// Missing counts positions short-circuited by an NA subject or pattern.
	Missing uint64

	// DictionarySearches counts Dictionary scans of FirstAny.
	DictionarySearches uint64
}

type stats struct {
	calls, elements, searches, matches, missing, dictionary atomic.Uint64
}

// New returns an Engine for config.
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{config: config, logger: config.Logger, metrics: config.Metrics}
	if e.logger == nil {
		e.logger = NoopLogger()
	}
	if e.metrics == nil {
		e.metrics = NoopMetricsCollector{}
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Calls:              e.stats.calls.Load(),
		Elements:           e.stats.elements.Load(),
		Searches:           e.stats.searches.Load(),
		Matches:            e.stats.matches.Load(),
		Missing:            e.stats.missing.Load(),
		DictionarySearches: e.stats.dictionary.Load(),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats.calls.Store(0)
	e.stats.elements.Store(0)
	e.stats.searches.Store(0)
	e.stats.matches.Store(0)
	e.stats.missing.Store(0)
	e.stats.dictionary.Store(0)
}

// call carries the per-call state shared by all workers.
type call struct {
	mode     Mode
	length   int
	subjects *container.Subjects
	patterns *container.Patterns
	matches  atomic.Int64
}

// prepare applies the recycling rule and builds the containers. A zero
// vectorized length returns a nil call: there is nothing to validate or
// search.
func (e *Engine) prepare(mode Mode, subjects, patterns []container.Str, flags matcher.Flags) (*call, error) {
	n, err := recycle.Plan(true, len(subjects), len(patterns))
	if err != nil {
		if e.config.StrictRecycling {
			return nil, err
		}
		e.logger.LogRecyclingMismatch(mode, len(subjects), len(patterns), n)
	}
	if n == 0 {
		return nil, nil
	}

	subs, err := container.NewSubjects(subjects, n)
	if err != nil {
		return nil, err
	}
	pats, err := container.NewPatterns(patterns, n, flags)
	if err != nil {
		return nil, err
	}
	return &call{mode: mode, length: n, subjects: subs, patterns: pats}, nil
}

// finish records statistics, logs and reports metrics for a call.
func (e *Engine) finish(mode Mode, c *call, workers int, began time.Time, err error) {
	elapsed := time.Since(began)
	e.stats.calls.Add(1)

	length, matches := 0, 0
	if c != nil && err == nil {
		length, matches = c.length, int(c.matches.Load())
		e.stats.elements.Add(uint64(length))
		e.stats.matches.Add(uint64(matches))
	}
	e.logger.LogLocate(mode, length, matches, workers, elapsed, err)
	e.metrics.RecordLocate(mode, length, matches, elapsed, err)
}

// scratch holds per-worker buffers reused across positions.
type scratch struct {
	starts []int
	ends   []int
}

// workersFor returns the number of goroutines a loop of length n over groups
// independent residue classes may use.
func (e *Engine) workersFor(n, groups int) int {
	if n < e.config.MinParallelLength {
		return 1
	}
	return max(1, min(e.config.Workers, groups))
}

// run calls body for every position in [0, n). Positions are partitioned by
// residue modulo groups, and each residue class is handled by exactly one
// worker, so state keyed by residue (matcher cursors) is never shared.
func (e *Engine) run(n, groups int, body func(sc *scratch, i int)) (int, error) {
	workers := e.workersFor(n, groups)
	if workers == 1 {
		sc := &scratch{}
		for i := 0; i < n; i++ {
			body(sc, i)
		}
		return 1, nil
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			sc := &scratch{}
			for r := w; r < groups; r += workers {
				for i := r; i < n; i += groups {
					body(sc, i)
				}
			}
			return nil
		})
	}
	return workers, g.Wait()
}

// usable reports whether position i needs a search, returning the sentinel
// kind otherwise.
func (e *Engine) usable(c *call, i int) (bool, container.Kind) {
	if c.subjects.IsNA(i) {
		e.stats.missing.Add(1)
		return false, container.Missing
	}
	switch k := c.patterns.Kind(i); k {
	case container.Missing:
		e.stats.missing.Add(1)
		return false, k
	case container.Empty:
		return false, k
	}
	e.stats.searches.Add(1)
	return true, container.Usable
}
