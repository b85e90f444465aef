// Package fixedloc locates fixed patterns in vectorized UTF-8 strings and
// reports match boundaries in codepoint coordinates.
//
// Every operation takes a sequence of subjects and a sequence of patterns of
// independent lengths. Shorter sequences are recycled to the longest one:
// position i pairs subject i mod len(subjects) with pattern
// i mod len(patterns). Either sequence may contain missing values (NA).
//
// Basic usage:
//
//	subjects := fixedloc.Strings("abcabc", "xyz")
//	records, err := fixedloc.LocateFirst(subjects, fixedloc.Strings("bc"), fixedloc.Options{}, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(records) // [(2,3) NA]
//
// Positions are 1-based codepoint offsets, not byte offsets: "bc" in "ébc"
// starts at 2. In length mode the second field of a record holds the match
// length in codepoints instead of the end position.
//
// Sentinels:
//   - NA subject or NA pattern: NA
//   - empty pattern or no occurrence: {-1,-1} in length mode, NA otherwise
//
// Advanced usage:
//
//	// Parallel execution, results are identical
//	config := fixedloc.DefaultConfig()
//	config.Workers = runtime.GOMAXPROCS(0)
//	loc, err := fixedloc.New(config)
//	rows, err := loc.LocateAll(subjects, patterns, fixedloc.Options{Overlap: true}, false, false)
package fixedloc

import (
	"log/slog"

	"github.com/coregx/fixedloc/container"
	"github.com/coregx/fixedloc/locate"
	"github.com/coregx/fixedloc/recycle"
)

// Str is an immutable UTF-8 byte string or NA.
type Str = container.Str

// Record is one located occurrence, or a sentinel.
type Record = locate.Record

// Options selects matching behavior. The zero value is case-sensitive and
// non-overlapping.
type Options = locate.Options

// Config controls execution. See locate.Config.
type Config = locate.Config

// Logger is the structured logger accepted by Config.
type Logger = locate.Logger

// Stats tracks execution statistics of a Locator.
type Stats = locate.Stats

var (
	// ErrRecyclingIncompatible is returned when a nonzero sequence length
	// does not divide the longest one.
	ErrRecyclingIncompatible = recycle.ErrIncompatible

	// ErrInvalidEncoding is returned when a subject or pattern is not valid
	// UTF-8.
	ErrInvalidEncoding = container.ErrInvalidEncoding
)

// S returns s as a Str.
func S(s string) Str { return container.String(s) }

// B returns b as a Str. b must not be modified afterwards.
func B(b []byte) Str { return container.Bytes(b) }

// NA returns the missing value.
func NA() Str { return container.NA() }

// Strings converts ss to a sequence without missing values.
func Strings(ss ...string) []Str { return container.Strings(ss...) }

// NewLogger returns a Logger writing to handler. A nil handler logs text at
// Info level to stderr.
func NewLogger(handler slog.Handler) *Logger { return locate.NewLogger(handler) }

// DefaultConfig returns the default sequential configuration.
func DefaultConfig() Config { return locate.DefaultConfig() }

// Columns exports records as two int32 columns with NA encoded as
// math.MinInt32.
func Columns(records []Record) (first, second []int32, err error) {
	return locate.Columns(records)
}

// Locator runs locate operations with a fixed configuration.
//
// A Locator is safe for concurrent use, except for ResetStats.
type Locator struct {
	engine *locate.Engine
}

// New returns a Locator for config.
func New(config Config) (*Locator, error) {
	engine, err := locate.New(config)
	if err != nil {
		return nil, err
	}
	return &Locator{engine: engine}, nil
}

// MustNew is like New but panics if config is invalid.
func MustNew(config Config) *Locator {
	loc, err := New(config)
	if err != nil {
		panic("fixedloc: New: " + err.Error())
	}
	return loc
}

// LocateFirst returns the leftmost occurrence of pattern i in subject i for
// every vectorized position i.
func (l *Locator) LocateFirst(subjects, patterns []Str, opts Options, asLength bool) ([]Record, error) {
	return l.engine.First(subjects, patterns, opts, asLength)
}

// LocateLast returns the rightmost occurrence of pattern i in subject i for
// every vectorized position i.
func (l *Locator) LocateLast(subjects, patterns []Str, opts Options, asLength bool) ([]Record, error) {
	return l.engine.Last(subjects, patterns, opts, asLength)
}

// LocateAll returns every occurrence of pattern i in subject i, left to
// right, for every vectorized position i. With omitNoMatch, positions
// without an occurrence (or with an empty pattern) yield no records instead
// of a sentinel.
func (l *Locator) LocateAll(subjects, patterns []Str, opts Options, omitNoMatch, asLength bool) ([][]Record, error) {
	return l.engine.All(subjects, patterns, opts, omitNoMatch, asLength)
}

// LocateFirstAny returns, for every subject, the leftmost occurrence of any
// dictionary entry. The dictionary is not recycled.
func (l *Locator) LocateFirstAny(subjects, dictionary []Str, opts Options, asLength bool) ([]Record, error) {
	return l.engine.FirstAny(subjects, dictionary, opts, asLength)
}

// Stats returns execution statistics.
func (l *Locator) Stats() Stats {
	return l.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (l *Locator) ResetStats() {
	l.engine.ResetStats()
}

var defaultLocator = MustNew(DefaultConfig())

// LocateFirst is Locator.LocateFirst with the default configuration.
func LocateFirst(subjects, patterns []Str, opts Options, asLength bool) ([]Record, error) {
	return defaultLocator.LocateFirst(subjects, patterns, opts, asLength)
}

// LocateLast is Locator.LocateLast with the default configuration.
func LocateLast(subjects, patterns []Str, opts Options, asLength bool) ([]Record, error) {
	return defaultLocator.LocateLast(subjects, patterns, opts, asLength)
}

// LocateAll is Locator.LocateAll with the default configuration.
func LocateAll(subjects, patterns []Str, opts Options, omitNoMatch, asLength bool) ([][]Record, error) {
	return defaultLocator.LocateAll(subjects, patterns, opts, omitNoMatch, asLength)
}

// LocateFirstAny is Locator.LocateFirstAny with the default configuration.
func LocateFirstAny(subjects, dictionary []Str, opts Options, asLength bool) ([]Record, error) {
	return defaultLocator.LocateFirstAny(subjects, dictionary, opts, asLength)
}
