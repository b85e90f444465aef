package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/coregx/fixedloc"
	"github.com/coregx/fixedloc/input"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fixedloc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "first", "occurrences to report: first, last, all or any")
	patternsPath := fs.String("patterns", "", "path to the patterns file, one per line")
	caseInsensitive := fs.Bool("ci", false, "match ignoring case")
	overlap := fs.Bool("overlap", false, "report overlapping occurrences in all mode")
	asLength := fs.Bool("length", false, "report (start, length) instead of (start, end)")
	omit := fs.Bool("omit", false, "omit positions without an occurrence in all mode")
	naToken := fs.String("na", "NA", "line marking a missing value (empty disables)")
	workers := fs.Int("workers", 1, "number of search goroutines")
	format := fs.String("format", "text", "output format: text or matrix")
	verbose := fs.Bool("v", false, "log call diagnostics to stderr")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s -patterns <patterns.txt> [options] <subjects.txt>\n\n", os.Args[0]),
			writeln(stderr, "Locates fixed patterns in subjects and prints 1-based codepoint positions."),
			writeln(stderr, "Files ending in .gz, .zst or .lz4 are decompressed."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	usage := func(msg string) int {
		if err := writeln(stderr, "error: "+msg); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	if *patternsPath == "" {
		return usage("-patterns is required")
	}
	switch *mode {
	case "first", "last", "all", "any":
	default:
		return usage("unknown -mode " + strconv.Quote(*mode))
	}
	if *format != "text" && *format != "matrix" {
		return usage("unknown -format " + strconv.Quote(*format))
	}
	remaining := fs.Args()
	if len(remaining) != 1 {
		return usage("exactly one subjects file argument is required")
	}

	config := fixedloc.DefaultConfig()
	config.Workers = *workers
	if *verbose {
		config.Logger = fixedloc.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	loc, err := fixedloc.New(config)
	if err != nil {
		return usage(err.Error())
	}

	subjects, err := input.ReadFile(remaining[0], *naToken)
	if err != nil {
		return fail(stderr, "error reading subjects", err)
	}
	patterns, err := input.ReadFile(*patternsPath, *naToken)
	if err != nil {
		return fail(stderr, "error reading patterns", err)
	}

	opts := fixedloc.Options{CaseInsensitive: *caseInsensitive, Overlap: *overlap}
	var rows [][]fixedloc.Record
	switch *mode {
	case "first", "last", "any":
		var records []fixedloc.Record
		switch *mode {
		case "first":
			records, err = loc.LocateFirst(subjects, patterns, opts, *asLength)
		case "last":
			records, err = loc.LocateLast(subjects, patterns, opts, *asLength)
		default:
			records, err = loc.LocateFirstAny(subjects, patterns, opts, *asLength)
		}
		rows = make([][]fixedloc.Record, len(records))
		for i := range records {
			rows[i] = records[i : i+1]
		}
	case "all":
		rows, err = loc.LocateAll(subjects, patterns, opts, *omit, *asLength)
	}
	if err != nil {
		return fail(stderr, "error locating", err)
	}

	w := bufio.NewWriter(stdout)
	if *format == "matrix" {
		err = writeMatrix(w, rows, *asLength, *naToken)
	} else {
		err = writeText(w, rows)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		return fail(stderr, "error writing output", err)
	}
	return 0
}

// writeText prints one line per vectorized position: the 1-based position
// followed by its records.
func writeText(w io.Writer, rows [][]fixedloc.Record) error {
	for i, row := range rows {
		if err := writef(w, "%d", i+1); err != nil {
			return err
		}
		for _, r := range row {
			if err := writef(w, "\t%s", r); err != nil {
				return err
			}
		}
		if err := writeln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeMatrix prints one line per record with the position it belongs to,
// in the integer column layout of Columns.
func writeMatrix(w io.Writer, rows [][]fixedloc.Record, asLength bool, naToken string) error {
	second := "end"
	if asLength {
		second = "length"
	}
	if err := writef(w, "position\tstart\t%s\n", second); err != nil {
		return err
	}
	if naToken == "" {
		naToken = "NA"
	}
	cell := func(v int32) string {
		if v == math.MinInt32 {
			return naToken
		}
		return strconv.FormatInt(int64(v), 10)
	}
	for i, row := range rows {
		starts, ends, err := fixedloc.Columns(row)
		if err != nil {
			return err
		}
		for j := range starts {
			if err := writef(w, "%d\t%s\t%s\n", i+1, cell(starts[j]), cell(ends[j])); err != nil {
				return err
			}
		}
	}
	return nil
}

func fail(stderr io.Writer, what string, err error) int {
	_ = writef(stderr, "%s: %v\n", what, err)
	return 1
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
