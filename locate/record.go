package locate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/coregx/fixedloc/internal/conv"
)

// Record is one located occurrence in 1-based codepoint coordinates.
//
// In position-pair mode Start and End are the first and last matched
// codepoints. In length mode End holds the length in codepoints instead, so
// End == Start + length - 1 no longer applies; use Length.
//
// Sentinels: NA marks a missing subject or pattern (and, in position-pair
// mode, the absence of a match); {-1, -1} marks the absence of a match in
// length mode.
type Record struct {
	Start int
	End   int
	NA    bool
}

// NARecord returns the missing-value sentinel.
func NARecord() Record {
	return Record{NA: true}
}

// NotFound returns the no-match sentinel for the given output shape.
func NotFound(asLength bool) Record {
	if asLength {
		return Record{Start: -1, End: -1}
	}
	return NARecord()
}

// IsNotFound reports whether r is the length-mode no-match sentinel.
func (r Record) IsNotFound() bool {
	return !r.NA && r.Start == -1
}

// IsMatch reports whether r describes an occurrence.
func (r Record) IsMatch() bool {
	return !r.NA && r.Start > 0
}

// String renders r as "(start,end)" or "NA".
func (r Record) String() string {
	if r.NA {
		return "NA"
	}
	return "(" + strconv.Itoa(r.Start) + "," + strconv.Itoa(r.End) + ")"
}

// Columns exports records column-major as two int32 columns, the shape of a
// host integer matrix with one row per record. NA is encoded as
// math.MinInt32. Values that do not fit an int32 are reported as errors.
func Columns(records []Record) (first, second []int32, err error) {
	first = make([]int32, len(records))
	second = make([]int32, len(records))
	for j, r := range records {
		if r.NA {
			first[j], second[j] = math.MinInt32, math.MinInt32
			continue
		}
		if first[j], err = conv.IntToInt32(r.Start); err != nil {
			return nil, nil, fmt.Errorf("record %d start %d: %w", j, r.Start, err)
		}
		if second[j], err = conv.IntToInt32(r.End); err != nil {
			return nil, nil, fmt.Errorf("record %d end %d: %w", j, r.End, err)
		}
	}
	return first, second, nil
}
