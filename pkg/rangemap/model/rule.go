package model

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// RangeRule translates every value of [SourceStart, SourceStart+Length) by Offset.
type RangeRule struct {
	SourceStart int64
	Length      int64
	Offset      int64
}

// NewRangeRule creates a rule from the almanac triple "destination source length".
func NewRangeRule(destStart, srcStart, length int64) (RangeRule, error) {
	if (srcStart < 0 && destStart > math.MaxInt64+srcStart) || (srcStart > 0 && destStart < math.MinInt64+srcStart) {
		return RangeRule{}, errors.Wrapf(ErrInvalidRange, "offset from %d to %d overflows", srcStart, destStart)
	}

	rule := RangeRule{
		SourceStart: srcStart,
		Length:      length,
		Offset:      destStart - srcStart,
	}

	err := rule.Validate()
	if err != nil {
		return RangeRule{}, err
	}

	return rule, nil
}

// Validate checks the rule length and that both its source and destination ranges fit in an int64.
func (r RangeRule) Validate() error {
	_, err := NewInterval(r.SourceStart, r.Length)
	if err != nil {
		return errors.Wrapf(err, "rule %d+%d", r.SourceStart, r.Length)
	}

	if (r.Offset > 0 && r.SourceStart > math.MaxInt64-r.Offset) || (r.Offset < 0 && r.SourceStart < math.MinInt64-r.Offset) {
		return errors.Wrapf(ErrInvalidRange, "rule %s: destination overflows", r)
	}

	_, err = NewInterval(r.SourceStart+r.Offset, r.Length)
	if err != nil {
		return errors.Wrapf(err, "rule %s: destination", r)
	}

	return nil
}

// Source returns the interval claimed by the rule.
func (r RangeRule) Source() Interval {
	return Interval{Start: r.SourceStart, End: r.SourceStart + r.Length}
}

// SourceEnd returns the exclusive end of the source range.
func (r RangeRule) SourceEnd() int64 {
	return r.SourceStart + r.Length
}

// Contains reports whether x is claimed by the rule.
func (r RangeRule) Contains(x int64) bool {
	return r.SourceStart <= x && x < r.SourceEnd()
}

// Translate applies the rule offset to x.
func (r RangeRule) Translate(x int64) int64 {
	return x + r.Offset
}

func (r RangeRule) String() string {
	return fmt.Sprintf("%s%+d", r.Source(), r.Offset)
}
