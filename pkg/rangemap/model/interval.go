package model

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Interval is the half-open integer range [Start, End).
type Interval struct {
	Start int64
	End   int64
}

// NewInterval creates the interval [start, start+length).
func NewInterval(start, length int64) (Interval, error) {
	if length < 1 {
		return Interval{}, errors.Wrapf(ErrInvalidRange, "length %d", length)
	}
	if start > math.MaxInt64-length {
		return Interval{}, errors.Wrapf(ErrInvalidRange, "start %d with length %d overflows", start, length)
	}

	return Interval{Start: start, End: start + length}, nil
}

// Validate checks that the interval holds at least one point.
func (iv Interval) Validate() error {
	if iv.Start >= iv.End {
		return errors.Wrapf(ErrInvalidRange, "interval %s", iv)
	}

	return nil
}

// Len returns the number of integers in the interval.
func (iv Interval) Len() int64 {
	return iv.End - iv.Start
}

// IsEmpty reports whether the interval holds no point.
func (iv Interval) IsEmpty() bool {
	return iv.Start >= iv.End
}

// Contains reports whether x is inside the interval.
func (iv Interval) Contains(x int64) bool {
	return iv.Start <= x && x < iv.End
}

// Overlaps reports whether the two intervals share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Intersect returns the common part of both intervals.
// When they do not overlap the result is empty.
func (iv Interval) Intersect(other Interval) Interval {
	start := max(iv.Start, other.Start)
	end := min(iv.End, other.End)

	return Interval{Start: start, End: max(start, end)}
}

// Translate shifts both bounds by offset.
func (iv Interval) Translate(offset int64) Interval {
	return Interval{Start: iv.Start + offset, End: iv.End + offset}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}
