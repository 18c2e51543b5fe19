package rangemap

import (
	"math"
	"sort"
	"strings"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

// RangeSet is a normalized union of intervals: sorted, disjoint and never adjacent.
// Operations never modify a RangeSet, they return a new one.
type RangeSet struct {
	intervals []model.Interval
}

// Normalize builds a RangeSet from intervals given in any order.
// Overlapping or touching intervals are merged, empty ones are dropped.
func Normalize(intervals ...model.Interval) RangeSet {
	sorted := make([]model.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.IsEmpty() {
			continue
		}
		sorted = append(sorted, iv)
	}
	if len(sorted) == 0 {
		return RangeSet{}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if last.End >= iv.Start {
			last.End = max(last.End, iv.End)

			continue
		}
		merged = append(merged, iv)
	}

	return RangeSet{intervals: merged}
}

// Intervals returns a copy of the normalized intervals.
func (rs RangeSet) Intervals() []model.Interval {
	intervals := make([]model.Interval, len(rs.intervals))
	copy(intervals, rs.intervals)

	return intervals
}

// Len returns the number of intervals.
func (rs RangeSet) Len() int {
	return len(rs.intervals)
}

// IsEmpty reports whether the set holds no point.
func (rs RangeSet) IsEmpty() bool {
	return len(rs.intervals) == 0
}

// MinStart returns the smallest value of the set.
func (rs RangeSet) MinStart() (int64, bool) {
	if rs.IsEmpty() {
		return 0, false
	}

	return rs.intervals[0].Start, true
}

// Union returns the normalized union of both sets.
func (rs RangeSet) Union(other RangeSet) RangeSet {
	all := make([]model.Interval, 0, len(rs.intervals)+len(other.intervals))
	all = append(all, rs.intervals...)
	all = append(all, other.intervals...)

	return Normalize(all...)
}

// Contains reports whether x belongs to the set.
func (rs RangeSet) Contains(x int64) bool {
	idx := sort.Search(len(rs.intervals), func(i int) bool {
		return rs.intervals[i].End > x
	})

	return idx < len(rs.intervals) && rs.intervals[idx].Contains(x)
}

// Size returns the number of integers in the set, saturating at math.MaxInt64.
func (rs RangeSet) Size() int64 {
	var total int64
	for _, iv := range rs.intervals {
		n := iv.Len()
		if n < 0 || total > math.MaxInt64-n {
			return math.MaxInt64
		}
		total += n
	}

	return total
}

// Equal reports whether both sets hold the same integers.
func (rs RangeSet) Equal(other RangeSet) bool {
	if len(rs.intervals) != len(other.intervals) {
		return false
	}
	for i := range rs.intervals {
		if rs.intervals[i] != other.intervals[i] {
			return false
		}
	}

	return true
}

func (rs RangeSet) String() string {
	parts := make([]string, len(rs.intervals))
	for i, iv := range rs.intervals {
		parts[i] = iv.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}
