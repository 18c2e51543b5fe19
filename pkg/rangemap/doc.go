// Package rangemap pushes integer ranges through an ordered sequence of translation stages.
//
// A Stage is a set of disjoint rules, each claiming a contiguous source range and shifting it by a fixed
// offset. Values no rule claims pass through unchanged. A Pipeline chains stages in order, the way an
// almanac chains seed to soil, soil to fertilizer and so on down to location.
//
// Mapping single values is a fold over the stages. Mapping a large set of values one by one is not
// feasible, so the pipeline propagates a RangeSet instead: each interval is split at the rule boundaries it
// crosses, every piece is translated as a whole, and the pieces are merged back into a normalized set before
// the next stage. The number of intervals grows with the number of rules crossed, never with the magnitude
// of the values. The minimum output is the start of the first interval of the final set.
//
// Stages, pipelines and range sets are immutable once built. A Pipeline can be shared between goroutines,
// and can optionally map the intervals of one stage concurrently.
package rangemap
