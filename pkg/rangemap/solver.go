package rangemap

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

// PairSeeds reads a flat list of numbers as consecutive (start, length) pairs.
func PairSeeds(flat []int64) ([]model.SeedRange, error) {
	if len(flat)%2 != 0 {
		return nil, errors.Wrapf(ErrUnpairedSeed, "got %d numbers", len(flat))
	}

	seeds := make([]model.SeedRange, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		seeds = append(seeds, model.SeedRange{Start: flat[i], Length: flat[i+1]})
	}

	return seeds, nil
}

// SeedSet converts seed ranges into a normalized range set.
func SeedSet(seeds []model.SeedRange) (RangeSet, error) {
	intervals := make([]model.Interval, len(seeds))
	for i, seed := range seeds {
		iv, err := seed.Interval()
		if err != nil {
			return RangeSet{}, errors.Wrapf(err, "seed range %d", i)
		}
		intervals[i] = iv
	}

	return Normalize(intervals...), nil
}

// Solve returns the minimum output of pipe over every seed of the seed ranges.
func Solve(ctx context.Context, pipe *Pipeline, seeds []model.SeedRange) (int64, error) {
	if pipe == nil {
		return 0, ErrPipelineMustBeSet
	}

	rs, err := SeedSet(seeds)
	if err != nil {
		return 0, err
	}

	out, err := pipe.MapRangeSet(ctx, rs)
	if err != nil {
		return 0, errors.Wrap(err, "unable to propagate seed ranges")
	}

	lowest, ok := out.MinStart()
	if !ok {
		return 0, ErrEmptyDomain
	}

	return lowest, nil
}

// SolvePoints returns the minimum output of pipe over individual seeds.
func SolvePoints(pipe *Pipeline, points []int64) (int64, error) {
	if pipe == nil {
		return 0, ErrPipelineMustBeSet
	}
	if len(points) == 0 {
		return 0, ErrEmptyDomain
	}

	lowest := pipe.MapPoint(points[0])
	for _, point := range points[1:] {
		lowest = min(lowest, pipe.MapPoint(point))
	}

	return lowest, nil
}

// SolveBruteForce maps every seed one by one. It refuses to enumerate more than budget points,
// a budget lower than 1 meaning no limit.
func SolveBruteForce(ctx context.Context, pipe *Pipeline, seeds []model.SeedRange, budget int64) (int64, error) {
	if pipe == nil {
		return 0, ErrPipelineMustBeSet
	}

	rs, err := SeedSet(seeds)
	if err != nil {
		return 0, err
	}
	if rs.IsEmpty() {
		return 0, ErrEmptyDomain
	}
	if budget > 0 && rs.Size() > budget {
		return 0, errors.Wrapf(ErrBudgetExceeded, "%d points, budget %d", rs.Size(), budget)
	}

	lowest := pipe.MapPoint(rs.intervals[0].Start)
	for _, iv := range rs.intervals {
		for x := iv.Start; x < iv.End; x++ {
			if x%(1<<20) == 0 {
				select {
				case <-ctx.Done():
					return 0, errors.Wrapf(ctx.Err(), "seed %d", x)
				default:
				}
			}
			lowest = min(lowest, pipe.MapPoint(x))
		}
	}

	return lowest, nil
}
