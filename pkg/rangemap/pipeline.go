package rangemap

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

// Pipeline is an ordered sequence of stages.
type Pipeline struct {
	stages     []*Stage
	infos      []*model.StageInfo
	opts       []model.PipelineOption
	concurrent int
}

// NewPipeline creates a pipeline running stages in the given order.
func NewPipeline(stages []*Stage, opts ...Option) (*Pipeline, error) {
	pipe := &Pipeline{
		stages: make([]*Stage, len(stages)),
		infos:  make([]*model.StageInfo, len(stages)),
	}
	copy(pipe.stages, stages)

	for _, opt := range opts {
		opt(pipe)
	}

	for _, opt := range pipe.opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	parent := model.SeedStage
	for idx, stage := range pipe.stages {
		if stage == nil {
			return nil, errors.Wrapf(ErrStageMustBeSet, "stage %d", idx)
		}
		info := stage.Info(idx)
		for _, opt := range pipe.opts {
			err := opt.PrepareStage(parent, info)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to prepare stage %s", info.Name)
			}
		}
		pipe.infos[idx] = info
		parent = info
	}

	return pipe, nil
}

// Stages returns the description of every stage, in order.
func (p *Pipeline) Stages() []model.StageInfo {
	infos := make([]model.StageInfo, len(p.infos))
	for i, info := range p.infos {
		infos[i] = *info
	}

	return infos
}

// MapPoint folds x through every stage.
func (p *Pipeline) MapPoint(x int64) int64 {
	for _, stage := range p.stages {
		x = stage.MapPoint(x)
	}

	return x
}

// MapRangeSet pushes every interval of rs through all the stages.
// After each stage the pieces are merged back into a normalized set.
func (p *Pipeline) MapRangeSet(ctx context.Context, rs RangeSet) (RangeSet, error) {
	parent := model.SeedStage
	for idx, stage := range p.stages {
		select {
		case <-ctx.Done():
			return RangeSet{}, errors.Wrapf(ctx.Err(), "stage %s", stage.Name())
		default:
		}

		start := time.Now()
		next, err := p.mapStage(ctx, stage, rs)
		if err != nil {
			return RangeSet{}, errors.Wrapf(err, "stage %s", stage.Name())
		}
		elapsed := time.Since(start)

		for _, opt := range p.opts {
			err := opt.OnStageOutput(parent, p.infos[idx], rs.Len(), next.Len(), elapsed)
			if err != nil {
				return RangeSet{}, errors.Wrap(err, "unable to run stage output option")
			}
		}

		rs = next
		parent = p.infos[idx]
	}

	return rs, nil
}

func (p *Pipeline) mapStage(ctx context.Context, stage *Stage, rs RangeSet) (RangeSet, error) {
	if p.concurrent < 2 || rs.Len() < 2 {
		return sequentialMapStage(stage, rs), nil
	}

	return concurrentMapStage(ctx, stage, rs, p.concurrent)
}

func sequentialMapStage(stage *Stage, rs RangeSet) RangeSet {
	var segments []model.Segment
	for _, iv := range rs.intervals {
		segments = stage.appendSegments(segments, iv)
	}

	return normalizeSegments(segments)
}

func concurrentMapStage(ctx context.Context, stage *Stage, rs RangeSet, concurrent int) (RangeSet, error) {
	results := make([][]model.Segment, len(rs.intervals))

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrent)
	for idx, iv := range rs.intervals {
		localIdx, localIv := idx, iv
		errGrp.Go(func() error {
			select {
			case <-dCtx.Done():
				return errors.Wrapf(dCtx.Err(), "interval %s", localIv)
			default:
			}
			results[localIdx] = stage.appendSegments(nil, localIv)

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return RangeSet{}, err
	}

	var segments []model.Segment
	for _, res := range results {
		segments = append(segments, res...)
	}

	return normalizeSegments(segments), nil
}

func normalizeSegments(segments []model.Segment) RangeSet {
	out := make([]model.Interval, len(segments))
	for i, segment := range segments {
		out[i] = segment.Destination()
	}

	return Normalize(out...)
}

// Finish runs the Finish hook of every pipeline option.
func (p *Pipeline) Finish() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
