package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

var ErrUnknownStage = errors.New("stage was not prepared")

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.SeedStage.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareStage(_, stage *model.StageInfo) error {
	pm.AddMetric(stage.Name)

	return nil
}

func (pm *pipelineMeasure) OnStageOutput(parentStage, stage *model.StageInfo, intervalsIn, intervalsOut int, duration time.Duration) error {
	mt := pm.GetMetric(stage.Name)
	if mt == nil {
		return errors.Wrap(ErrUnknownStage, stage.Name)
	}
	mt.AddDuration(duration)
	mt.AddIntervals(parentStage.Name, intervalsIn, intervalsOut)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure records the metrics of every stage into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
