package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/rangemap/measure"
	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

type pipelineDrawer struct {
	Drawer
	m measure.Measure
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStage(model.SeedStage.Name, 0)
	if err != nil {
		return errors.Wrap(err, "unable to add seed stage to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStage(parentStage, stage *model.StageInfo) error {
	err := pd.AddStage(stage.Name, stage.Rules)
	if err != nil {
		return err
	}

	return pd.AddLink(parentStage.Name, stage.Name)
}

func (pd *pipelineDrawer) OnStageOutput(_, _ *model.StageInfo, _, _ int, _ time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the pipeline when it finishes. measure may be nil.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drawer, measure}
}
