package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// PrepareStage runs once per stage, in pipeline order, when the pipeline is built.
	PrepareStage(parentStage, stage *StageInfo) error
	// OnStageOutput runs every time a range set has been pushed through the stage.
	OnStageOutput(parentStage, stage *StageInfo, intervalsIn, intervalsOut int, duration time.Duration) error
	// Finish runs when the caller is done with the pipeline.
	Finish() error
}
