package log

import (
	"log/slog"
	"time"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

type pipelineLogger struct {
	logger *slog.Logger
}

func (pl *pipelineLogger) New() error {
	return nil
}

func (pl *pipelineLogger) PrepareStage(parentStage, stage *model.StageInfo) error {
	pl.logger.Debug("stage prepared", "parent", parentStage.Name, "stage", stage.Name, "rules", stage.Rules)

	return nil
}

func (pl *pipelineLogger) OnStageOutput(_, stage *model.StageInfo, intervalsIn, intervalsOut int, duration time.Duration) error {
	pl.logger.Debug("stage mapped",
		"stage", stage.Name,
		"intervals_in", intervalsIn,
		"intervals_out", intervalsOut,
		"duration", duration,
	)

	return nil
}

func (pl *pipelineLogger) Finish() error {
	return nil
}

// PipelineLogger logs every stage at debug level.
func PipelineLogger(logger *slog.Logger) model.PipelineOption {
	return &pipelineLogger{logger: logger}
}
