package drawer

import (
	"github.com/askiada/go-almanac/pkg/rangemap/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStage adds a stage to the pipeline drawer.
	AddStage(stageName string, rules int) error
	// AddLink adds a link between a stage and the next one.
	AddLink(parentStageName, stageName string) error
	// AddMeasure annotates stages and links with the collected metrics.
	AddMeasure(measure measure.Measure) error
	// Draw writes the pipeline graph.
	Draw() error
}
