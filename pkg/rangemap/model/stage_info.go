package model

// StageInfo describes a stage to the pipeline options.
type StageInfo struct {
	Name  string
	Index int
	Rules int
}

// SeedStage is the virtual parent of the first stage of every pipeline.
var SeedStage = &StageInfo{Name: "seeds", Index: -1}
