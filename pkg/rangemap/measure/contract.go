package measure

import "time"

// Measure holds one metric per stage.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric records how a stage behaved over every propagation.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddIntervals(parentStageName string, intervalsIn, intervalsOut int)
	AVGDuration() time.Duration
	Calls() int64
	MaxFanOut() float64
	AllTransports() map[string]*TransportInfo
}
