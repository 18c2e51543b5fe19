package measure

import (
	"sync"
	"time"
)

// TransportInfo counts the intervals that went from a parent stage into a stage.
type TransportInfo struct {
	IntervalsIn  int64
	IntervalsOut int64
}

// FanOut returns how many output intervals each input interval produced on average.
func (ti *TransportInfo) FanOut() float64 {
	if ti.IntervalsIn == 0 {
		return 0
	}

	return float64(ti.IntervalsOut) / float64(ti.IntervalsIn)
}

type DefaultMetric struct {
	allTransports map[string]*TransportInfo
	mu            *sync.Mutex
	stageElapsed  time.Duration
	total         int64
	maxFanOut     float64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.stageElapsed += elapsed
}

func (mt *DefaultMetric) AddIntervals(parentStageName string, intervalsIn, intervalsOut int) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.allTransports[parentStageName] == nil {
		mt.allTransports[parentStageName] = &TransportInfo{}
	}
	ti := mt.allTransports[parentStageName]
	ti.IntervalsIn += int64(intervalsIn)
	ti.IntervalsOut += int64(intervalsOut)

	if intervalsIn > 0 {
		mt.maxFanOut = max(mt.maxFanOut, float64(intervalsOut)/float64(intervalsIn))
	}
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stageElapsed) / float64(mt.total)))
}

func (mt *DefaultMetric) Calls() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) MaxFanOut() float64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.maxFanOut
}

func (mt *DefaultMetric) AllTransports() map[string]*TransportInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	all := make(map[string]*TransportInfo, len(mt.allTransports))
	for name, ti := range mt.allTransports {
		cp := *ti
		all[name] = &cp
	}

	return all
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Hour)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
