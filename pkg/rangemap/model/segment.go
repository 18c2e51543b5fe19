package model

// Segment is one piece of an interval split by a stage, along with the offset applied to it.
// A zero offset is either the identity fallback or a rule mapping onto itself.
type Segment struct {
	Source Interval
	Offset int64
}

// Destination returns the translated interval.
func (s Segment) Destination() Interval {
	return s.Source.Translate(s.Offset)
}

// SeedRange is a run of Length consecutive seeds starting at Start.
type SeedRange struct {
	Start  int64
	Length int64
}

// Interval converts the seed range to [Start, Start+Length).
func (s SeedRange) Interval() (Interval, error) {
	return NewInterval(s.Start, s.Length)
}
