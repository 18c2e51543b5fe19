package rangemap

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

// Stage is one layer of translation rules with an identity fallback.
type Stage struct {
	name  string
	rules []model.RangeRule
}

// NewStage creates a stage. Rules are copied and sorted by source start; they must not overlap.
func NewStage(name string, rules []model.RangeRule) (*Stage, error) {
	sorted := make([]model.RangeRule, len(rules))
	copy(sorted, rules)

	for _, rule := range sorted {
		err := rule.Validate()
		if err != nil {
			return nil, errors.Wrapf(err, "stage %s", name)
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SourceStart < sorted[j].SourceStart
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].SourceEnd() > sorted[i].SourceStart {
			return nil, errors.Wrapf(ErrInvalidStageDefinition, "stage %s: %s overlaps %s", name, sorted[i-1], sorted[i])
		}
	}

	return &Stage{
		name:  name,
		rules: sorted,
	}, nil
}

// Name returns the stage name.
func (s *Stage) Name() string {
	return s.name
}

// Len returns the number of explicit rules.
func (s *Stage) Len() int {
	return len(s.rules)
}

// Rules returns a copy of the rules, sorted by source start.
func (s *Stage) Rules() []model.RangeRule {
	rules := make([]model.RangeRule, len(s.rules))
	copy(rules, s.rules)

	return rules
}

// firstRuleEndingAfter returns the index of the first rule whose source range ends after x.
func (s *Stage) firstRuleEndingAfter(x int64) int {
	return sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].SourceEnd() > x
	})
}

// MapPoint translates x by the rule claiming it, or returns it unchanged.
func (s *Stage) MapPoint(x int64) int64 {
	idx := s.firstRuleEndingAfter(x)
	if idx < len(s.rules) && s.rules[idx].Contains(x) {
		return s.rules[idx].Translate(x)
	}

	return x
}

// Split partitions iv along the rules and the gaps between them, in source order.
// The sources of the returned segments cover iv exactly.
func (s *Stage) Split(iv model.Interval) ([]model.Segment, error) {
	err := iv.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "stage %s", s.name)
	}

	return s.appendSegments(nil, iv), nil
}

func (s *Stage) appendSegments(segments []model.Segment, iv model.Interval) []model.Segment {
	cur := iv.Start
	for idx := s.firstRuleEndingAfter(iv.Start); idx < len(s.rules) && cur < iv.End; idx++ {
		rule := s.rules[idx]
		if rule.SourceStart >= iv.End {
			break
		}

		if cur < rule.SourceStart {
			segments = append(segments, model.Segment{
				Source: model.Interval{Start: cur, End: rule.SourceStart},
			})
			cur = rule.SourceStart
		}

		end := min(iv.End, rule.SourceEnd())
		segments = append(segments, model.Segment{
			Source: model.Interval{Start: cur, End: end},
			Offset: rule.Offset,
		})
		cur = end
	}

	if cur < iv.End {
		segments = append(segments, model.Segment{
			Source: model.Interval{Start: cur, End: iv.End},
		})
	}

	return segments
}

// MapInterval splits iv at every rule boundary it crosses and translates each piece.
func (s *Stage) MapInterval(iv model.Interval) ([]model.Interval, error) {
	segments, err := s.Split(iv)
	if err != nil {
		return nil, err
	}

	out := make([]model.Interval, len(segments))
	for i, segment := range segments {
		out[i] = segment.Destination()
	}

	return out, nil
}

// Info describes the stage at position idx of a pipeline.
func (s *Stage) Info(idx int) *model.StageInfo {
	return &model.StageInfo{
		Name:  s.name,
		Index: idx,
		Rules: len(s.rules),
	}
}
