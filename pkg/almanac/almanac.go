package almanac

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/rangemap"
	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

// Section is one "<from>-to-<to> map" block.
type Section struct {
	From  string
	To    string
	Rules []model.RangeRule
}

// Name returns the section name as written in the almanac.
func (s Section) Name() string {
	return s.From + "-to-" + s.To
}

// Almanac is a parsed almanac.
type Almanac struct {
	Seeds    []int64
	Sections []Section
}

// Validate checks that section names are unique and that every section starts where the
// previous one ended.
func (a *Almanac) Validate() error {
	seen := make(map[string]struct{}, len(a.Sections))
	for i, cur := range a.Sections {
		if _, ok := seen[cur.Name()]; ok {
			return errors.Wrapf(ErrDuplicateMap, "section %d: %s", i, cur.Name())
		}
		seen[cur.Name()] = struct{}{}

		if i > 0 && a.Sections[i-1].To != cur.From {
			return errors.Wrapf(ErrBrokenChain, "%s is followed by %s", a.Sections[i-1].Name(), cur.Name())
		}
	}

	return nil
}

// Stages builds one stage per section.
func (a *Almanac) Stages() ([]*rangemap.Stage, error) {
	stages := make([]*rangemap.Stage, len(a.Sections))
	for i, section := range a.Sections {
		stage, err := rangemap.NewStage(section.Name(), section.Rules)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to build section %d", i)
		}
		stages[i] = stage
	}

	return stages, nil
}

// Pipeline validates the almanac and chains its stages.
func (a *Almanac) Pipeline(opts ...rangemap.Option) (*rangemap.Pipeline, error) {
	err := a.Validate()
	if err != nil {
		return nil, err
	}

	stages, err := a.Stages()
	if err != nil {
		return nil, err
	}

	pipe, err := rangemap.NewPipeline(stages, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build pipeline")
	}

	return pipe, nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]model.SeedRange, error) {
	return rangemap.PairSeeds(a.Seeds)
}
