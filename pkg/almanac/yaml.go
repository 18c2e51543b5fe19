package almanac

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

type yamlAlmanac struct {
	Seeds []int64   `yaml:"seeds"`
	Maps  []yamlMap `yaml:"maps"`
}

type yamlMap struct {
	From  string    `yaml:"from"`
	To    string    `yaml:"to"`
	Rules [][]int64 `yaml:"rules"`
}

// ParseYAML reads an almanac in the YAML format.
func ParseYAML(r io.Reader) (*Almanac, error) {
	var doc yamlAlmanac
	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	if doc.Seeds == nil {
		return nil, ErrNoSeeds
	}

	alm := &Almanac{
		Seeds:    doc.Seeds,
		Sections: make([]Section, len(doc.Maps)),
	}
	for i, m := range doc.Maps {
		if m.From == "" || m.To == "" {
			return nil, errors.Wrapf(ErrMalformedInput, "map %d must have from and to", i)
		}
		section := Section{From: m.From, To: m.To}
		for j, nums := range m.Rules {
			if len(nums) != 3 {
				return nil, errors.Wrapf(ErrMalformedInput, "%s rule %d must have 3 numbers", section.Name(), j)
			}
			rule, err := model.NewRangeRule(nums[0], nums[1], nums[2])
			if err != nil {
				return nil, errors.Wrapf(err, "%s rule %d", section.Name(), j)
			}
			section.Rules = append(section.Rules, rule)
		}
		alm.Sections[i] = section
	}

	return alm, nil
}

// MarshalYAML writes the almanac in the YAML format.
func (a *Almanac) MarshalYAML() (interface{}, error) {
	doc := yamlAlmanac{
		Seeds: a.Seeds,
		Maps:  make([]yamlMap, len(a.Sections)),
	}
	for i, section := range a.Sections {
		m := yamlMap{From: section.From, To: section.To, Rules: make([][]int64, len(section.Rules))}
		for j, rule := range section.Rules {
			m.Rules[j] = []int64{rule.SourceStart + rule.Offset, rule.SourceStart, rule.Length}
		}
		doc.Maps[i] = m
	}

	return doc, nil
}
