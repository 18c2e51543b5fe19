package almanac

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// Parse reads an almanac in the text format.
func Parse(r io.Reader) (*Almanac, error) {
	alm := &Almanac{}
	var current *Section
	seen := false

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			current = nil
		case !seen:
			seeds, ok := strings.CutPrefix(line, seedsPrefix)
			if !ok {
				return nil, errors.Wrapf(ErrNoSeeds, "line %d", lineNum)
			}
			nums, err := parseNumbers(seeds)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNum)
			}
			alm.Seeds = nums
			seen = true
		case strings.HasSuffix(line, mapSuffix):
			section, err := parseHeader(strings.TrimSuffix(line, mapSuffix))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNum)
			}
			alm.Sections = append(alm.Sections, section)
			current = &alm.Sections[len(alm.Sections)-1]
		case current == nil:
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: rule outside of a map", lineNum)
		default:
			rule, err := ParseRule(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNum)
			}
			current.Rules = append(current.Rules, rule)
		}
	}

	err := scanner.Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read almanac")
	}
	if !seen {
		return nil, ErrNoSeeds
	}

	return alm, nil
}

// ParseRule reads a "destination source length" line.
func ParseRule(line string) (model.RangeRule, error) {
	nums, err := parseNumbers(line)
	if err != nil {
		return model.RangeRule{}, err
	}
	if len(nums) != 3 {
		return model.RangeRule{}, errors.Wrapf(ErrMalformedInput, "rule %q must have 3 numbers", line)
	}

	return model.NewRangeRule(nums[0], nums[1], nums[2])
}

func parseHeader(name string) (Section, error) {
	from, to, ok := strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return Section{}, errors.Wrapf(ErrMalformedInput, "map name %q", name)
	}

	return Section{From: from, To: to}, nil
}

func parseNumbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	nums := make([]int64, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "number %q", field)
		}
		nums[i] = n
	}

	return nums, nil
}
