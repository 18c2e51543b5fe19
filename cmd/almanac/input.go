package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/almanac"
)

const (
	formatAuto = "auto"
	formatText = "text"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown input format")

// readAlmanac parses path. The auto format picks YAML for .yaml and .yml files.
func readAlmanac(path, format string) (*almanac.Almanac, error) {
	if format == formatAuto {
		format = formatText
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = formatYAML
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	var alm *almanac.Almanac
	switch format {
	case formatText:
		alm, err = almanac.Parse(file)
	case formatYAML:
		alm, err = almanac.ParseYAML(file)
	default:
		return nil, errors.Wrap(errUnknownFormat, format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}

	return alm, nil
}
