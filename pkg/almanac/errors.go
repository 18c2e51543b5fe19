package almanac

import "github.com/pkg/errors"

var (
	ErrMalformedInput = errors.New("malformed almanac")
	ErrBrokenChain    = errors.New("maps do not chain")
	ErrNoSeeds        = errors.New("seed line must be set")
	ErrDuplicateMap   = errors.New("map is defined twice")
)
