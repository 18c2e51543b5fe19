package model

import "github.com/pkg/errors"

// ErrInvalidRange is returned when an interval or a rule would have a non-positive length.
var ErrInvalidRange = errors.New("range must have a positive length")
