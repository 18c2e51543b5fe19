package rangemap

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

var (
	ErrInvalidRange           = model.ErrInvalidRange
	ErrInvalidStageDefinition = errors.New("stage rules must not overlap")
	ErrEmptyDomain            = errors.New("range set is empty")
	ErrPipelineMustBeSet      = errors.New("pipeline must be set")
	ErrStageMustBeSet         = errors.New("stage must be set")
	ErrUnpairedSeed           = errors.New("seeds must come in start/length pairs")
	ErrBudgetExceeded         = errors.New("too many points to enumerate")
)
