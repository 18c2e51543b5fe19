package rangemap

import "github.com/askiada/go-almanac/pkg/rangemap/model"

// Option configures a Pipeline.
type Option func(p *Pipeline)

// WithConcurrency maps the intervals of a stage with up to concurrent goroutines.
// Values lower than 2 keep the propagation sequential.
func WithConcurrency(concurrent int) Option {
	return func(p *Pipeline) {
		p.concurrent = concurrent
	}
}

// WithHooks registers pipeline options, such as a measure or a drawer.
func WithHooks(opts ...model.PipelineOption) Option {
	return func(p *Pipeline) {
		p.opts = append(p.opts, opts...)
	}
}
