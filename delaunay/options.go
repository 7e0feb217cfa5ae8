package delaunay

import (
	"math"

	"github.com/katalvlaran/cdt/geometry"
)

// Option customizes a kernel created by NewKernel.
type Option func(*config)

type config struct {
	eps float64 // relative zero band of the predicates
}

func newConfig(opts ...Option) config {
	cfg := config{eps: geometry.DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEpsilon sets the relative tolerance of the orientation and in-sphere
// predicates. Panics unless 0 < eps < 1.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		panic("delaunay: WithEpsilon requires 0 < eps < 1")
	}
	return func(c *config) { c.eps = eps }
}
