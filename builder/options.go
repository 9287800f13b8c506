package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Option customizes a generator before it runs.
type Option func(*config)

// density pairs a node-type name with the share of cells it should cover.
type density struct {
	name string
	p    float64
}

type config struct {
	rng       *rand.Rand
	densities []density
}

// newConfig applies opts in order; later options win.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed uses a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDensity makes Scatter paint roughly p of the cells with name.
// Repeating a name replaces its density. Panics unless 0 <= p <= 1.
func WithDensity(name string, p float64) Option {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithDensity(%q, %v): want 0 <= p <= 1", name, p))
	}
	return func(c *config) {
		for i := range c.densities {
			if c.densities[i].name == name {
				c.densities[i].p = p
				return
			}
		}
		c.densities = append(c.densities, density{name: name, p: p})
	}
}
