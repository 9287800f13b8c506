package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Scatter paints random terrain over g. For every ordinary cell one draw
// picks a type by the configured densities; when no type is picked the
// cell keeps its terrain. Start and Finish are never touched. It returns
// the number of cells painted.
//
// Complexity: O(rows×cols×types).
func Scatter(g *grid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return 0, ErrNeedRandSource
	}

	var total float64
	for _, d := range cfg.densities {
		if _, ok := g.Table().Lookup(d.name); !ok {
			return 0, fmt.Errorf("%w: %q", grid.ErrUnknownNodeType, d.name)
		}
		total += d.p
	}
	if total > 1 {
		return 0, fmt.Errorf("%w: densities sum to %v", ErrInvalidProbability, total)
	}

	painted := 0
	for idx := 0; idx < g.Len(); idx++ {
		n := g.Node(idx)
		if n.Special() {
			continue
		}
		name, ok := cfg.draw()
		if !ok || n.Terrain == name {
			continue
		}
		if changed, _ := g.SetTerrain(n.Coord, name); changed {
			painted++
		}
	}
	return painted, nil
}

// draw picks a type by cumulative density; ok is false when none is picked.
func (c *config) draw() (string, bool) {
	u := c.rng.Float64()
	for _, d := range c.densities {
		if u < d.p {
			return d.name, true
		}
		u -= d.p
	}
	return "", false
}
