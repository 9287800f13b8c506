package ui

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/grid"
)

// Glyphs drawn over terrain by the overlay.
const (
	VisitedGlyph = 'o'
	PathGlyph    = '*'
)

var (
	startColor   = color.New(color.FgHiGreen, color.Bold)
	finishColor  = color.New(color.FgHiRed, color.Bold)
	pathColor    = color.New(color.FgHiYellow, color.Bold)
	visitedColor = color.New(color.FgCyan)
	wallColor    = color.New(color.FgHiBlack)
	airColor     = color.New(color.FgWhite, color.Faint)

	terrainColors = map[string]*color.Color{
		"Mud":   color.New(color.FgRed),
		"Water": color.New(color.FgBlue),
		"Sand":  color.New(color.FgYellow),
		"Grass": color.New(color.FgGreen),
	}
)

// Overlay records the reveal applied to each cell. Path wins over Visited.
type Overlay map[grid.Coord]animation.Kind

// Apply records one step; it is the scheduler's step callback.
func (o Overlay) Apply(s animation.Step) {
	if prev, ok := o[s.Coord]; ok && prev == animation.OnShortestPath {
		return
	}
	o[s.Coord] = s.Kind
}

// FromResult reveals every step of res at once.
func FromResult(res grid.Result) Overlay {
	o := make(Overlay)
	for _, s := range animation.BuildSteps(res) {
		o.Apply(s)
	}
	return o
}

// RenderGrid writes g one row per line with the overlay drawn on top.
// Start and Finish are always shown; a nil overlay draws terrain only.
func RenderGrid(w io.Writer, g *grid.Grid, o Overlay) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Coord{Row: r, Col: c}
			glyph, col := cellStyle(g, cell, o)
			if _, err := col.Fprint(bw, string(glyph)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func cellStyle(g *grid.Grid, c grid.Coord, o Overlay) (rune, *color.Color) {
	n := g.At(c)
	switch n.Role {
	case grid.Start:
		return grid.StartSymbol, startColor
	case grid.Finish:
		return grid.FinishSymbol, finishColor
	}
	if k, ok := o[c]; ok {
		if k == animation.OnShortestPath {
			return PathGlyph, pathColor
		}
		return VisitedGlyph, visitedColor
	}
	if n.Blocking() {
		return g.Symbol(c), wallColor
	}
	if tc, ok := terrainColors[n.Terrain]; ok {
		return g.Symbol(c), tc
	}
	return g.Symbol(c), airColor
}

// SummaryLine colors a run-log entry by outcome.
func SummaryLine(s controller.Summary) string {
	if s.Found {
		return StatusIcon(true) + " " + s.String()
	}
	return StatusIcon(false) + " " + Warn.Sprint(s.String())
}
