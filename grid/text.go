package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a text map: one line per row, StartSymbol and FinishSymbol
// for the special nodes, AirSymbol for default terrain and table symbols
// for everything else. Blank lines and lines starting with ';' are skipped.
func Parse(r io.Reader, table *NodeTypeTable) (*Grid, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	var lines [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for i, l := range lines {
		if len(l) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(l), cols)
		}
	}
	if len(lines)*cols < 2 {
		return nil, ErrGridTooSmall
	}

	g := newBlank(len(lines), cols, table)
	var haveStart, haveFinish bool
	for row, l := range lines {
		for col, sym := range l {
			c := Coord{Row: row, Col: col}
			n := g.At(c)
			switch sym {
			case AirSymbol:
			case StartSymbol:
				if haveStart {
					return nil, fmt.Errorf("%w: second at %v", ErrDuplicateStart, c)
				}
				haveStart = true
				n.Role, g.start = Start, c
			case FinishSymbol:
				if haveFinish {
					return nil, fmt.Errorf("%w: second at %v", ErrDuplicateFinish, c)
				}
				haveFinish = true
				n.Role, g.finish = Finish, c
			default:
				nt, ok := table.BySymbol(sym)
				if !ok {
					return nil, fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, sym, c)
				}
				n.Terrain, n.Weight = nt.Name, nt.Weight
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveFinish {
		return nil, ErrMissingFinish
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string, table *NodeTypeTable) (*Grid, error) {
	return Parse(strings.NewReader(s), table)
}

// Symbol returns the map rune for the node at c.
func (g *Grid) Symbol(c Coord) rune {
	n := g.At(c)
	switch {
	case n == nil:
		return ' '
	case n.Role == Start:
		return StartSymbol
	case n.Role == Finish:
		return FinishSymbol
	case n.Terrain == "":
		return AirSymbol
	default:
		return g.table.Symbol(n.Terrain)
	}
}

// String renders the grid in the format Parse reads. Terrain covered by
// Start or Finish is not represented.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			b.WriteRune(g.Symbol(Coord{Row: row, Col: col}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
