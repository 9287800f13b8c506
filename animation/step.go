package animation

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Kind is the visual effect a step applies to its node.
type Kind int

const (
	// Visited marks a node the search expanded.
	Visited Kind = iota
	// OnShortestPath marks a node on the reported path.
	OnShortestPath
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Visited:
		return "Visited"
	case OnShortestPath:
		return "OnShortestPath"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Step reveals one node. Replaying a step is idempotent.
type Step struct {
	Coord grid.Coord
	Kind  Kind
}

// String renders the step as "Visited (r,c)".
func (s Step) String() string {
	return s.Kind.String() + " " + s.Coord.String()
}

// BuildSteps flattens res into reveal steps: every visited node except
// Visited[0] and the finish, then every path node.
func BuildSteps(res grid.Result) []Step {
	var finish grid.Coord
	found := res.Found()
	if found {
		finish = res.Path[len(res.Path)-1]
	}

	steps := make([]Step, 0, len(res.Visited)+len(res.Path))
	for i, c := range res.Visited {
		if i == 0 || (found && c == finish) {
			continue
		}
		steps = append(steps, Step{Coord: c, Kind: Visited})
	}
	for _, c := range res.Path {
		steps = append(steps, Step{Coord: c, Kind: OnShortestPath})
	}
	return steps
}
