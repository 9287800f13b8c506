package grid

// Result is the outcome of one search run.
//   - Visited: nodes in the order they were marked visited; Visited[0] is Start.
//   - NodesVisited: len(Visited)-1, Start excluded.
//   - Path: Start..Finish inclusive, nil when Finish was not reached.
//   - PathLength: edge count of Path, 0 when unreachable.
//   - TotalCost: sum of the weights of every node entered along Path.
type Result struct {
	Visited      []Coord
	NodesVisited int
	Path         []Coord
	PathLength   int
	TotalCost    float64
}

// Found reports whether a path to Finish exists.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Collect packages a visitation trace into a Result, reconstructing the
// path from finish when found is true.
func (g *Grid) Collect(visited []Coord, finish Coord, found bool) Result {
	res := Result{Visited: visited}
	if len(visited) > 0 {
		res.NodesVisited = len(visited) - 1
	}
	if !found {
		return res
	}
	res.Path = g.PathTo(finish)
	res.PathLength = len(res.Path) - 1
	for _, c := range res.Path[1:] {
		res.TotalCost += g.At(c).Weight
	}
	return res
}

// PathTo follows Prev back-links from dst and returns the path in
// forward order. The walk is bounded by the grid size.
func (g *Grid) PathTo(dst Coord) []Coord {
	n := g.At(dst)
	if n == nil {
		return nil
	}
	// build reversed path
	path := []Coord{dst}
	for steps := 0; n.Prev != NoPrev && steps < len(g.nodes); steps++ {
		n = &g.nodes[n.Prev]
		path = append(path, n.Coord)
	}
	// reverse to get start → dst
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
