package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	propRows = 5
	propCols = 6
)

// paint maps a generated cell code to terrain; air is over-represented so
// most fields stay connected.
var paint = []string{"", "", "", grid.Wall, "Mud", "Water", "Sand", "Grass"}

// buildGrid paints codes row-major onto a fresh grid. Start and Finish
// ignore paint.
func buildGrid(codes []int) *grid.Grid {
	g, err := grid.New(propRows, propCols, grid.DefaultNodeTypes())
	if err != nil {
		panic(err)
	}
	for i, code := range codes {
		if i >= g.Len() || code < 0 || code >= len(paint) {
			continue
		}
		if name := paint[code]; name != "" {
			_, _ = g.SetTerrain(g.CoordOf(i), name)
		}
	}
	return g
}

// refHops is a plain breadth-first distance in edges, -1 when unreachable.
func refHops(g *grid.Grid) int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	start := g.Index(g.Start())
	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nc := range g.Neighbors(g.CoordOf(u)) {
			v := g.Index(nc)
			if dist[v] >= 0 || !g.Passable(nc) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist[g.Index(g.Finish())]
}

// refCost relaxes every edge until nothing improves (Bellman-Ford).
func refCost(g *grid.Grid) float64 {
	dist := make([]float64, g.Len())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[g.Index(g.Start())] = 0
	for changed := true; changed; {
		changed = false
		for u := range dist {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, nc := range g.Neighbors(g.CoordOf(u)) {
				if !g.Passable(nc) {
					continue
				}
				v := g.Index(nc)
				if d := dist[u] + g.At(nc).Weight; d < dist[v] {
					dist[v] = d
					changed = true
				}
			}
		}
	}
	return dist[g.Index(g.Finish())]
}

// validPath checks adjacency, passability and endpoints.
func validPath(g *grid.Grid, path []grid.Coord) bool {
	if len(path) == 0 || path[0] != g.Start() || path[len(path)-1] != g.Finish() {
		return false
	}
	for i, c := range path {
		if !g.Passable(c) {
			return false
		}
		if i > 0 && !path[i-1].Adjacent(c) {
			return false
		}
	}
	return true
}

// traceSound checks the trace bookkeeping shared by every algorithm.
func traceSound(g *grid.Grid, res grid.Result) bool {
	if len(res.Visited) == 0 || res.Visited[0] != g.Start() {
		return false
	}
	if res.NodesVisited+1 != len(res.Visited) {
		return false
	}
	seen := make(map[grid.Coord]bool, len(res.Visited))
	for _, c := range res.Visited {
		if seen[c] || !g.Passable(c) {
			return false
		}
		seen[c] = true
	}
	return true
}

func TestSearchProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	cells := gen.SliceOfN(propRows*propCols, gen.IntRange(0, len(paint)-1))

	// Property 1: trace bookkeeping and reachability agree for every algorithm
	properties.Property("trace starts at Start, counts exclude it, no revisits", prop.ForAll(
		func(codes []int) bool {
			g := buildGrid(codes)
			reachable := refHops(g) >= 0
			for _, a := range search.All() {
				res, err := search.Run(a, g, g.Start(), g.Finish())
				if err != nil || !traceSound(g, res) {
					return false
				}
				if res.Found() != reachable {
					return false
				}
				if !reachable && (res.PathLength != 0 || res.Path != nil) {
					return false
				}
			}
			return true
		},
		cells,
	))

	// Property 2: BFS is edge-count minimal
	properties.Property("bfs path length is minimal in edges", prop.ForAll(
		func(codes []int) bool {
			g := buildGrid(codes)
			want := refHops(g)
			res, err := search.Run(search.BreadthFirst, g, g.Start(), g.Finish())
			if err != nil {
				return false
			}
			if want < 0 {
				return !res.Found()
			}
			return res.PathLength == want && validPath(g, res.Path)
		},
		cells,
	))

	// Property 3: Dijkstra and A* are weight minimal
	properties.Property("dijkstra and astar paths are weight minimal", prop.ForAll(
		func(codes []int) bool {
			g := buildGrid(codes)
			want := refCost(g)
			for _, a := range []search.Algorithm{search.Dijkstra, search.AStar} {
				res, err := search.Run(a, g, g.Start(), g.Finish())
				if err != nil {
					return false
				}
				if math.IsInf(want, 1) {
					if res.Found() {
						return false
					}
					continue
				}
				if res.TotalCost != want || !validPath(g, res.Path) {
					return false
				}
			}
			return true
		},
		cells,
	))

	// Property 4: DFS and Greedy produce connected, passable paths
	properties.Property("dfs and greedy paths are valid", prop.ForAll(
		func(codes []int) bool {
			g := buildGrid(codes)
			for _, a := range []search.Algorithm{search.DepthFirst, search.GreedyBestFirst} {
				res, err := search.Run(a, g, g.Start(), g.Finish())
				if err != nil {
					return false
				}
				if res.Found() && (!validPath(g, res.Path) || res.PathLength != len(res.Path)-1) {
					return false
				}
			}
			return true
		},
		cells,
	))

	properties.TestingRun(t)
}
