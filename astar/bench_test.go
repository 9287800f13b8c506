package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/grid"
)

func benchGrid(b *testing.B) *grid.Grid {
	g, err := grid.New(100, 100, grid.DefaultNodeTypes())
	if err != nil {
		b.Fatal(err)
	}
	for r := 10; r < 90; r++ {
		_, _ = g.SetTerrain(grid.Coord{Row: r, Col: 50}, grid.Wall)
	}
	return g
}

func BenchmarkSearch(b *testing.B) {
	g := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, g.Start(), g.Finish())
	}
}

func BenchmarkGreedy(b *testing.B) {
	g := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Greedy(g, g.Start(), g.Finish())
	}
}
