package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/ui"
	"github.com/katalvlaran/pathviz/search"
)

// clearScreen homes the cursor and clears the terminal between frames.
const clearScreen = "\x1b[H\x1b[2J"

func runCmd(gf *globalFlags) *cobra.Command {
	var (
		gridOpts  gridFlags
		algName   string
		speedName string
		animate   bool
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a search and print the explored grid",
		Example: "  pathviz run --algorithm astar --map maze.txt\n" +
			"  pathviz run --all --rows 15 --cols 40\n" +
			"  pathviz run -a bfs --animate --speed 4x",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			g, err := gridOpts.build(e.cfg)
			if err != nil {
				return err
			}
			algs := search.All()
			if !all {
				a, err := pickAlgorithm(algName, e.cfg)
				if err != nil {
					return err
				}
				algs = []search.Algorithm{a}
			}
			sp, err := pickSpeed(speedName, e.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var runs []controller.Summary
			for _, a := range algs {
				var sum controller.Summary
				if animate {
					sum, err = animateRun(cmd.Context(), out, g, a, sp, e.log)
				} else {
					sum, err = printRun(out, g, a, e.log)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.SummaryLine(sum))
				fmt.Fprintln(out)
				runs = append(runs, sum)
			}
			if len(runs) > 1 {
				printSummaries(out, runs)
			}
			return nil
		},
	}

	gridOpts.register(cmd)
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "", "Algorithm: bfs, dfs, dijkstra, astar, gbfs (default from config)")
	cmd.Flags().StringVar(&speedName, "speed", "", "Animation speed: 0.5x, 1x, 2x, 4x (default from config)")
	cmd.Flags().BoolVar(&animate, "animate", false, "Replay the search step by step")
	cmd.Flags().BoolVar(&all, "all", false, "Run every algorithm on the same grid")
	cmd.MarkFlagsMutuallyExclusive("algorithm", "all")

	return cmd
}

// printRun searches a snapshot of g and draws the final overlay.
func printRun(w io.Writer, g *grid.Grid, a search.Algorithm, log *slog.Logger) (controller.Summary, error) {
	snap := g.Clone()
	res, err := search.Run(a, snap, snap.Start(), snap.Finish())
	if err != nil {
		return controller.Summary{}, err
	}
	sum := controller.NewSummary(a, res)
	log.Info("run finished",
		"id", sum.ID,
		"algorithm", a.String(),
		"visited", sum.NodesVisited,
		"path_length", sum.PathLength,
		"found", sum.Found,
	)

	ui.Info.Fprintln(w, a.String())
	if err := ui.RenderGrid(w, g, ui.FromResult(res)); err != nil {
		return controller.Summary{}, err
	}
	return sum, nil
}

// animateRun plays a through a session on an animation.Loop, redrawing
// the grid after every step. It returns when playback completes or ctx
// is cancelled.
func animateRun(ctx context.Context, w io.Writer, g *grid.Grid, a search.Algorithm, sp animation.Speed, log *slog.Logger) (controller.Summary, error) {
	loop := animation.NewLoop()
	overlay := make(ui.Overlay)

	var drawErr error
	draw := func() {
		if drawErr != nil {
			return
		}
		if _, drawErr = io.WriteString(w, clearScreen); drawErr != nil {
			return
		}
		ui.Info.Fprintln(w, a.String())
		drawErr = ui.RenderGrid(w, g, overlay)
	}

	s, err := controller.New(g, loop,
		controller.WithAlgorithm(a),
		controller.WithSpeed(sp),
		controller.WithLogger(log),
		controller.WithOnStep(func(st animation.Step) {
			overlay.Apply(st)
			draw()
		}),
		controller.WithOnDone(loop.Stop),
	)
	if err != nil {
		return controller.Summary{}, err
	}

	var (
		sum     controller.Summary
		started bool
	)
	loop.Post(func() {
		draw()
		if sum, started = s.Start(); !started {
			loop.Stop()
		}
	})
	if err := loop.Run(ctx); err != nil {
		return sum, err
	}
	if !started {
		return sum, fmt.Errorf("run %s: search failed", a.Alias())
	}
	return sum, drawErr
}

func printSummaries(w io.Writer, runs []controller.Summary) {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		length, cost := "-", "-"
		if r.Found {
			length = strconv.Itoa(r.PathLength)
			cost = strconv.FormatFloat(r.TotalCost, 'f', -1, 64)
		}
		rows = append(rows, []string{
			r.Algorithm.Alias(),
			strconv.Itoa(r.NodesVisited),
			length,
			cost,
			ui.StatusIcon(r.Found),
		})
	}
	ui.Table(w, []string{"ALGORITHM", "VISITED", "LENGTH", "COST", "FOUND"}, rows)
}
