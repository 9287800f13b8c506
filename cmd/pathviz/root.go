package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/logging"
	"github.com/katalvlaran/pathviz/internal/ui"
	"github.com/katalvlaran/pathviz/search"
)

var version = "0.3.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "pathviz",
		Short: "pathviz · grid pathfinding visualizer",
		Long: ui.Brand.Sprint("pathviz") + " · watch BFS, DFS, Dijkstra, A* and Greedy explore a grid\n" +
			ui.Subtle.Sprint("Paint walls and terrain, then replay each search step by step"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetVersionTemplate("pathviz {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "Config file (default "+config.Path()+")")
	pf.StringVar(&gf.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&gf.logFile, "log-file", "", "Append logs to this file instead of stderr")

	root.AddCommand(
		runCmd(gf),
		playCmd(gf),
		algorithmsCmd(),
		configCmd(gf),
	)
	return root
}

// env is the per-invocation state built from the global flags.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
}

func (e *env) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// loadEnv reads the config and builds the logger. Logs go to --log-file
// when set, otherwise to fallback.
func loadEnv(gf *globalFlags, fallback io.Writer) (*env, error) {
	cfg, err := gf.loadConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if gf.logLevel != "" {
		level = gf.logLevel
	}

	e := &env{cfg: cfg}
	w := fallback
	if gf.logFile != "" {
		f, err := os.OpenFile(gf.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, e.closer = f, f
	}
	if e.log, err = logging.New(w, level, cfg.Log.Format); err != nil {
		_ = e.Close()
		return nil, err
	}
	return e, nil
}

func (gf *globalFlags) loadConfig() (*config.Config, error) {
	if gf.configPath != "" {
		return config.LoadFile(gf.configPath)
	}
	return config.Load()
}

// gridFlags select the grid a command works on.
type gridFlags struct {
	mapFile string
	rows    int
	cols    int
	maze    bool
	walls   float64
	seed    int64
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mapFile, "map", "m", "", "Text map file (S start, F finish, # wall, m w s g terrain)")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "Grid rows when no map is given (default from config)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "Grid columns when no map is given (default from config)")
	cmd.Flags().BoolVar(&f.maze, "maze", false, "Carve a random maze into the grid")
	cmd.Flags().Float64Var(&f.walls, "walls", 0, "Scatter random walls over this share of cells (0-1)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for --maze and --walls (default: time based)")
	cmd.MarkFlagsMutuallyExclusive("map", "rows")
	cmd.MarkFlagsMutuallyExclusive("map", "cols")
}

// build returns the map file's grid or a blank one sized by flags or cfg.
// Configured weights are applied either way.
func (f *gridFlags) build(cfg *config.Config) (*grid.Grid, error) {
	table, err := cfg.NodeTypes()
	if err != nil {
		return nil, err
	}
	if f.walls < 0 || f.walls > 1 {
		return nil, fmt.Errorf("%w: --walls %v", builder.ErrInvalidProbability, f.walls)
	}
	g, err := f.load(cfg, table)
	if err != nil {
		return nil, err
	}

	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if f.maze {
		if err := builder.Maze(g, builder.WithSeed(seed)); err != nil {
			return nil, err
		}
	}
	if f.walls > 0 {
		if _, err := builder.Scatter(g, builder.WithSeed(seed), builder.WithDensity(grid.Wall, f.walls)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (f *gridFlags) load(cfg *config.Config, table *grid.NodeTypeTable) (*grid.Grid, error) {
	if f.mapFile != "" {
		file, err := os.Open(f.mapFile)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		g, err := grid.Parse(file, table)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.mapFile, err)
		}
		return g, nil
	}

	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	if f.rows > 0 {
		rows = f.rows
	}
	if f.cols > 0 {
		cols = f.cols
	}
	return grid.New(rows, cols, table)
}

// pickAlgorithm parses name, falling back to the configured default.
func pickAlgorithm(name string, cfg *config.Config) (search.Algorithm, error) {
	if name == "" {
		return cfg.Algorithm()
	}
	return search.ParseAlgorithm(name)
}

// pickSpeed parses name, falling back to the configured default.
func pickSpeed(name string, cfg *config.Config) (animation.Speed, error) {
	if name == "" {
		return cfg.Speed()
	}
	return animation.ParseSpeed(name)
}
