// Package config loads, validates and saves the pathviz TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config holds pathviz configuration.
type Config struct {
	Grid      GridConfig         `toml:"grid"`
	Search    SearchConfig       `toml:"search"`
	Animation AnimationConfig    `toml:"animation"`
	Weights   map[string]float64 `toml:"weights" validate:"dive,gte=1,lte=100"`
	Log       LogConfig          `toml:"log"`
}

// GridConfig sizes the grid created when no map file is given.
type GridConfig struct {
	Rows int `toml:"rows" validate:"min=1,max=200"`
	Cols int `toml:"cols" validate:"min=1,max=200"`
}

// SearchConfig selects the default algorithm.
type SearchConfig struct {
	Algorithm string `toml:"algorithm" validate:"required"`
}

// AnimationConfig controls playback.
type AnimationConfig struct {
	Speed string `toml:"speed" validate:"required"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid:      GridConfig{Rows: 20, Cols: 50},
		Search:    SearchConfig{Algorithm: search.Dijkstra.Alias()},
		Animation: AnimationConfig{Speed: animation.Normal.String()},
		Weights:   defaultWeights(),
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

func defaultWeights() map[string]float64 {
	w := make(map[string]float64)
	for _, nt := range grid.DefaultNodeTypes().Types() {
		if nt.Name != grid.Wall {
			w[nt.Name] = nt.Weight
		}
	}
	return w
}

// Dir returns the pathviz config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "pathviz")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the default config file. A missing file yields defaults.
func Load() (*Config, error) {
	cfg, err := LoadFile(Path())
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads and validates path. Keys absent from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the default path.
func Save(cfg *Config) error {
	return SaveFile(cfg, Path())
}

// SaveFile writes cfg to path, creating parent directories.
func SaveFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return cfg.Encode(f)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
// It reports whether a file was written.
func EnsureExists() (bool, error) {
	if _, err := os.Stat(Path()); err == nil {
		return false, nil // already exists
	}
	return true, Save(Default())
}

// Validate checks ranges with struct tags, then the enumerated values
// and weight names against the default node types.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if c.Grid.Rows*c.Grid.Cols < 2 {
		return fmt.Errorf("grid: %dx%d leaves no room for start and finish", c.Grid.Rows, c.Grid.Cols)
	}
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("search.algorithm: %w", err)
	}
	if _, err := animation.ParseSpeed(c.Animation.Speed); err != nil {
		return fmt.Errorf("animation.speed: %w", err)
	}
	table := grid.DefaultNodeTypes()
	for _, name := range c.weightNames() {
		if name == grid.Wall {
			return fmt.Errorf("weights.%s: %w", name, grid.ErrImmutableType)
		}
		if _, ok := table.Lookup(name); !ok {
			return fmt.Errorf("weights.%s: %w", name, grid.ErrUnknownNodeType)
		}
	}
	return nil
}

// Algorithm returns the configured algorithm.
func (c *Config) Algorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Search.Algorithm)
}

// Speed returns the configured playback speed.
func (c *Config) Speed() (animation.Speed, error) {
	return animation.ParseSpeed(c.Animation.Speed)
}

// Apply pushes the configured weights into table.
func (c *Config) Apply(table *grid.NodeTypeTable) error {
	for _, name := range c.weightNames() {
		if err := table.SetWeight(name, c.Weights[name]); err != nil {
			return fmt.Errorf("weights.%s: %w", name, err)
		}
	}
	return nil
}

// NodeTypes returns the default table with the configured weights applied.
func (c *Config) NodeTypes() (*grid.NodeTypeTable, error) {
	table := grid.DefaultNodeTypes()
	if err := c.Apply(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (c *Config) weightNames() []string {
	names := make([]string, 0, len(c.Weights))
	for name := range c.Weights {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, e.Param())
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, e.Param())
		case "required":
			return fmt.Errorf("%s: field is required", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}
