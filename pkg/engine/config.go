package engine

import (
	"fmt"
	"maps"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/algebra/pkg/pool"
)

// Actions an engine can apply to each input.
const (
	ActionSimplify = "simplify"
	ActionEval     = "eval"
	ActionLinear   = "linear"
	ActionSolve    = "solve"
	ActionPlot     = "plot"
	ActionTokens   = "tokens"
)

// Actions lists the supported actions.
var Actions = []string{ActionSimplify, ActionEval, ActionLinear, ActionSolve, ActionPlot, ActionTokens}

// PlotConfig selects the axes and the x sample points for ActionPlot.
type PlotConfig struct {
	X      string  `yaml:"x" json:"x"`
	Y      string  `yaml:"y" json:"y"`
	From   float64 `yaml:"from" json:"from"`
	To     float64 `yaml:"to" json:"to"`
	Points int     `yaml:"points" json:"points"`
}

// Config holds all parameters for a session.
type Config struct {
	Action   string             `yaml:"action" json:"action"`
	Var      string             `yaml:"var" json:"var"`
	Bindings map[string]float64 `yaml:"bindings" json:"bindings,omitempty"`
	Plot     PlotConfig         `yaml:"plot" json:"plot"`
	Workers  int                `yaml:"workers" json:"workers"`
	Format   string             `yaml:"format" json:"format"` // "text", "json" or "latex"
	Template string             `yaml:"template" json:"template,omitempty"`
	Verbose  bool               `yaml:"verbose" json:"verbose"`
	Dump     bool               `yaml:"dump" json:"dump"`

	// Random, when positive, replaces the inputs with that many generated
	// expressions. Equations are generated for solve and plot.
	Random int    `yaml:"random" json:"random,omitempty"`
	Pool   string `yaml:"pool" json:"pool,omitempty"`
	Depth  int    `yaml:"depth" json:"depth,omitempty"`
	Seed   int64  `yaml:"seed" json:"seed,omitempty"` // 0 = random
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Action:   ActionSimplify,
		Var:      "x",
		Bindings: map[string]float64{},
		Plot: PlotConfig{
			X:      "x",
			Y:      "y",
			From:   0,
			To:     10,
			Points: 11,
		},
		Workers: runtime.NumCPU(),
		Format:  "text",
		Pool:    "linear",
		Depth:   3,
		Seed:    0,
	}
}

// LoadConfig reads a YAML file over base. Keys missing from the file keep
// their value from base.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	cfg := base
	cfg.Bindings = maps.Clone(base.Bindings)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = map[string]float64{}
	}
	return cfg, nil
}

// Validate checks that the config names a known action and format.
func (c Config) Validate() error {
	known := false
	for _, a := range Actions {
		if a == c.Action {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown action: %s (available: %v)", c.Action, Actions)
	}
	switch c.Format {
	case "text", "json", "latex":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	if (c.Action == ActionLinear || c.Action == ActionSolve) && c.Var == "" {
		return fmt.Errorf("action %s needs a variable", c.Action)
	}
	if c.Action == ActionPlot {
		if c.Plot.X == "" || c.Plot.Y == "" || c.Plot.X == c.Plot.Y {
			return fmt.Errorf("plot needs two distinct axis names, got %q and %q", c.Plot.X, c.Plot.Y)
		}
		if c.Plot.Points <= 0 {
			return fmt.Errorf("plot needs a positive number of points, got %d", c.Plot.Points)
		}
	}
	if c.Random > 0 {
		if _, err := pool.Get(c.Pool); err != nil {
			return err
		}
		if c.Depth <= 0 {
			return fmt.Errorf("random inputs need a positive depth, got %d", c.Depth)
		}
	}
	return nil
}
