package sweep

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/snowdrift/dynamics"
)

// Sentinel errors for sweep configuration.
var (
	// ErrUnknownTopology indicates a topology name other than prism/random.
	ErrUnknownTopology = errors.New("sweep: unknown topology")

	// ErrNoRatios indicates an empty ratio list.
	ErrNoRatios = errors.New("sweep: at least one ratio is required")

	// ErrBadMaxPasses indicates a pass budget below one.
	ErrBadMaxPasses = errors.New("sweep: max_passes must be at least 1")
)

// Supported topology names.
const (
	TopologyPrism  = "prism"
	TopologyRandom = "random"
)

// Default knobs for DefaultConfig.
const (
	defaultNodes    = 10
	defaultEdgeProb = 0.3
	defaultSeed     = 1
)

// Config holds every knob of a sweep run. Zero values are not usable
// directly; start from DefaultConfig or Load.
type Config struct {
	// Topology selects the graph family: "prism" or "random".
	Topology string `yaml:"topology"`

	// Nodes is the node count for the random topology (prism is fixed at 10).
	Nodes int `yaml:"nodes"`

	// EdgeProbability is the G(n,p) edge probability for the random topology.
	EdgeProbability float64 `yaml:"edge_probability"`

	// Ratios are the benefit-cost ratios to sweep, each in (0,1).
	Ratios []float64 `yaml:"ratios"`

	// Seed feeds graph generation and the initial strategy labeling.
	Seed int64 `yaml:"seed"`

	// FreshSeedPerRatio derives seed+1+i for ratio index i instead of
	// sharing one instance across the sweep.
	FreshSeedPerRatio bool `yaml:"fresh_seed_per_ratio"`

	// MaxPasses bounds the best-response loop (default 100).
	MaxPasses int `yaml:"max_passes"`

	// OutDir, when non-empty, receives one DOT file per ratio.
	OutDir string `yaml:"out_dir"`
}

// DefaultRatios returns the canonical sweep set.
func DefaultRatios() []float64 {
	return []float64{0.01, 0.05, 0.1, 0.3, 0.5}
}

// DefaultConfig returns the canonical configuration: the 10-node prism,
// the default ratio set, a shared seed, and the standard pass budget.
func DefaultConfig() Config {
	return Config{
		Topology:        TopologyPrism,
		Nodes:           defaultNodes,
		EdgeProbability: defaultEdgeProb,
		Ratios:          DefaultRatios(),
		Seed:            defaultSeed,
		MaxPasses:       dynamics.DefaultMaxPasses,
	}
}

// Load reads a YAML file over DefaultConfig, so omitted fields keep
// their defaults, then validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sweep: read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("sweep: parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the structural knobs. Per-ratio range errors are NOT
// fatal here: they surface as per-Outcome errors during Run, so one bad
// ratio cannot sink the rest of the sweep.
func (c Config) Validate() error {
	switch c.Topology {
	case TopologyPrism, TopologyRandom:
	default:
		return fmt.Errorf("sweep: topology %q: %w", c.Topology, ErrUnknownTopology)
	}
	if len(c.Ratios) == 0 {
		return ErrNoRatios
	}
	if c.MaxPasses < 1 {
		return fmt.Errorf("sweep: max_passes=%d: %w", c.MaxPasses, ErrBadMaxPasses)
	}

	return nil
}
