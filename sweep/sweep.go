package sweep

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/snowdrift/cover"
	"github.com/katalvlaran/snowdrift/dot"
	"github.com/katalvlaran/snowdrift/dynamics"
	"github.com/katalvlaran/snowdrift/game"
)

// outDirPerm is the mode for created artifact directories.
const outDirPerm = 0o755

// Outcome is the result of one ratio's run.
type Outcome struct {
	// Ratio is the benefit-cost ratio of this run.
	Ratio float64
	// State is the iterator's terminal state.
	State dynamics.State
	// Passes counts flip-producing passes.
	Passes int
	// Cooperators is the final cooperator set (ascending).
	Cooperators []int
	// Report is the cover verdict on the final configuration.
	Report *cover.Report
	// DOT is the rendered figure.
	DOT string
	// Path is the written artifact, when an output directory was set.
	Path string
	// Err is set when this ratio failed (typically ErrRatioOutOfRange);
	// the other fields are then zero.
	Err error
}

// Converged reports whether the dynamic reached a fixed point.
func (o Outcome) Converged() bool { return o.State == dynamics.Converged }

// Verdict renders the outcome as a one-line human verdict.
func (o Outcome) Verdict() string {
	if o.Err != nil {
		return "error: " + o.Err.Error()
	}

	var verdict string
	switch {
	case o.Report == nil || !o.Report.Covered:
		verdict = "not a node cover"
	case !o.Report.Minimal:
		verdict = "node cover, not minimal"
	default:
		verdict = "minimal node cover"
	}
	if !o.Converged() {
		verdict += " (non-converged)"
	}

	return verdict
}

// Result is a finished sweep: one Outcome per configured ratio, in
// order, under a single run id.
type Result struct {
	// RunID correlates log lines and artifacts of this invocation.
	RunID string
	// KMax is the maximum degree of the (shared-seed) topology.
	KMax int
	// Outcomes holds one entry per configured ratio.
	Outcomes []Outcome
}

// Run executes the sweep described by cfg. A nil logger disables
// logging. Fatal errors (bad config, failed graph construction) abort
// the whole sweep; per-ratio failures land in the matching Outcome.
func Run(cfg Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := buildInstance(cfg, cfg.Seed)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID: uuid.NewString(),
		KMax:  base.MaxDegree(),
	}
	logger.Info("sweep starting",
		zap.String("run_id", res.RunID),
		zap.String("topology", cfg.Topology),
		zap.Int("nodes", base.NodeCount()),
		zap.Int("edges", base.EdgeCount()),
		zap.Int("k_max", res.KMax),
		zap.Int64("seed", cfg.Seed),
		zap.Float64s("ratios", cfg.Ratios),
	)

	// A disconnected topology can never carry a strictly minimal cover
	// when an isolated node ends up cooperating; say so once up front.
	if comps := base.ConnectedComponents(); len(comps) > 1 {
		logger.Warn("topology is disconnected",
			zap.String("run_id", res.RunID),
			zap.Int("components", len(comps)),
		)
	}

	if cfg.OutDir != "" {
		if err = os.MkdirAll(cfg.OutDir, outDirPerm); err != nil {
			return nil, fmt.Errorf("sweep: create out dir: %w", err)
		}
	}

	for i, ratio := range cfg.Ratios {
		outcome := runRatio(cfg, base, i, ratio)
		if outcome.Err != nil {
			logger.Warn("ratio skipped",
				zap.String("run_id", res.RunID),
				zap.Float64("ratio", ratio),
				zap.Error(outcome.Err),
			)
		} else {
			logger.Info("ratio finished",
				zap.String("run_id", res.RunID),
				zap.Float64("ratio", ratio),
				zap.Stringer("state", outcome.State),
				zap.Int("passes", outcome.Passes),
				zap.Int("cooperators", len(outcome.Cooperators)),
				zap.String("verdict", outcome.Verdict()),
			)
		}
		res.Outcomes = append(res.Outcomes, outcome)
	}

	return res, nil
}

// runRatio executes a single ratio on its own graph instance.
func runRatio(cfg Config, base *game.Graph, i int, ratio float64) Outcome {
	outcome := Outcome{Ratio: ratio}

	var g *game.Graph
	if cfg.FreshSeedPerRatio {
		fresh, err := buildInstance(cfg, cfg.Seed+1+int64(i))
		if err != nil {
			outcome.Err = err
			return outcome
		}
		g = fresh
	} else {
		// Shared-seed mode: identical starting point per ratio, but a
		// private copy so runs stay independent.
		g = base.Clone()
	}

	dyn, err := dynamics.Run(g, ratio, dynamics.WithMaxPasses(cfg.MaxPasses))
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.State = dyn.State
	outcome.Passes = dyn.Passes
	outcome.Cooperators = g.Cooperators()

	rep, err := cover.Verify(g)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Report = rep

	title := fmt.Sprintf("snowdrift r=%g: %s", ratio, outcome.Verdict())
	doc, err := dot.Marshal(g, title)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.DOT = doc

	if cfg.OutDir != "" {
		path := filepath.Join(cfg.OutDir, fmt.Sprintf("snowdrift_r_%.3f.dot", ratio))
		if err = os.WriteFile(path, []byte(doc), 0o644); err != nil {
			outcome.Err = fmt.Errorf("sweep: write %s: %w", path, err)
			return outcome
		}
		outcome.Path = path
	}

	return outcome
}

// buildInstance generates a fully initialized graph (topology + random
// labeling) from one seed.
func buildInstance(cfg Config, seed int64) (*game.Graph, error) {
	rng := rand.New(rand.NewSource(seed))

	var g *game.Graph
	switch cfg.Topology {
	case TopologyPrism:
		g = game.NewPrism()
	case TopologyRandom:
		random, err := game.NewRandom(cfg.Nodes, cfg.EdgeProbability, rng)
		if err != nil {
			return nil, fmt.Errorf("sweep: build topology: %w", err)
		}
		g = random
	default:
		return nil, fmt.Errorf("sweep: topology %q: %w", cfg.Topology, ErrUnknownTopology)
	}

	if err := g.RandomizeStrategies(rng); err != nil {
		return nil, fmt.Errorf("sweep: initial labeling: %w", err)
	}

	return g, nil
}
