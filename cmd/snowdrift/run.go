package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/snowdrift/sweep"
)

// outcomeJSON is the machine-readable shape of one ratio's result.
type outcomeJSON struct {
	Ratio       float64 `json:"ratio"`
	State       string  `json:"state"`
	Passes      int     `json:"passes"`
	Cooperators []int   `json:"cooperators"`
	Covered     bool    `json:"covered"`
	Minimal     bool    `json:"minimal"`
	Verdict     string  `json:"verdict"`
	Path        string  `json:"path,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// resultJSON is the machine-readable shape of a whole sweep.
type resultJSON struct {
	RunID    string        `json:"run_id"`
	KMax     int           `json:"k_max"`
	Outcomes []outcomeJSON `json:"outcomes"`
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		topology   string
		nodes      int
		edgeProb   float64
		ratiosRaw  []string
		seed       int64
		freshSeed  bool
		maxPasses  int
		outDir     string
		asJSON     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the r-sweep and print the cover verdicts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := sweep.DefaultConfig()
			if configPath != "" {
				loaded, err := sweep.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags given explicitly win over file values.
			flags := cmd.Flags()
			if flags.Changed("topology") {
				cfg.Topology = topology
			}
			if flags.Changed("nodes") {
				cfg.Nodes = nodes
			}
			if flags.Changed("edge-prob") {
				cfg.EdgeProbability = edgeProb
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("fresh-seed") {
				cfg.FreshSeedPerRatio = freshSeed
			}
			if flags.Changed("max-passes") {
				cfg.MaxPasses = maxPasses
			}
			if flags.Changed("out") {
				cfg.OutDir = outDir
			}
			if flags.Changed("ratios") {
				parsed, err := parseRatios(ratiosRaw)
				if err != nil {
					return err
				}
				cfg.Ratios = parsed
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			res, err := sweep.Run(cfg, logger)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, res)
			}

			return printTable(cmd, res)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&topology, "topology", sweep.TopologyPrism, "graph topology: prism or random")
	cmd.Flags().IntVar(&nodes, "nodes", 10, "node count for the random topology")
	cmd.Flags().Float64Var(&edgeProb, "edge-prob", 0.3, "edge probability for the random topology")
	cmd.Flags().StringSliceVar(&ratiosRaw, "ratios", nil, "benefit-cost ratios to sweep (default 0.01,0.05,0.1,0.3,0.5)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for topology and initial labeling")
	cmd.Flags().BoolVar(&freshSeed, "fresh-seed", false, "derive a fresh seed per ratio instead of sharing one instance")
	cmd.Flags().IntVar(&maxPasses, "max-passes", 100, "pass budget for the best-response loop")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for DOT figures (none written if empty)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "development logging")

	return cmd
}

// newLogger builds the CLI logger: production JSON by default,
// console output under --verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// parseRatios converts the --ratios flag values to floats.
func parseRatios(raw []string) ([]float64, error) {
	out := make([]float64, 0, len(raw))
	for _, s := range raw {
		r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
		out = append(out, r)
	}

	return out, nil
}

func printJSON(cmd *cobra.Command, res *sweep.Result) error {
	doc := resultJSON{RunID: res.RunID, KMax: res.KMax}
	for _, o := range res.Outcomes {
		oj := outcomeJSON{
			Ratio:       o.Ratio,
			State:       o.State.String(),
			Passes:      o.Passes,
			Cooperators: o.Cooperators,
			Verdict:     o.Verdict(),
			Path:        o.Path,
		}
		if o.Report != nil {
			oj.Covered = o.Report.Covered
			oj.Minimal = o.Report.Minimal
		}
		if o.Err != nil {
			oj.Error = o.Err.Error()
		}
		doc.Outcomes = append(doc.Outcomes, oj)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))

	return nil
}

func printTable(cmd *cobra.Command, res *sweep.Result) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run %s (k_max=%d, threshold 1/k_max=%.3f)\n", res.RunID, res.KMax, 1/float64(res.KMax))
	fmt.Fprintln(w, "R\tSTATE\tPASSES\tCOOPERATORS\tVERDICT")
	for _, o := range res.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%g\t-\t-\t-\t%s\n", o.Ratio, o.Verdict())
			continue
		}
		fmt.Fprintf(w, "%g\t%s\t%d\t%v\t%s\n", o.Ratio, o.State, o.Passes, o.Cooperators, o.Verdict())
	}

	return w.Flush()
}
