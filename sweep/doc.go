// Package sweep orchestrates one simulation run per benefit-cost ratio:
// build (or clone) a seeded graph instance, drive the best-response
// dynamic to a terminal state, verify the cover verdict, and render the
// DOT figure.
//
// The default ratio set is {0.01, 0.05, 0.1, 0.3, 0.5}. By default every
// ratio starts from the same seeded graph and initial labeling (cloned
// per ratio, so runs stay independent but comparable); set
// Config.FreshSeedPerRatio to derive a new seed for each ratio instead.
//
// Ratios fail independently: an out-of-range ratio produces an Outcome
// carrying the error while the remaining ratios proceed. A run that hits
// the pass budget is not an error either; its Outcome keeps the
// MaxPassesReached state and the verdict is taken from the last-observed
// configuration, flagged as non-converged.
//
// Configuration loads from YAML (Load) or starts from DefaultConfig;
// progress is logged through an injected zap logger; each invocation
// gets a UUID run id for correlating log lines and artifacts.
package sweep
