// Package dynamics defines the iterator's states, options, and sentinel
// errors.
package dynamics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snowdrift/game"
)

// Sentinel errors for the best-response iterator.
var (
	// ErrNilGraph indicates Run was called without a graph.
	ErrNilGraph = errors.New("dynamics: graph must not be nil")

	// ErrOptionViolation indicates a WithX option received a meaningless value.
	ErrOptionViolation = errors.New("dynamics: invalid option value")
)

// DefaultMaxPasses bounds the number of flip-producing passes before the
// iterator gives up and reports MaxPassesReached.
const DefaultMaxPasses = 100

// State is the iterator's lifecycle state.
type State uint8

const (
	// Running means the sweep loop is still in progress.
	Running State = iota
	// Converged means a full pass produced zero flips (terminal).
	Converged
	// MaxPassesReached means the pass budget ran out first (terminal).
	MaxPassesReached
)

// String renders the state for logs and reports.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Converged:
		return "Converged"
	case MaxPassesReached:
		return "MaxPassesReached"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// FlipHook observes a single strategy flip: the 1-based pass number, the
// node, and its labels before and after. Hooks must not mutate the graph.
type FlipHook func(pass, node int, from, to game.Strategy)

// Options holds the iterator's tunable parameters.
type Options struct {
	maxPasses int
	onFlip    FlipHook
	err       error // first invalid option, surfaced by Run
}

// DefaultOptions returns the standard configuration: DefaultMaxPasses
// and no hook.
func DefaultOptions() Options {
	return Options{maxPasses: DefaultMaxPasses}
}

// Option customizes a single Run invocation.
type Option func(*Options)

// WithMaxPasses overrides the pass budget; n must be at least 1.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("WithMaxPasses(%d): %w", n, ErrOptionViolation)
			return
		}
		o.maxPasses = n
	}
}

// WithFlipHook registers an observation callback; h must be non-nil.
func WithFlipHook(h FlipHook) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("WithFlipHook(nil): %w", ErrOptionViolation)
			return
		}
		o.onFlip = h
	}
}

// Result summarizes a finished run.
type Result struct {
	// State is the terminal state: Converged or MaxPassesReached.
	State State
	// Passes counts passes that flipped at least one node.
	Passes int
	// Flips counts all strategy flips across the run.
	Flips int
}
