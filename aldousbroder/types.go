package aldousbroder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegrid/core"
)

var (
	// ErrNilMaze indicates a nil *core.Maze was passed in.
	ErrNilMaze = errors.New("aldousbroder: maze is nil")

	// ErrStepBudget indicates a one-shot walk exceeded its step budget
	// before covering the grid.
	ErrStepBudget = errors.New("aldousbroder: step budget exhausted")

	// ErrIsolatedCell indicates the walk stands on a cell with no
	// neighbors and cannot move.
	ErrIsolatedCell = errors.New("aldousbroder: cell has no neighbors")
)

// Budget bounds one Run of a resumable Walk. Zero values mean
// unbounded: no step cap, no unvisited floor.
type Budget struct {
	// MaxSteps pauses the run after this many walk steps.
	MaxSteps int
	// MinUnvisited pauses the run once fewer than this many cells
	// remain unvisited.
	MinUnvisited int
}

// Outcome reports how a Run ended.
type Outcome int

const (
	// Done means the walk covered the grid; the maze is fully carved.
	Done Outcome = iota
	// BudgetExhausted means the run paused on its budget; call Run
	// again to continue.
	BudgetExhausted
)

// String returns the outcome's name.
func (oc Outcome) String() string {
	switch oc {
	case Done:
		return "done"
	case BudgetExhausted:
		return "budget exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", int(oc))
	}
}

// Options bundles the carvers' configuration.
type Options struct {
	rng      *rand.Rand
	start    *core.Cell
	maxSteps int
}

// DefaultOptions returns the defaults: time-seeded RNG, random start,
// no step budget.
func DefaultOptions() Options { return Options{} }

// Option overrides one default.
type Option func(*Options)

// WithRand supplies the random source; a fixed seed reproduces the
// maze exactly.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithStart fixes the cell the walk starts from; default is random.
func WithStart(c *core.Cell) Option {
	return func(o *Options) { o.start = c }
}

// WithMaxSteps caps the one-shot walks; exceeding the cap aborts with
// ErrStepBudget. Zero or negative means no cap. Walk ignores it in
// favor of Budget.MaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.maxSteps = n }
}
