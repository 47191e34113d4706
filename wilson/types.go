package wilson

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazegrid/core"
)

var (
	// ErrNilMaze indicates a nil *core.Maze was passed to On.
	ErrNilMaze = errors.New("wilson: maze is nil")

	// ErrStepBudget indicates the walk exceeded the configured step
	// budget before the maze was finished.
	ErrStepBudget = errors.New("wilson: step budget exhausted")

	// ErrIsolatedCell indicates the walk reached a cell with no
	// neighbors; such a cell can never join the tree.
	ErrIsolatedCell = errors.New("wilson: cell has no neighbors")
)

// PassFunc observes one finished pass: the unvisited count after the
// pass, the total steps walked so far, and the carved path's length.
type PassFunc func(unvisited, steps, pathLen int)

// Options bundles the carver's configuration.
type Options struct {
	rng      *rand.Rand
	start    *core.Cell
	maxSteps int
	onPass   PassFunc
}

// DefaultOptions returns the defaults: time-seeded RNG, random seed
// cell, no step budget, no pass hook.
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

// WithStart fixes the first visited cell the walks aim for; default is
// a random cell.
func WithStart(c *core.Cell) Option {
	return func(o *Options) { o.start = c }
}

// WithMaxSteps caps the total number of walk steps across all passes.
// Exceeding the cap aborts with ErrStepBudget; zero or negative means
// no cap.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.maxSteps = n }
}

// WithOnPass installs a hook observing every finished pass.
func WithOnPass(fn PassFunc) Option {
	return func(o *Options) { o.onPass = fn }
}
