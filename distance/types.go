package distance

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazegrid/core"
)

var (
	// ErrNilMaze indicates a nil *core.Maze was passed to BellmanFord.
	ErrNilMaze = errors.New("distance: maze is nil")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from
	// the source; the returned table's distances are invalidated and the
	// affected cells flagged.
	ErrNegativeCycle = errors.New("distance: negative-weight cycle")
)

// Options bundles the solver's configuration.
type Options struct {
	source   *core.Cell
	rng      *rand.Rand
	weighted bool
}

// DefaultOptions returns the defaults: random source, unweighted
// (step-counting) relaxation.
func DefaultOptions() Options { return Options{} }

// Option overrides one default.
type Option func(*Options)

// WithSource fixes the source cell; default is a random cell.
func WithSource(c *core.Cell) Option {
	return func(o *Options) { o.source = c }
}

// WithRand supplies the random source used to pick a default source
// cell.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithWeights sums passage weights instead of counting steps.
func WithWeights() Option {
	return func(o *Options) { o.weighted = true }
}
