package hybridabw

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazegrid/aldousbroder"
	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/wilson"
)

// ErrNilMaze indicates a nil *core.Maze was passed to On.
var ErrNilMaze = errors.New("hybridabw: maze is nil")

// DefaultDensity is the unvisited share at which the carve switches
// from random walk to loop-erased walks.
const DefaultDensity = 0.5

// Options bundles the hybrid's configuration.
type Options struct {
	rng      *rand.Rand
	start    *core.Cell
	density  float64
	maxSteps int
}

// DefaultOptions returns the defaults: time-seeded RNG, random start,
// DefaultDensity threshold, no step budget.
func DefaultOptions() Options { return Options{density: DefaultDensity} }

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

// WithStart fixes the cell the opening random walk starts from.
func WithStart(c *core.Cell) Option {
	return func(o *Options) { o.start = c }
}

// WithDensity sets the unvisited share below which the carve switches
// to loop-erased walks. At or below 0 the carve is pure Aldous-Broder;
// at or above 1, pure Wilson.
func WithDensity(d float64) Option {
	return func(o *Options) { o.density = d }
}

// WithMaxSteps caps the loop-erased phase's total steps; exceeding it
// surfaces wilson.ErrStepBudget. Zero or negative means no cap.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.maxSteps = n }
}

// On carves a spanning tree in two phases: random walk down to the
// density threshold, loop-erased walks for the rest.
func On(m *core.Maze, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	walkOpts := []aldousbroder.Option{aldousbroder.WithRand(o.rng)}
	if o.start != nil {
		walkOpts = append(walkOpts, aldousbroder.WithStart(o.start))
	}
	walk, err := aldousbroder.NewWalk(m, walkOpts...)
	if err != nil {
		return err
	}

	// Phase 1: plain random walk until the unvisited share drops below
	// the threshold. The floor is v·density; a threshold at or above 1
	// skips the walk entirely (the floor exceeds the initial count).
	floor := int(math.Ceil(o.density * float64(m.V())))
	if floor < 1 {
		floor = 1 // an unbounded walk would never hand over
	}
	if _, err := walk.Run(aldousbroder.Budget{MinUnvisited: floor}); err != nil {
		return err
	}
	if walk.Done() {
		return nil
	}

	// Phase 2: loop-erased walks into the carved forest.
	wilsonOpts := []wilson.Option{wilson.WithRand(o.rng)}
	if o.maxSteps > 0 {
		wilsonOpts = append(wilsonOpts, wilson.WithMaxSteps(o.maxSteps))
	}
	return wilson.Complete(m, walk.Unvisited(), wilsonOpts...)
}
