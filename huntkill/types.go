package huntkill

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegrid/core"
)

var (
	// ErrNilMaze indicates a nil *core.Maze was passed to On.
	ErrNilMaze = errors.New("huntkill: maze is nil")

	// ErrDisconnected indicates the hunt found no unvisited cell
	// bordering the tree while unvisited cells remain. The partial
	// carving is left on the maze.
	ErrDisconnected = errors.New("huntkill: grid is not connected")
)

// Strategy selects how the hunt phase locates its next cell.
type Strategy int

const (
	// HuntFrontier banks candidates during the kill and serves them
	// back in random order.
	HuntFrontier Strategy = iota
	// HuntRandomScan draws unvisited cells in random order.
	HuntRandomScan
	// HuntOrderedScan scans unvisited cells in grid order; biased, but
	// cheap and deterministic.
	HuntOrderedScan
)

// String returns the strategy's name.
func (s Strategy) String() string {
	switch s {
	case HuntFrontier:
		return "frontier"
	case HuntRandomScan:
		return "random scan"
	case HuntOrderedScan:
		return "ordered scan"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Phase labels the two alternating phases for the progress hook.
type Phase int

const (
	// PhaseKill is the restricted random walk.
	PhaseKill Phase = iota
	// PhaseHunt is the search for the next foothold.
	PhaseHunt
)

// String returns the phase's name.
func (p Phase) String() string {
	switch p {
	case PhaseKill:
		return "kill"
	case PhaseHunt:
		return "hunt"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PhaseFunc observes one finished phase: how many candidates it
// examined and how many cells it adopted into the tree.
type PhaseFunc func(phase Phase, scanned, added int)

// Options bundles the carver's configuration.
type Options struct {
	rng      *rand.Rand
	start    *core.Cell
	strategy Strategy
	onPhase  PhaseFunc
}

// DefaultOptions returns the defaults: time-seeded RNG, random start,
// frontier hunting, no phase hook.
func DefaultOptions() Options { return Options{strategy: HuntFrontier} }

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

// WithStart fixes the cell the first kill starts from.
func WithStart(c *core.Cell) Option {
	return func(o *Options) { o.start = c }
}

// WithStrategy selects the hunt strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithOnPhase installs a hook observing every finished phase.
func WithOnPhase(fn PhaseFunc) Option {
	return func(o *Options) { o.onPhase = fn }
}
