package spantree

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/frontier"
)

// ErrNilMaze indicates a nil *core.Maze was passed to Grow.
var ErrNilMaze = errors.New("spantree: maze is nil")

// Priority scores a proposed adoption; lower is served earlier by
// priority-based frontiers.
type Priority func(parent, cell *core.Cell) float64

// Options bundles the engine's configuration.
type Options struct {
	root        *core.Cell
	rng         *rand.Rand
	priority    Priority
	binary      bool
	shuffle     bool
	newFrontier func(*rand.Rand) frontier.Frontier
}

// DefaultOptions returns the engine defaults: random root, time-seeded
// RNG, shuffled neighbor fan-out, random-out frontier, no priority
// function, no fan-out bound.
func DefaultOptions() Options {
	return Options{
		shuffle: true,
		newFrontier: func(rng *rand.Rand) frontier.Frontier {
			return frontier.NewUnqueue(rng)
		},
	}
}

// Option overrides one engine default.
type Option func(*Options)

// WithRoot fixes the cell the tree grows from; default is a random cell.
func WithRoot(c *core.Cell) Option {
	return func(o *Options) { o.root = c }
}

// WithRand supplies the random source; a fixed seed reproduces the
// carve exactly.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithFrontier replaces the pending-entry container and with it the
// search discipline.
func WithFrontier(f frontier.Frontier) Option {
	return func(o *Options) {
		if f != nil {
			o.newFrontier = func(*rand.Rand) frontier.Frontier { return f }
		}
	}
}

// withFrontierFunc defers container construction until the engine's RNG
// is resolved, so seeded runs stay reproducible.
func withFrontierFunc(fn func(*rand.Rand) frontier.Frontier) Option {
	return func(o *Options) { o.newFrontier = fn }
}

// WithPriority scores adoptions for priority-based frontiers. The
// function only scores real adoptions, so parent is never nil; the root
// enters at priority zero without being scored. Without a priority
// function, entries enter with frontier.NoPriority and the Heap draws
// uniform weights.
func WithPriority(p Priority) Option {
	return func(o *Options) { o.priority = p }
}

// WithBinary bounds the fan-out so the carved tree is binary: a parent
// keeps at most two children (the root at most two passages total).
func WithBinary() Option {
	return func(o *Options) { o.binary = true }
}

// WithoutShuffle keeps the construction order of each cell's neighbor
// list when enqueuing, exposing the directional bias the shuffle
// normally hides. Useful for demonstrations and deterministic fixtures.
func WithoutShuffle() Option {
	return func(o *Options) { o.shuffle = false }
}
