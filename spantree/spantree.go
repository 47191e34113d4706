package spantree

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegrid/core"
	"github.com/katalvlaran/mazegrid/frontier"
)

// Grow carves a spanning tree (or, on disconnected grids, a spanning
// forest) of the maze's cells. The frontier container chosen through the
// options decides the algorithm; see the package documentation.
//
// Grow mutates the maze in place and never fails after validation; the
// caller inspects Maze.IsPerfect for the result.
func Grow(m *core.Maze, opts ...Option) error {
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

	cells := m.Grid().Cells()
	root := o.root
	if root == nil {
		root = cells[o.rng.Intn(len(cells))]
	}

	f := o.newFrontier(o.rng)
	visited := mapset.New[*core.Cell]()
	// The root enters at a fixed zero priority; the priority function
	// only ever scores real adoptions, so it never sees a nil parent.
	f.Enter(frontier.Entry{Cell: root}, 0)

	for f.Len() > 0 {
		e, _ := f.Serve()
		if visited.Has(e.Cell) {
			continue // stale serve, discarded lazily
		}
		if e.Parent != nil && o.full(e.Parent, root) {
			continue
		}
		if e.Parent != nil {
			e.Parent.Link(e.Cell)
		}
		visited.Put(e.Cell)

		nbrs := e.Cell.Neighbors()
		if o.shuffle {
			o.rng.Shuffle(len(nbrs), func(i, j int) {
				nbrs[i], nbrs[j] = nbrs[j], nbrs[i]
			})
		}
		for _, n := range nbrs {
			if !visited.Has(n) {
				f.Enter(frontier.Entry{Parent: e.Cell, Cell: n}, o.score(e.Cell, n))
			}
		}
	}
	return nil
}

// score resolves the priority for one proposed adoption.
func (o *Options) score(parent, cell *core.Cell) float64 {
	if o.priority == nil {
		return frontier.NoPriority
	}
	return o.priority(parent, cell)
}

// full reports whether the binary bound forbids another child under
// parent. An internal parent holds one passage up and at most two down;
// the root holds at most two in total.
func (o *Options) full(parent, root *core.Cell) bool {
	if !o.binary {
		return false
	}
	limit := 3
	if parent == root {
		limit = 2
	}
	return len(parent.Passages()) >= limit
}

// DepthFirst carves with a LIFO frontier: the classic recursive
// backtracker with its long winding corridors.
func DepthFirst(m *core.Maze, opts ...Option) error {
	opts = append(opts, WithFrontier(frontier.NewStack()))
	return Grow(m, opts...)
}

// BreadthFirst carves with a FIFO frontier, growing short bushy trees
// around the root.
func BreadthFirst(m *core.Maze, opts ...Option) error {
	opts = append(opts, WithFrontier(frontier.NewQueue()))
	return Grow(m, opts...)
}

// RandomFirst carves with the random-out frontier; growth spreads
// uniformly over the tree's boundary.
func RandomFirst(m *core.Maze, opts ...Option) error {
	opts = append(opts, withFrontierFunc(func(rng *rand.Rand) frontier.Frontier {
		return frontier.NewUnqueue(rng)
	}))
	return Grow(m, opts...)
}

// Prim carves with the min-priority frontier. With WithPriority it is
// Prim's algorithm on those edge scores; without, every entry draws a
// uniform weight in [1, 2), giving a random spanning tree texture.
func Prim(m *core.Maze, opts ...Option) error {
	opts = append(opts, withFrontierFunc(func(rng *rand.Rand) frontier.Frontier {
		return frontier.NewHeap(rng)
	}))
	return Grow(m, opts...)
}
