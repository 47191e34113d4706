package aldousbroder

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegrid/core"
)

// Walk is the resumable first-entrance carver. Unlike Plain it links
// passages as it goes, so the maze holds a growing forest of one tree
// between runs, and the remaining work can be handed to another
// algorithm at any pause.
type Walk struct {
	maze      *core.Maze
	o         Options
	cur       *core.Cell
	unvisited mapset.Set[*core.Cell]
	order     []*core.Cell
	done      bool
}

// NewWalk positions a resumable walk on the maze. The start cell (or a
// random one) is immediately adopted; everything else is unvisited.
func NewWalk(m *core.Maze, opts ...Option) (*Walk, error) {
	o, err := resolve(m, opts)
	if err != nil {
		return nil, err
	}
	cur, err := o.seed(m)
	if err != nil {
		return nil, err
	}

	w := &Walk{
		maze:      m,
		o:         o,
		cur:       cur,
		unvisited: mapset.New[*core.Cell](),
	}
	for _, c := range m.Grid().Cells() {
		if c != cur {
			w.unvisited.Put(c)
			w.order = append(w.order, c)
		}
	}
	w.done = w.unvisited.Size() == 0
	return w, nil
}

// Run advances the walk until the budget pauses it or the grid is
// covered. Zero budget fields mean unbounded; a Run on a finished walk
// returns Done immediately.
func (w *Walk) Run(b Budget) (Outcome, error) {
	steps := 0
	for w.unvisited.Size() > 0 {
		if b.MinUnvisited > 0 && w.unvisited.Size() < b.MinUnvisited {
			return BudgetExhausted, nil
		}
		nbrs := w.cur.Neighbors()
		if len(nbrs) == 0 {
			return BudgetExhausted, ErrIsolatedCell
		}
		steps++
		next := nbrs[w.o.rng.Intn(len(nbrs))]
		if w.unvisited.Has(next) {
			w.cur.Link(next)
			w.unvisited.Remove(next)
		}
		w.cur = next

		if b.MaxSteps > 0 && steps >= b.MaxSteps && w.unvisited.Size() > 0 {
			return BudgetExhausted, nil
		}
	}
	w.done = true
	return Done, nil
}

// Done reports whether the walk has covered the grid.
func (w *Walk) Done() bool { return w.done }

// Current returns the cell the walk stands on.
func (w *Walk) Current() *core.Cell { return w.cur }

// Remaining returns the number of still-unvisited cells.
func (w *Walk) Remaining() int { return w.unvisited.Size() }

// Unvisited returns the still-unvisited cells in grid order.
func (w *Walk) Unvisited() []*core.Cell {
	out := make([]*core.Cell, 0, w.unvisited.Size())
	for _, c := range w.order {
		if w.unvisited.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
