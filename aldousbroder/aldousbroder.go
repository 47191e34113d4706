package aldousbroder

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegrid/core"
)

// Plain carves by first-entrance random walk and returns the entrance
// table: each cell mapped to the cell the walk first entered it from
// (the start maps to nil). The carved edges are exactly the non-nil
// table entries. Nothing is carved if the step budget aborts the walk.
func Plain(m *core.Maze, opts ...Option) (map[*core.Cell]*core.Cell, error) {
	o, err := resolve(m, opts)
	if err != nil {
		return nil, err
	}
	cell, err := o.seed(m)
	if err != nil {
		return nil, err
	}

	entrance := map[*core.Cell]*core.Cell{cell: nil}
	unvisited := others(m, cell)

	steps := 0
	for unvisited.Size() > 0 {
		if o.maxSteps > 0 && steps >= o.maxSteps {
			return nil, ErrStepBudget
		}
		steps++
		nbrs := cell.Neighbors()
		if len(nbrs) == 0 {
			return nil, ErrIsolatedCell
		}
		next := nbrs[o.rng.Intn(len(nbrs))]
		unvisited.Remove(next)
		if _, seen := entrance[next]; !seen {
			entrance[next] = cell
		}
		cell = next
	}

	for c, from := range entrance {
		if from != nil {
			c.Link(from)
		}
	}
	return entrance, nil
}

// Vanilla carves by last-exit random walk and returns the exit table:
// each cell mapped to the cell the walk last left it toward (the walk's
// final cell maps to nil). Subtly different from Plain: the tree only
// materializes when the walk ends.
func Vanilla(m *core.Maze, opts ...Option) (map[*core.Cell]*core.Cell, error) {
	o, err := resolve(m, opts)
	if err != nil {
		return nil, err
	}
	cell, err := o.seed(m)
	if err != nil {
		return nil, err
	}

	exit := map[*core.Cell]*core.Cell{}
	unvisited := others(m, cell)

	steps := 0
	for unvisited.Size() > 0 {
		if o.maxSteps > 0 && steps >= o.maxSteps {
			return nil, ErrStepBudget
		}
		steps++
		nbrs := cell.Neighbors()
		if len(nbrs) == 0 {
			return nil, ErrIsolatedCell
		}
		next := nbrs[o.rng.Intn(len(nbrs))]
		unvisited.Remove(next)
		exit[cell] = next
		cell = next
	}
	// The final cell never exits again; a recorded exit would close a
	// cycle.
	exit[cell] = nil

	for c, to := range exit {
		if to != nil {
			c.Link(to)
		}
	}
	return exit, nil
}

func resolve(m *core.Maze, opts []Option) (Options, error) {
	if m == nil {
		return Options{}, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o, nil
}

// seed picks the starting cell and rejects one the walk cannot leave.
func (o *Options) seed(m *core.Maze) (*core.Cell, error) {
	cell := o.start
	if cell == nil {
		cells := m.Grid().Cells()
		cell = cells[o.rng.Intn(len(cells))]
	}
	if m.V() > 1 && len(cell.Neighbors()) == 0 {
		return nil, ErrIsolatedCell
	}
	return cell, nil
}

// others collects every cell but the seed into a set.
func others(m *core.Maze, seed *core.Cell) mapset.Set[*core.Cell] {
	s := mapset.New[*core.Cell]()
	for _, c := range m.Grid().Cells() {
		if c != seed {
			s.Put(c)
		}
	}
	return s
}
