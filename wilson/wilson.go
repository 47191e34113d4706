package wilson

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegrid/core"
)

// On carves a uniformly random spanning tree on the maze. It mutates
// the maze in place; on ErrStepBudget the cells adopted so far keep
// their passages.
func On(m *core.Maze, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()

	// One cell seeds the tree; everything else starts unvisited.
	cells := m.Grid().Cells()
	seed := o.start
	if seed == nil {
		seed = cells[o.rng.Intn(len(cells))]
	}
	rest := make([]*core.Cell, 0, len(cells)-1)
	for _, c := range cells {
		if c != seed {
			rest = append(rest, c)
		}
	}
	return o.carve(rest)
}

// Complete finishes a partially carved maze: every cell outside the
// given unvisited slice is treated as part of the tree, and passes run
// until the slice's cells are all adopted. When unvisited covers the
// whole maze one random cell is promoted to seed first. The hybrid
// carver drives its Wilson phase through this entry point.
func Complete(m *core.Maze, unvisited []*core.Cell, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()
	if len(unvisited) == m.V() {
		swap := make([]*core.Cell, len(unvisited))
		copy(swap, unvisited)
		i := o.rng.Intn(len(swap))
		swap[i] = swap[len(swap)-1]
		unvisited = swap[:len(swap)-1]
	}
	return o.carve(unvisited)
}

func (o *Options) resolve() {
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// carve runs loop-erased passes until every cell of the slice has been
// adopted into the tree.
func (o *Options) carve(cells []*core.Cell) error {
	unvisited := mapset.New[*core.Cell]()
	for _, c := range cells {
		unvisited.Put(c)
	}
	// pool backs deterministic random picks from the unvisited set;
	// stale entries are swap-removed lazily on pick.
	pool := make([]*core.Cell, len(cells))
	copy(pool, cells)
	pick := func() *core.Cell {
		for {
			i := o.rng.Intn(len(pool))
			c := pool[i]
			if unvisited.Has(c) {
				return c
			}
			pool[i] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
		}
	}

	steps := 0
	for unvisited.Size() > 0 {
		start := pick()
		trail := make(map[*core.Cell]*core.Cell)
		cur := start
		for unvisited.Has(cur) {
			if o.maxSteps > 0 && steps >= o.maxSteps {
				return ErrStepBudget
			}
			steps++
			nbrs := cur.Neighbors()
			if len(nbrs) == 0 {
				return ErrIsolatedCell
			}
			next := nbrs[o.rng.Intn(len(nbrs))]
			if _, seen := trail[next]; !seen && next != start {
				trail[next] = cur
			}
			cur = next
		}

		path := rebuild(trail, start, cur)
		for i := 0; i+1 < len(path); i++ {
			path[i].Link(path[i+1])
			unvisited.Remove(path[i])
		}
		if o.onPass != nil {
			o.onPass(unvisited.Size(), steps, len(path))
		}
	}
	return nil
}

// rebuild walks the first-predecessor trail backward from the exit to
// the walk's start, producing the loop-erased path in start→exit order.
// Every trail entry points strictly earlier in walk time, so the chain
// always terminates at the start.
func rebuild(trail map[*core.Cell]*core.Cell, start, exit *core.Cell) []*core.Cell {
	rev := []*core.Cell{exit}
	for cur := exit; cur != start; {
		cur = trail[cur]
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
