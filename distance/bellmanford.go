package distance

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mazegrid/core"
)

// Distances is the solved shortest-path table from one source cell.
type Distances struct {
	source    *core.Cell
	dist      map[*core.Cell]float64
	pred      map[*core.Cell]*core.Cell
	undefined map[*core.Cell]bool
	invalid   bool
}

// Source returns the cell distances are measured from.
func (d *Distances) Source() *core.Cell { return d.source }

// At returns the distance to the cell; ok is false when the cell is
// unreachable or the table was invalidated by a negative cycle.
func (d *Distances) At(c *core.Cell) (float64, bool) {
	if d.invalid {
		return 0, false
	}
	v, ok := d.dist[c]
	return v, ok
}

// Predecessor returns the cell preceding c on a shortest path from the
// source, or nil for the source itself and unreachable cells.
func (d *Distances) Predecessor(c *core.Cell) *core.Cell { return d.pred[c] }

// Undefined reports whether a negative cycle made the cell's distance
// undefined.
func (d *Distances) Undefined(c *core.Cell) bool { return d.undefined[c] }

// Valid reports whether the table's distances are usable.
func (d *Distances) Valid() bool { return !d.invalid }

// PathTo walks the predecessor table backward from target, returning
// the shortest path in source→target order. Nil when the target is
// unreachable or the table is invalid.
func (d *Distances) PathTo(target *core.Cell) []*core.Cell {
	if d.invalid {
		return nil
	}
	if _, ok := d.dist[target]; !ok {
		return nil
	}
	var rev []*core.Cell
	for c := target; c != nil; c = d.pred[c] {
		rev = append(rev, c)
	}
	if rev[len(rev)-1] != d.source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// BellmanFord solves single-source shortest paths over the maze's
// passages. Unweighted, every passage costs one step; WithWeights, the
// passage weights are summed and a reachable negative-weight cycle
// yields ErrNegativeCycle alongside the flagged table.
func BellmanFord(m *core.Maze, opts ...Option) (*Distances, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := m.Grid().Cells()
	source := o.source
	if source == nil {
		if o.rng == nil {
			o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		source = cells[o.rng.Intn(len(cells))]
	}

	d := &Distances{
		source:    source,
		dist:      map[*core.Cell]float64{source: 0},
		pred:      map[*core.Cell]*core.Cell{},
		undefined: map[*core.Cell]bool{},
	}

	cost := func(c, nbr *core.Cell) float64 {
		if !o.weighted {
			return 1
		}
		w, _ := c.Weight(nbr)
		return w
	}

	for round := 0; round < len(cells)-1; round++ {
		relaxed := false
		for _, cell := range cells {
			base, ok := d.dist[cell]
			if !ok {
				continue
			}
			for _, nbr := range cell.Passages() {
				if cur, ok := d.dist[nbr]; !ok || base+cost(cell, nbr) < cur {
					d.dist[nbr] = base + cost(cell, nbr)
					d.pred[nbr] = cell
					relaxed = true
				}
			}
		}
		if !relaxed {
			break // converged early
		}
	}

	if !o.weighted {
		return d, nil
	}

	// One extra round: any remaining improvement witnesses a negative
	// cycle.
	for _, cell := range cells {
		base, ok := d.dist[cell]
		if !ok {
			continue
		}
		for _, nbr := range cell.Passages() {
			if cur, ok := d.dist[nbr]; ok && base+cost(cell, nbr) < cur {
				d.undefined[nbr] = true
				d.invalid = true
			}
		}
	}
	if d.invalid {
		return d, ErrNegativeCycle
	}
	return d, nil
}
