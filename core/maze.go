package core

// Maze wraps a Grid and accounts for the passage graph carved on it:
// cells are its vertices, mutual passages its undirected edges. The
// maze is perfect exactly when the passage graph is a spanning tree of
// the grid's cells.
type Maze struct {
	grid *Grid
}

// NewMaze wraps a constructed grid for carving and analysis.
func NewMaze(g *Grid) (*Maze, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Maze{grid: g}, nil
}

// Grid returns the underlying grid.
func (m *Maze) Grid() *Grid { return m.grid }

// V returns the number of maze vertices, i.e. grid cells.
func (m *Maze) V() int { return len(m.grid.cells) }

// edgeCensus tallies the passage graph: self-loops, directed halves of
// mutual passages, and one-way arcs.
func (m *Maze) edgeCensus() (loops, mutual, arcs int) {
	for _, idx := range m.grid.cellOrder {
		cell := m.grid.cells[idx]
		for _, other := range cell.Passages() {
			switch {
			case other == cell:
				loops++
			case other.Linked(cell):
				mutual++
			default:
				arcs++
			}
		}
	}
	return loops, mutual, arcs
}

// E returns the number of maze edges. A mutual passage pair counts
// once, a self-loop counts once, and a one-way arc counts once.
func (m *Maze) E() int {
	loops, mutual, arcs := m.edgeCensus()
	return loops + mutual/2 + arcs
}

// Arcs returns the number of one-way passages. A perfect maze has none.
func (m *Maze) Arcs() int {
	_, _, arcs := m.edgeCensus()
	return arcs
}

// K returns the number of connected components of the passage graph.
// Every cell counts, including cells no passage reaches.
func (m *Maze) K() int { return len(m.Components()) }

// EulerChar returns v − e − k for the passage graph. It is 0 with k = 1
// exactly when the maze is a spanning tree.
func (m *Maze) EulerChar() int { return m.V() - m.E() - m.K() }

// IsPerfect reports whether the carved maze is a spanning tree of the
// grid's cells: connected, acyclic, and free of one-way passages.
func (m *Maze) IsPerfect() bool {
	loops, mutual, arcs := m.edgeCensus()
	if loops > 0 || arcs > 0 {
		return false
	}
	e := mutual / 2
	return m.K() == 1 && m.V()-e-1 == 0
}

// Components partitions the grid's cells into connected components
// under the passage relation (a passage in either direction joins).
func (m *Maze) Components() [][]*Cell {
	parent := make(map[*Cell]*Cell, len(m.grid.cells))
	var find func(c *Cell) *Cell
	find = func(c *Cell) *Cell {
		p, ok := parent[c]
		if !ok || p == c {
			return c
		}
		root := find(p)
		parent[c] = root
		return root
	}
	union := func(a, b *Cell) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, idx := range m.grid.cellOrder {
		cell := m.grid.cells[idx]
		for _, other := range cell.Passages() {
			if other != cell {
				union(cell, other)
			}
		}
	}

	groups := make(map[*Cell][]*Cell)
	var roots []*Cell
	for _, idx := range m.grid.cellOrder {
		cell := m.grid.cells[idx]
		root := find(cell)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], cell)
	}
	out := make([][]*Cell, 0, len(roots))
	for _, root := range roots {
		out = append(out, groups[root])
	}
	return out
}

// Clone copies the maze onto a freshly built grid of the same shape:
// same extents, transform, connectivity, and per-cell passage weights,
// text and color. The clone shares no mutable state with the original.
func (m *Maze) Clone() (*Maze, error) {
	src := m.grid
	ng, err := NewGrid(src.rows, src.cols, func(g *Grid) {
		g.conn = src.conn
		g.surface = src.surface
		g.transform = src.transform
		g.skipNodeCheck = src.skipNodeCheck
	})
	if err != nil {
		return nil, err
	}
	for _, idx := range src.cellOrder {
		from := src.cells[idx]
		to := ng.cells[idx]
		to.SetText(from.Text())
		to.SetColor(from.Color())
		for _, other := range from.Passages() {
			w, _ := from.Weight(other)
			to.LinkTo(ng.cells[other.Index()], w)
		}
	}
	return NewMaze(ng)
}
