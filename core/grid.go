package core

import (
	"fmt"
)

// offsets in face coordinates (dx, dy); rows grow northward.
var dirOffsets = map[Direction][2]int{
	South:     {0, -1},
	East:      {1, 0},
	North:     {0, 1},
	West:      {-1, 0},
	Southwest: {-1, -1},
	Southeast: {1, -1},
	Northeast: {1, 1},
	Northwest: {-1, 1},
}

// conn4Dirs and conn8Dirs fix the wiring order, which in turn fixes the
// order of Cell.Neighbors and so the reproducibility of seeded carves.
var (
	conn4Dirs = []Direction{South, East, North, West}
	conn8Dirs = []Direction{South, East, North, West, Southwest, Southeast, Northeast, Northwest}
)

// Grid owns every Node, Wall and Cell of one embedding. The grid's
// shape — extents, transform, connectivity — is immutable after
// construction; only cell passage state changes afterwards.
type Grid struct {
	rows, cols int
	conn       Connectivity
	surface    Surface
	transform  Transform

	wallBuilder   bool
	skipNodeCheck bool

	nodes     map[NodeID]*Node
	nodeOrder []NodeID

	walls     map[WallKey]*Wall
	wallOrder []WallKey

	cells     map[Index]*Cell
	cellOrder []Index
}

// NewGrid builds a rows×cols grid, wiring nodes, walls and neighbor
// tables through the configured transform. Construction is fail-fast:
// inconsistent node/wall bookkeeping yields ErrMalformedTopology rather
// than a silently malformed maze.
//
// Complexity: O(rows×cols×d) time and memory, d = 4 or 8.
func NewGrid(rows, cols int, opts ...GridOption) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		rows:      rows,
		cols:      cols,
		conn:      Conn4,
		surface:   SurfacePlane,
		transform: func(x, y int) (int, int) { return x, y },
		nodes:     make(map[NodeID]*Node),
		walls:     make(map[WallKey]*Wall),
		cells:     make(map[Index]*Cell),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.buildNodes()
	g.buildCells()
	if err := g.buildWalls(); err != nil {
		return nil, err
	}
	g.buildNeighborhood()
	if g.wallBuilder {
		g.carveAll()
	}

	return g, nil
}

// node interns the node with the given identity.
func (g *Grid) node(id NodeID) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id}
	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)
	return n
}

// buildWall interns the wall between two nodes. The key is unordered,
// so the two cells sharing a boundary obtain the identical *Wall.
func (g *Grid) buildWall(a, b *Node) *Wall {
	key := wallKey(a.ID, b.ID)
	if w, ok := g.walls[key]; ok {
		return w
	}
	w := &Wall{Nodes: [2]*Node{a, b}}
	g.walls[key] = w
	g.wallOrder = append(g.wallOrder, key)
	return w
}

func (g *Grid) buildNodes() {
	if g.conn == Conn8 {
		// Each SW corner carries four sub-nodes; the north and east
		// boundaries are populated from the virtual next row/column.
		for i := 0; i < g.rows; i++ {
			for j := 0; j < g.cols; j++ {
				x, y := g.transform(j, i)
				for sub := 0; sub < 4; sub++ {
					g.node(NodeID{X: x, Y: y, Sub: sub})
				}
			}
		}
		for j := 0; j < g.cols; j++ {
			x, y := g.transform(j, g.rows)
			g.node(NodeID{X: x, Y: y, Sub: 2})
			g.node(NodeID{X: x, Y: y, Sub: 3})
		}
		for i := 0; i < g.rows; i++ {
			x, y := g.transform(g.cols, i)
			g.node(NodeID{X: x, Y: y, Sub: 0})
			g.node(NodeID{X: x, Y: y, Sub: 1})
		}
		return
	}
	for i := 0; i <= g.rows; i++ {
		for j := 0; j <= g.cols; j++ {
			x, y := g.transform(j, i)
			g.node(NodeID{X: x, Y: y})
		}
	}
}

func (g *Grid) buildCells() {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			x, y := g.transform(j, i)
			idx := Index{Row: i, Col: j}
			g.cells[idx] = newCell(idx, x, y)
			g.cellOrder = append(g.cellOrder, idx)
		}
	}
}

func (g *Grid) buildWalls() error {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			cell := g.cells[Index{Row: i, Col: j}]
			var err error
			if g.conn == Conn8 {
				err = g.buildCellWalls8(cell, j, i)
			} else {
				g.buildCellWalls4(cell, j, i)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Grid) buildCellWalls4(cell *Cell, j, i int) {
	corner := func(x, y int) *Node {
		tx, ty := g.transform(x, y)
		return g.node(NodeID{X: tx, Y: ty})
	}
	sw := corner(j, i)
	se := corner(j+1, i)
	ne := corner(j+1, i+1)
	nw := corner(j, i+1)
	cell.addNode(sw)
	cell.addNode(se)
	cell.addNode(ne)
	cell.addNode(nw)

	cell.setWall(South, g.buildWall(sw, se))
	cell.setWall(East, g.buildWall(se, ne))
	cell.setWall(North, g.buildWall(ne, nw))
	cell.setWall(West, g.buildWall(nw, sw))
}

// buildCellWalls8 attaches the eight sub-nodes and eight walls of an
// 8-connected cell, then verifies the bookkeeping: 8 nodes, 8 walls,
// every node on exactly two of the cell's walls.
func (g *Grid) buildCellWalls8(cell *Cell, j, i int) error {
	x1, y1 := g.transform(j, i)   // SW corner
	x2, y2 := g.transform(j+1, i) // SE corner
	x3, y3 := g.transform(j, i+1) // NW corner

	lookup := func(id NodeID) (*Node, error) {
		n, ok := g.nodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: missing node %v at cell %v", ErrMalformedTopology, id, cell.Index())
		}
		return n, nil
	}
	ids := []NodeID{
		{X: x2, Y: y2, Sub: 0}, // ene
		{X: x3, Y: y3, Sub: 3}, // nne
		{X: x3, Y: y3, Sub: 2}, // nnw
		{X: x1, Y: y1, Sub: 0}, // wnw
		{X: x1, Y: y1, Sub: 1}, // wsw
		{X: x1, Y: y1, Sub: 2}, // ssw
		{X: x1, Y: y1, Sub: 3}, // sse
		{X: x2, Y: y2, Sub: 1}, // ese
	}
	nodes := make([]*Node, len(ids))
	for k, id := range ids {
		n, err := lookup(id)
		if err != nil {
			return err
		}
		nodes[k] = n
		cell.addNode(n)
	}
	ene, nne, nnw, wnw, wsw, ssw, sse, ese :=
		nodes[0], nodes[1], nodes[2], nodes[3], nodes[4], nodes[5], nodes[6], nodes[7]

	cell.setWall(South, g.buildWall(ssw, sse))
	cell.setWall(East, g.buildWall(ese, ene))
	cell.setWall(North, g.buildWall(nne, nnw))
	cell.setWall(West, g.buildWall(wnw, wsw))
	cell.setWall(Southwest, g.buildWall(wsw, ssw))
	cell.setWall(Southeast, g.buildWall(sse, ese))
	cell.setWall(Northeast, g.buildWall(ene, nne))
	cell.setWall(Northwest, g.buildWall(nnw, wnw))

	if g.skipNodeCheck {
		return nil
	}
	if len(cell.nodes) != 8 {
		return fmt.Errorf("%w: cell %v has %d nodes, want 8", ErrMalformedTopology, cell.Index(), len(cell.nodes))
	}
	if len(cell.walls) != 8 {
		return fmt.Errorf("%w: cell %v has %d walls, want 8", ErrMalformedTopology, cell.Index(), len(cell.walls))
	}
	touch := make(map[NodeID]int, 8)
	for _, w := range cell.walls {
		touch[w.Nodes[0].ID]++
		touch[w.Nodes[1].ID]++
	}
	if len(touch) != 8 {
		return fmt.Errorf("%w: cell %v walls touch %d distinct nodes, want 8", ErrMalformedTopology, cell.Index(), len(touch))
	}
	for id, n := range touch {
		if n != 2 {
			return fmt.Errorf("%w: cell %v node %v on %d walls, want 2", ErrMalformedTopology, cell.Index(), id, n)
		}
	}
	return nil
}

// buildNeighborhood wires each cell's directional neighbor table by
// transforming its offset face coordinates and looking the result up.
// Crossing an identified seam lands on the identified cell; on a
// non-orientable seam the transform's row mirroring carries the
// orientation reversal.
func (g *Grid) buildNeighborhood() {
	dirs := conn4Dirs
	if g.conn == Conn8 {
		dirs = conn8Dirs
	}
	for _, idx := range g.cellOrder {
		cell := g.cells[idx]
		for _, d := range dirs {
			off := dirOffsets[d]
			x, y := g.transform(idx.Col+off[0], idx.Row+off[1])
			nbr := g.cells[Index{Row: y, Col: x}]
			if nbr == nil || !g.identifies(nbr.index, idx, dirs) {
				continue
			}
			cell.SetNeighbor(d, nbr)
		}
	}
}

// identifies reports whether some offset of from transforms onto to.
// Adjacency must be mutual: a transform that is not a true
// identification can send an offset onto a cell that never maps back,
// and such one-way relations are not wired. The reverse direction is
// not required to be the literal opposite; crossing a non-orientable
// seam returns under a mirrored label.
func (g *Grid) identifies(from, to Index, dirs []Direction) bool {
	for _, d := range dirs {
		off := dirOffsets[d]
		x, y := g.transform(from.Col+off[0], from.Row+off[1])
		if (Index{Row: y, Col: x}) == to {
			return true
		}
	}
	return false
}

// carveAll links every cell to all of its neighbors (wall-builder mode).
func (g *Grid) carveAll() {
	for _, idx := range g.cellOrder {
		cell := g.cells[idx]
		for _, n := range cell.Neighbors() {
			cell.LinkTo(n, 1)
		}
	}
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Connectivity returns Conn4 or Conn8.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Surface reports which identification the grid's transform performs.
func (g *Grid) Surface() Surface { return g.surface }

// Cell returns the cell at the given index, or nil if out of range.
func (g *Grid) Cell(idx Index) *Cell { return g.cells[idx] }

// Indices returns every cell index in insertion (row-major) order.
func (g *Grid) Indices() []Index {
	out := make([]Index, len(g.cellOrder))
	copy(out, g.cellOrder)
	return out
}

// Cells returns every cell in insertion (row-major) order. The order is
// stable so that seeded random choices over it are reproducible.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, len(g.cellOrder))
	for _, idx := range g.cellOrder {
		out = append(out, g.cells[idx])
	}
	return out
}

// Row returns the cells of row i from west to east.
func (g *Grid) Row(i int) []*Cell {
	out := make([]*Cell, 0, g.cols)
	for j := 0; j < g.cols; j++ {
		out = append(out, g.cells[Index{Row: i, Col: j}])
	}
	return out
}

// Column returns the cells of column j from south to north.
func (g *Grid) Column(j int) []*Cell {
	out := make([]*Cell, 0, g.rows)
	for i := 0; i < g.rows; i++ {
		out = append(out, g.cells[Index{Row: i, Col: j}])
	}
	return out
}

// Nodes returns every node in insertion order.
func (g *Grid) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Walls returns every wall in insertion order.
func (g *Grid) Walls() []*Wall {
	out := make([]*Wall, 0, len(g.wallOrder))
	for _, key := range g.wallOrder {
		out = append(out, g.walls[key])
	}
	return out
}

// V returns the number of nodes (grid vertices).
func (g *Grid) V() int { return len(g.nodes) }

// E returns the number of walls (grid edges).
func (g *Grid) E() int { return len(g.walls) }

// F returns the number of cells (grid faces).
func (g *Grid) F() int { return len(g.cells) }

// K returns the number of connected components of the node/wall graph.
func (g *Grid) K() int { return len(g.Components()) }

// EulerChar returns v − e + f − k for the full embedding. It is fixed at
// construction, independent of which walls are later carved.
func (g *Grid) EulerChar() int { return g.V() - g.E() + g.F() - g.K() }

// Components partitions the grid's nodes into connected components
// under the wall relation.
func (g *Grid) Components() [][]*Node {
	parent := make(map[NodeID]NodeID, len(g.nodes))
	var find func(id NodeID) NodeID
	find = func(id NodeID) NodeID {
		p, ok := parent[id]
		if !ok || p == id {
			return id
		}
		root := find(p)
		parent[id] = root
		return root
	}
	union := func(a, b NodeID) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, key := range g.wallOrder {
		if key.A == key.B {
			continue // a loop joins nothing
		}
		union(key.A, key.B)
	}

	groups := make(map[NodeID][]*Node)
	var roots []NodeID
	for _, id := range g.nodeOrder {
		root := find(id)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], g.nodes[id])
	}
	out := make([][]*Node, 0, len(roots))
	for _, root := range roots {
		out = append(out, groups[root])
	}
	return out
}
