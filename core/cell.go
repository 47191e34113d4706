package core

import (
	"fmt"
	"image/color"
)

// Node is a geometric vertex of the grid — a facial corner. Identity is
// structural: nodes are keyed by their transformed coordinates and
// shared between every cell that touches them.
type Node struct {
	// ID holds the transformed coordinates (and sub-corner tag).
	ID NodeID
}

// Wall is an undirected geometric edge between exactly two nodes.
// Walls carry no carving state; whether a wall has been carved into a
// passage lives on the cells it separates.
type Wall struct {
	// Nodes are the wall's two endpoints.
	Nodes [2]*Node
}

// Cell is simultaneously a face of the grid and a vertex of the maze.
//
// Its nodes, walls and neighbor table are fixed when the grid is built
// and never mutated afterwards; carving algorithms touch only the
// passage map. A passage is directed: c has a passage toward d when d is
// in c's passage map. An undirected maze edge is two mutual passages.
type Cell struct {
	index Index
	x, y  int // transformed geometric coordinates of the SW corner

	nodes   []*Node
	nodeSet map[NodeID]struct{}

	walls     map[Direction]*Wall
	wallOrder []Direction

	neighbors map[Direction]*Cell
	dirOrder  []Direction

	passages     map[*Cell]float64
	passageOrder []*Cell

	text  string
	color color.Color
}

func newCell(index Index, x, y int) *Cell {
	return &Cell{
		index:     index,
		x:         x,
		y:         y,
		nodeSet:   make(map[NodeID]struct{}),
		walls:     make(map[Direction]*Wall),
		neighbors: make(map[Direction]*Cell),
		passages:  make(map[*Cell]float64),
	}
}

// Index returns the cell's (row, col) address within its grid.
func (c *Cell) Index() Index { return c.index }

// X returns the transformed column coordinate of the cell's SW corner.
func (c *Cell) X() int { return c.x }

// Y returns the transformed row coordinate of the cell's SW corner.
func (c *Cell) Y() int { return c.y }

// String formats the cell as "Cell(row,col)"; primarily for testing.
func (c *Cell) String() string {
	return fmt.Sprintf("Cell(%d,%d)", c.index.Row, c.index.Col)
}

// Nodes returns the cell's corner nodes in the order they were attached.
func (c *Cell) Nodes() []*Node {
	out := make([]*Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// addNode attaches a corner node, ignoring duplicates. Duplicates occur
// legitimately on degenerate wrapped grids where corners collapse.
func (c *Cell) addNode(n *Node) {
	if _, ok := c.nodeSet[n.ID]; ok {
		return
	}
	c.nodeSet[n.ID] = struct{}{}
	c.nodes = append(c.nodes, n)
}

// Wall returns the boundary wall in the given direction.
func (c *Cell) Wall(d Direction) (*Wall, bool) {
	w, ok := c.walls[d]
	return w, ok
}

// Walls returns the cell's boundary walls keyed by direction.
func (c *Cell) Walls() map[Direction]*Wall {
	out := make(map[Direction]*Wall, len(c.walls))
	for d, w := range c.walls {
		out[d] = w
	}
	return out
}

func (c *Cell) setWall(d Direction, w *Wall) {
	if _, ok := c.walls[d]; !ok {
		c.wallOrder = append(c.wallOrder, d)
	}
	c.walls[d] = w
}

// Neighbor returns the adjacent cell in the given direction, if the
// wall there is internal. Boundary walls have no neighbor.
func (c *Cell) Neighbor(d Direction) (*Cell, bool) {
	n, ok := c.neighbors[d]
	return n, ok
}

// Directions returns the directions in which neighbors exist, in the
// order they were wired at construction.
func (c *Cell) Directions() []Direction {
	out := make([]Direction, len(c.dirOrder))
	copy(out, c.dirOrder)
	return out
}

// Neighbors returns the adjacent cells in construction order. The order
// is deterministic, which keeps seeded random choices reproducible.
func (c *Cell) Neighbors() []*Cell {
	out := make([]*Cell, 0, len(c.dirOrder))
	for _, d := range c.dirOrder {
		out = append(out, c.neighbors[d])
	}
	return out
}

// SetNeighbor wires the adjacent cell in the given direction. A nil
// neighbor is ignored, so boundary lookups can be passed through.
// Intended for construction and for callers building custom topologies.
func (c *Cell) SetNeighbor(d Direction, n *Cell) {
	if n == nil {
		return
	}
	if _, ok := c.neighbors[d]; !ok {
		c.dirOrder = append(c.dirOrder, d)
	}
	c.neighbors[d] = n
}

// Text returns the cell's sketch glyph (e.g. a root mark), if any.
func (c *Cell) Text() string { return c.text }

// SetText sets the single glyph text sketchers draw inside the cell.
func (c *Cell) SetText(s string) { c.text = s }

// Color returns the cell's face color for raster sketchers; nil means
// the default background.
func (c *Cell) Color() color.Color { return c.color }

// SetColor sets the face color used by raster sketchers.
func (c *Cell) SetColor(col color.Color) { c.color = col }

// LinkTo carves a directed passage from c toward other with the given
// weight. Linking to nil is a no-op, so callers may pass the result of
// a failed neighbor lookup straight through.
func (c *Cell) LinkTo(other *Cell, weight float64) {
	if other == nil {
		return
	}
	if _, ok := c.passages[other]; !ok {
		c.passageOrder = append(c.passageOrder, other)
	}
	c.passages[other] = weight
}

// Link carves a mutual (undirected) passage of unit weight between c
// and other.
func (c *Cell) Link(other *Cell) { c.LinkWeighted(other, 1) }

// LinkWeighted carves a mutual passage with the given weight.
func (c *Cell) LinkWeighted(other *Cell, weight float64) {
	if other == nil {
		return
	}
	c.LinkTo(other, weight)
	other.LinkTo(c, weight)
}

// UnlinkTo removes the directed passage from c toward other, if any.
func (c *Cell) UnlinkTo(other *Cell) {
	if _, ok := c.passages[other]; !ok {
		return
	}
	delete(c.passages, other)
	for i, p := range c.passageOrder {
		if p == other {
			c.passageOrder = append(c.passageOrder[:i], c.passageOrder[i+1:]...)
			break
		}
	}
}

// Unlink removes any passage between c and other, in both directions.
func (c *Cell) Unlink(other *Cell) {
	if other == nil {
		return
	}
	c.UnlinkTo(other)
	other.UnlinkTo(c)
}

// Linked reports whether c has a directed passage toward other.
func (c *Cell) Linked(other *Cell) bool {
	_, ok := c.passages[other]
	return ok
}

// Weight returns the weight of the directed passage toward other.
func (c *Cell) Weight(other *Cell) (float64, bool) {
	w, ok := c.passages[other]
	return w, ok
}

// Passages returns the cells c has carved an exit toward, in carving
// order.
func (c *Cell) Passages() []*Cell {
	out := make([]*Cell, len(c.passageOrder))
	copy(out, c.passageOrder)
	return out
}
