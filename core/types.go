package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core grid operations.
var (
	// ErrEmptyGrid indicates a grid was requested with no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")

	// ErrMalformedTopology indicates inconsistent node/wall bookkeeping
	// discovered during construction (e.g. a cell of an 8-connected grid
	// without exactly 8 nodes and 8 walls).
	ErrMalformedTopology = errors.New("core: malformed topology")

	// ErrNilGrid indicates a nil *Grid was passed to NewMaze.
	ErrNilGrid = errors.New("core: grid is nil")
)

// Direction labels a cell's boundary walls and neighbors.
type Direction int

const (
	South Direction = iota
	East
	North
	West
	Southwest
	Southeast
	Northeast
	Northwest
)

// String returns the lowercase compass name of d.
func (d Direction) String() string {
	switch d {
	case South:
		return "south"
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case Southwest:
		return "southwest"
	case Southeast:
		return "southeast"
	case Northeast:
		return "northeast"
	case Northwest:
		return "northwest"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: S, E, N, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: S, E, N, W, SW, SE, NE, NW.
	Conn8
)

// Surface records which identification the grid's transform performs.
// It changes nothing about construction; the sketch package uses it to
// draw seam markers.
type Surface int

const (
	// SurfacePlane is the untransformed rectangular embedding.
	SurfacePlane Surface = iota
	// SurfaceCylinder wraps the column coordinate.
	SurfaceCylinder
	// SurfaceTorus wraps both coordinates.
	SurfaceTorus
	// SurfaceMoebius wraps the column coordinate and mirrors the row on
	// every odd wrap, producing a non-orientable seam.
	SurfaceMoebius
	// SurfaceCustom marks a caller-supplied transform.
	SurfaceCustom
)

// Index addresses a cell within its grid by row and column.
// Rows increase northward, columns increase eastward, matching the
// geometric y and x axes.
type Index struct {
	Row, Col int
}

// String formats the index as "(row,col)".
func (i Index) String() string { return fmt.Sprintf("(%d,%d)", i.Row, i.Col) }

// NodeID identifies a geometric vertex structurally by its transformed
// coordinates. Sub distinguishes the per-corner sub-nodes an 8-connected
// grid needs (always 0 on 4-connected grids).
type NodeID struct {
	X, Y, Sub int
}

// less orders NodeIDs lexicographically; used to normalize wall keys.
func (n NodeID) less(o NodeID) bool {
	if n.Y != o.Y {
		return n.Y < o.Y
	}
	if n.X != o.X {
		return n.X < o.X
	}
	return n.Sub < o.Sub
}

// WallKey is the unordered pair of node identities bounding a wall.
// Two cells sharing a boundary obtain the identical *Wall through it.
type WallKey struct {
	A, B NodeID
}

// wallKey normalizes the node pair so that (a,b) and (b,a) collide.
func wallKey(a, b NodeID) WallKey {
	if b.less(a) {
		a, b = b, a
	}
	return WallKey{A: a, B: b}
}

// Transform is the coordinate-transform hook that performs surface
// identification. It maps untransformed geometric coordinates (x, y) to
// their identified representatives. The identity transform yields a
// plane; wrapping x yields a cylinder; wrapping both yields a torus;
// wrapping x while mirroring y on odd wraps yields a Möbius strip.
//
// Integer input must produce integer output; use floor division and
// modulo so that negative offsets wrap correctly.
type Transform func(x, y int) (int, int)

// GridOption configures behavior of a Grid before construction.
type GridOption func(g *Grid)

// WithTransform installs a caller-supplied coordinate transform and
// marks the surface as SurfaceCustom.
func WithTransform(t Transform) GridOption {
	return func(g *Grid) {
		if t != nil {
			g.transform = t
			g.surface = SurfaceCustom
		}
	}
}

// WithConnectivity selects Conn4 (default) or Conn8 adjacency.
func WithConnectivity(c Connectivity) GridOption {
	return func(g *Grid) { g.conn = c }
}

// WithWallBuilder pre-carves a passage through every internal wall, so
// that wall-adding algorithms can start from a fully open grid.
func WithWallBuilder() GridOption {
	return func(g *Grid) { g.wallBuilder = true }
}

// WithoutNodeCheck suppresses the per-cell node/wall consistency check
// on 8-connected grids. Needed only for degenerate wrapped extents
// (e.g. a one-column cylinder) where distinct corners legitimately
// collapse onto the same node.
func WithoutNodeCheck() GridOption {
	return func(g *Grid) { g.skipNodeCheck = true }
}
