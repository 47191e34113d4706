// Package core implements the topology model of mazegrid: geometric
// nodes and walls, cells that double as maze vertices, the Grid that
// owns them, and the Maze wrapper with its Euler-characteristic
// accounting.
//
// What does "core" offer?
//
//   - Structural identity: nodes are keyed by transformed coordinates
//     (NodeID), walls by their unordered node pair (WallKey), so two
//     cells meeting across an identified seam share the same objects.
//   - Surface identification by coordinate transform alone: the plane,
//     cylinder, torus and Möbius strip differ only in the Transform a
//     grid is built with. NewCylinderGrid, NewTorusGrid and
//     NewMoebiusGrid install the canonical transforms; WithTransform
//     accepts any caller-supplied one.
//   - Two connectivities: Conn4 (orthogonal) and Conn8, which splits
//     every corner into four sub-nodes so that crossing diagonal walls
//     stay distinct edges.
//   - Euler accounting on both layers: Grid counts nodes, walls, faces
//     and components (v − e + f − k); Maze counts cells, passages and
//     passage components (v − e − k). A carved maze is perfect exactly
//     when it is connected and its characteristic is 0.
//
// Construction flow:
//
//	g, err := core.NewTorusGrid(6, 10)        // build topology
//	m, err := core.NewMaze(g)                 // wrap for carving
//	...carve passages via Cell.Link...
//	m.IsPerfect()                             // spanning-tree check
//
// Complexity: grid construction is O(rows×cols×d) for d ∈ {4, 8};
// component counting is near-linear via union-find.
//
// Errors:
//
//	ErrEmptyGrid         - grid requested with no rows or no columns.
//	ErrMalformedTopology - inconsistent node/wall bookkeeping (8-connected
//	                       construction is fail-fast).
//	ErrNilGrid           - nil *Grid passed to NewMaze.
package core
