// Package spantree carves spanning trees with one generic prioritized
// search engine. The engine serves pending (parent, cell) entries from a
// frontier container, adopts each still-unvisited cell by carving a
// passage from its parent, and enqueues the cell's unvisited neighbors.
// Which algorithm that is depends entirely on the container:
//
//	DepthFirst   — Stack    (recursive-backtracker texture)
//	BreadthFirst — Queue    (short bushy trees)
//	RandomFirst  — Unqueue  (uniform frontier growth)
//	Prim         — Heap     (Prim's algorithm on the given priorities;
//	                         random edge weights when none are given)
//
// Already-adopted cells may sit in the frontier several times; stale
// serves are discarded lazily rather than deleted eagerly.
//
// WithBinary bounds the fan-out so the carved tree is binary: adoption
// through a parent that already has three passages (two for the root) is
// rejected. On grids that admit no binary spanning tree reachable by the
// search this can leave a forest; Grow never reports disconnection, the
// caller checks Maze.IsPerfect.
//
// Complexity: O(v·d) entries pass through the frontier, so O(v·d) for
// Stack/Queue/Unqueue and O(v·d·log(v·d)) for Heap, d the connectivity.
//
// Errors:
//
//	ErrNilMaze - nil *core.Maze passed to Grow.
package spantree
