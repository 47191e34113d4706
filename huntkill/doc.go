// Package huntkill carves mazes with the hunt-and-kill algorithm. The
// kill phase is a random walk restricted to unvisited cells, so no step
// is ever wasted re-crossing the tree; when the walk paints itself into
// a corner, the hunt phase finds an unvisited cell adjacent to the tree,
// links it in, and the kill resumes there.
//
// The hunt is where implementations differ, and all three choices are
// offered:
//
//   - HuntFrontier    — candidates are banked in a random-out container
//     while killing and served back at random; no scanning at all.
//   - HuntRandomScan  — draw unvisited cells in random order until one
//     with a visited neighbor turns up.
//   - HuntOrderedScan — scan unvisited cells in grid order. Cheapest,
//     but the stable order leaks a visible straight-passage bias; kept
//     for demonstrating exactly that.
//
// Hunt-and-kill trades Aldous-Broder's uniformity for speed: the tree
// distribution is biased, but every phase makes progress, so no step
// budget is needed on connected grids. A hunt that comes up empty while
// unvisited cells remain means the grid is disconnected; On reports
// ErrDisconnected and leaves the partial carving in place.
//
// Errors:
//
//	ErrNilMaze      - nil *core.Maze passed to On.
//	ErrDisconnected - unvisited cells remain but none borders the tree.
package huntkill
