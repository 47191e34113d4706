// Package wilson carves mazes with Wilson's algorithm: repeated
// loop-erased random walks from unvisited cells into the growing tree.
// The resulting spanning tree is drawn uniformly from all spanning
// trees of the grid, which no frontier-based carver achieves.
//
// Each pass starts at a random unvisited cell and walks random
// neighbors, recording only the first predecessor of every cell it
// touches. The walk stops the moment it leaves the unvisited set; the
// carved path is rebuilt backward through the predecessor trail, which
// erases every loop the walk made. Each pass adopts at least one cell,
// so the pass count is bounded even though a single walk is not.
//
// The walk's expected length is finite but its worst case is unbounded;
// WithMaxSteps installs a hard budget that turns pathological runs into
// ErrStepBudget instead of hangs. Cells adopted before the budget
// tripped keep their carving.
//
// Errors:
//
//	ErrNilMaze    - nil *core.Maze passed to On.
//	ErrStepBudget - the step budget was exhausted mid-walk.
package wilson
