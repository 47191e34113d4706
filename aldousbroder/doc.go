// Package aldousbroder carves mazes by unadorned random walk, the
// Aldous-Broder algorithm. Like Wilson's algorithm it samples uniformly
// from all spanning trees of the grid; unlike Wilson's it is fast while
// the unvisited region is large and slow once it is small.
//
// Three flavors:
//
//   - Plain   — records the first entrance into every cell and carves
//     those edges; the tree exists as soon as the walk covers the grid.
//   - Vanilla — records the last exit from every cell and carves those;
//     subtly different texture, the tree appears only at the very end.
//   - Walk    — resumable first-entrance walk carving as it goes. Run
//     accepts a Budget (step cap, unvisited floor) and reports whether
//     the walk finished or merely paused, so callers can animate the
//     carve or hand the remainder to another algorithm. The hybrid
//     carver uses this for its opening phase.
//
// The walk halts only by covering the grid, so a disconnected grid
// makes an unbudgeted run spin forever; WithMaxSteps (one-shots) and
// Budget.MaxSteps (Walk) bound it with ErrStepBudget or a
// BudgetExhausted outcome instead.
//
// Errors:
//
//	ErrNilMaze      - nil *core.Maze passed in.
//	ErrStepBudget   - a one-shot exceeded its step budget.
//	ErrIsolatedCell - the walk stands on a cell with no neighbors.
package aldousbroder
