// Package hybridabw carves mazes with the Aldous-Broder/Wilson hybrid.
// Aldous-Broder is fast while the unvisited region is large and slow
// once it is small; Wilson's algorithm is the exact opposite. The
// hybrid runs a plain random walk until the unvisited share drops below
// a density threshold, then finishes the remainder with loop-erased
// walks into the already-carved tree.
//
// Both ingredients sample spanning trees uniformly on their own; how
// close the hybrid's distribution comes to uniform is an open question,
// so no uniformity is promised.
//
// WithDensity(0) degenerates to pure Aldous-Broder, WithDensity(1) to
// pure Wilson.
//
// Errors:
//
//	ErrNilMaze - nil *core.Maze passed to On.
//
// Budget exhaustion surfaces as the ingredient packages' sentinels
// (aldousbroder.ErrIsolatedCell, wilson.ErrStepBudget), matchable with
// errors.Is.
package hybridabw
