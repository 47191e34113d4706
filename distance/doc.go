// Package distance computes shortest paths over a maze's passages with
// the Bellman-Ford algorithm. Unweighted it counts steps; WithWeights
// it sums the passage weights, and then it must cope with negative
// weights.
//
// On a perfect maze every shortest path is unique, so the predecessor
// table doubles as the maze's solution: PathTo walks it backward from
// any target to the source.
//
// A negative-weight cycle reachable from the source makes distance
// undefined; since passages are usually mutual, a single negative
// mutual passage is already such a cycle. BellmanFord detects this in
// the standard extra relaxation round, flags the affected cells,
// invalidates the table's distances, and returns ErrNegativeCycle
// together with the table so the flags can be inspected.
//
// Complexity: O(v·e) relaxations.
//
// Errors:
//
//	ErrNilMaze       - nil *core.Maze passed to BellmanFord.
//	ErrNegativeCycle - a negative-weight cycle invalidated the table.
package distance
