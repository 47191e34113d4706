// Package mazegrid is an in-memory library for generating and analyzing
// perfect mazes: spanning trees carved on 2-D cell grids that may be
// embedded on non-planar surfaces (cylinders, tori, Möbius strips).
//
// 🚀 What is mazegrid?
//
//	A pure-Go library that brings together:
//		• Topology model: nodes, walls and cells with Euler-characteristic
//		  accounting, built through a pluggable coordinate transform that
//		  performs surface identification
//		• Queue abstraction: random-out, FIFO, LIFO and priority frontiers
//		• One generic prioritized search engine that becomes depth-first,
//		  breadth-first, random-first or Prim-style carving by swapping
//		  the frontier container
//		• Unbiased carvers: Wilson's loop-erased random walk, the
//		  Aldous-Broder family (first-entrance, last-exit, resumable),
//		  hunt-and-kill, and the Aldous-Broder/Wilson hybrid
//		• Bellman-Ford distances and text/raster sketching of the result
//
// ✨ Why choose mazegrid?
//
//   - Deterministic – every randomized entry point takes an explicit
//     *rand.Rand, so a fixed seed reproduces a maze exactly
//   - Honest about degeneracy – disconnection and step-budget exhaustion
//     are reported as sentinel errors, never silent hangs
//   - Extensible – surface identification is just a coordinate transform
//
// Everything is organized under small, focused packages:
//
//	core/        — Node, Wall, Cell, Grid, Maze and the surface transforms
//	frontier/    — Unqueue, Queue, Stack, Heap containers
//	spantree/    — the generic prioritized spanning-tree engine
//	wilson/      — Wilson's algorithm
//	aldousbroder/— plain, vanilla and resumable Aldous-Broder
//	huntkill/    — hunt-and-kill with three hunt strategies
//	hybridabw/   — Aldous-Broder/Wilson hybrid
//	distance/    — Bellman-Ford shortest paths over passages
//	sketch/      — text and raster rendering of carved mazes
//
// Quick ASCII example (a 2×2 perfect maze):
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
//
//	go get github.com/katalvlaran/mazegrid
package mazegrid
