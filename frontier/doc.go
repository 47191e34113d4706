// Package frontier provides the pending-cell containers that
// parameterize the spanning-tree search engine. The engine is fixed;
// swapping the container changes the carving algorithm:
//
//   - Unqueue — random out; turns the engine into random-first search.
//   - Queue   — first in, first out; breadth-first search.
//   - Stack   — last in, first out; depth-first search.
//   - Heap    — least priority out; Prim-style growth. Ties are broken
//     by insertion sequence, and entries entered with NoPriority draw a
//     uniform priority from a configurable interval (default [1, 2)).
//
// Each container holds Entry values: a candidate cell paired with the
// already-adopted cell that proposed it. Containers do not dedupe;
// the engine discards stale serves instead.
//
// Complexity: Enter and Serve are O(1) for Unqueue, Queue and Stack,
// and O(log n) for Heap.
package frontier
