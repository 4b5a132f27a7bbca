// Package core provides Graph, a generic append-only adjacency-list store.
//
// A Graph maps caller-supplied labels of any comparable type T to dense,
// zero-based integer indices assigned in order of first appearance, and keeps
// for every index the ordered list of neighbor indices.
//
//   - Directed vs. undirected policy is fixed at construction (WithDirected).
//     Undirected graphs mirror every insertion: Insert(u, v) appends v to u's
//     list and u to v's list.
//   - Multi-edges and self-loops are stored as inserted, never deduplicated.
//   - Labels are interned once with unique.Make. The forward map and the
//     reverse slice both hold the same unique.Handle, so large label values
//     are never duplicated by the store.
//
// Read-only surface used by traversal code:
//
//	NumOfNodes() int               // O(1)
//	NumOfEdges() int               // O(1); undirected counts mirrored pairs once
//	Edges(i int) ([]int, error)    // O(1); insertion order, no copy
//	Index(label T) (int, error)    // O(1) amortized
//	Key(i int) (T, error)          // O(1)
//
// Errors:
//
//	ErrUnknownLabel     - Index called with a label that was never inserted.
//	ErrIndexOutOfRange  - Edges, Degree, Key or Handle called with i ∉ [0, NumOfNodes()).
//
// Both are caller-contract violations; callers branch with errors.Is.
//
// Example:
//
//	g := core.NewGraph[string]()
//	g.Insert("a", "b")
//	g.Insert("b", "c")
//	i, _ := g.Index("b")   // 1
//	nbrs, _ := g.Edges(i)  // [0 2]
//
// Graph performs no locking. Build it from one goroutine; after the last
// Insert it may be read concurrently.
package core
