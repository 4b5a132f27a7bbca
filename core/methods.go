// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and the read-only query surface (counts, adjacency, lookups).
//
// Determinism:
//   - Indices follow first-appearance order of labels across Insert calls.
//   - Edges(i) preserves insertion order; traversal order depends on it.

package core

import (
	"fmt"
	"iter"
	"unique"

	"go.uber.org/zap"
)

// Insert records an edge between u and v.
//
// Implementation:
//   - Stage 1: Register u, then v. A known label keeps its index; a new one
//     gets the next dense index and an empty adjacency list.
//   - Stage 2: Append v to adj[u]; for undirected graphs also append u to adj[v].
//
// Behavior highlights:
//   - Never fails.
//   - Multi-edges are kept: inserting (u, v) twice stores two entries.
//   - Self-loops are kept: on an undirected graph Insert(u, u) appends u to adj[u] twice,
//     so the loop counts as a single edge in NumOfEdges.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) Insert(u, v T) {
	ui := g.register(u)
	vi := g.register(v)

	g.adj[ui] = append(g.adj[ui], vi)
	g.arcs++
	if !g.directed {
		g.adj[vi] = append(g.adj[vi], ui)
		g.arcs++
	}
}

// register interns label and returns its index, allocating a new one on first sight.
func (g *Graph[T]) register(label T) int {
	h := unique.Make(label)
	if i, ok := g.index[h]; ok {
		return i
	}

	i := len(g.labels)
	g.index[h] = i
	g.labels = append(g.labels, h)
	g.adj = append(g.adj, nil)

	if ce := g.logger.Check(zap.DebugLevel, "core: node registered"); ce != nil {
		ce.Write(zap.Int("nodeIndex", i), zap.Any("label", label))
	}

	return i
}

// NumOfNodes returns the number of distinct labels inserted so far.
// A nil graph has no nodes.
// Complexity: O(1).
func (g *Graph[T]) NumOfNodes() int {
	if g == nil {
		return 0
	}

	return len(g.labels)
}

// IsNil reports whether g is a nil *Graph. Traversals use it to tell a typed
// nil held in an interface apart from an empty graph.
func (g *Graph[T]) IsNil() bool {
	return g == nil
}

// NumOfEdges returns the number of inserted edges.
// Directed graphs report the raw adjacency entry count; undirected graphs
// report half of it, since every insertion stored a mirrored pair.
// Complexity: O(1).
func (g *Graph[T]) NumOfEdges() int {
	if g == nil {
		return 0
	}
	if g.directed {
		return g.arcs
	}

	return g.arcs / 2
}

// Directed reports the construction-time direction policy.
func (g *Graph[T]) Directed() bool {
	return g.directed
}

// Edges returns the neighbor indices of node i in insertion order.
// The returned slice is owned by the graph and must not be modified.
//
// Errors:
//   - ErrIndexOutOfRange if i is not a valid node index.
//
// Complexity: O(1), no allocation.
func (g *Graph[T]) Edges(i int) ([]int, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}

	return g.adj[i], nil
}

// Degree returns len(Edges(i)). On undirected graphs a self-loop contributes 2.
func (g *Graph[T]) Degree(i int) (int, error) {
	if err := g.checkIndex(i); err != nil {
		return 0, err
	}

	return len(g.adj[i]), nil
}

// Index returns the dense index assigned to label.
//
// Errors:
//   - ErrUnknownLabel if label was never inserted.
func (g *Graph[T]) Index(label T) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%w: %v", ErrUnknownLabel, label)
	}
	i, ok := g.index[unique.Make(label)]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownLabel, label)
	}

	return i, nil
}

// Has reports whether label has been inserted.
func (g *Graph[T]) Has(label T) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[unique.Make(label)]

	return ok
}

// Key returns the original label of node i.
//
// Errors:
//   - ErrIndexOutOfRange if i is not a valid node index.
func (g *Graph[T]) Key(i int) (T, error) {
	h, err := g.Handle(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return h.Value(), nil
}

// Handle returns the interned handle of node i. Handles compare in O(1)
// and let callers hold a label without copying it.
func (g *Graph[T]) Handle(i int) (unique.Handle[T], error) {
	if err := g.checkIndex(i); err != nil {
		return unique.Handle[T]{}, err
	}

	return g.labels[i], nil
}

// All yields (index, label) pairs in ascending index order.
func (g *Graph[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if g == nil {
			return
		}
		for i, h := range g.labels {
			if !yield(i, h.Value()) {
				return
			}
		}
	}
}

func (g *Graph[T]) checkIndex(i int) error {
	if n := g.NumOfNodes(); i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}

	return nil
}
