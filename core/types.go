// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options, sentinel errors and NewGraph.
// Policy:
//   - Direction is fixed at construction and never changes afterwards.
//   - Labels are interned once; every internal structure stores the same handle.
//   - The only mutation is append-only edge insertion (Insert).

package core

import (
	"errors"
	"unique"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownLabel indicates Index was called with a label that was never inserted.
	ErrUnknownLabel = errors.New("core: unknown label")

	// ErrIndexOutOfRange indicates a node index outside [0, NumOfNodes()).
	ErrIndexOutOfRange = errors.New("core: index out of range")
)

// GraphOption configures a Graph before creation.
// Options are not generic, so the same slice can build graphs of any label type.
type GraphOption func(cfg *graphConfig)

// graphConfig is the resolved construction policy of a Graph.
type graphConfig struct {
	directed bool
	capacity int
	logger   *zap.Logger
}

// WithDirected sets the direction policy: true stores only u→v on Insert(u, v),
// false also stores the mirrored v→u entry.
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// WithCapacity pre-sizes node storage for n distinct labels.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(cfg *graphConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// WithLogger attaches a zap logger. The graph only logs at Debug level.
// A nil logger keeps the default no-op logger.
func WithLogger(logger *zap.Logger) GraphOption {
	return func(cfg *graphConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Graph is an append-only adjacency-list graph over labels of type T.
//
// Every distinct label receives a dense zero-based index in order of first
// appearance. The label itself is interned through unique.Make, so the
// label→index map and the index→label slice share one canonical allocation
// per label instead of holding independent copies.
//
// The read methods treat a nil *Graph as empty: counts are zero and lookups
// fail with ErrUnknownLabel or ErrIndexOutOfRange. Insert requires a graph
// built by NewGraph.
//
// Graph is not safe for concurrent mutation. Concurrent readers are fine once
// insertion has finished.
type Graph[T comparable] struct {
	directed bool
	logger   *zap.Logger

	// index maps an interned label to its dense index.
	index map[unique.Handle[T]]int
	// labels is the inverse of index: labels[i] is the handle for node i.
	labels []unique.Handle[T]

	// adj[u] lists neighbor indices of u in insertion order.
	adj [][]int
	// arcs is the total number of adjacency entries (Σ len(adj[u])).
	arcs int
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(capacity).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	cfg := graphConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		directed: cfg.directed,
		logger:   cfg.logger,
		index:    make(map[unique.Handle[T]]int, cfg.capacity),
		labels:   make([]unique.Handle[T], 0, cfg.capacity),
		adj:      make([][]int, 0, cfg.capacity),
	}
}
