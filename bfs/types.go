// Package bfs provides hooks, options and error definitions
// for breadth-first traversal over an index-addressed graph.
package bfs

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/bfsgraph/core"
)

// Sentinel errors for BFS execution and the queries built on it.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching a node's adjacency fails mid-traversal.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNoPath is returned by FindPath when the destination is unreachable from the source.
	ErrNoPath = errors.New("bfs: no path")

	// ErrNotBipartite is returned by Bipartition when a two-coloring does not exist.
	ErrNotBipartite = errors.New("bfs: graph is not bipartite")

	// ErrIndexOutOfRange is returned for a start index outside [0, NumOfNodes()).
	// It is the same sentinel as core.ErrIndexOutOfRange.
	ErrIndexOutOfRange = core.ErrIndexOutOfRange
)

// Adjacency is the read-only surface the traversal engine needs.
// *core.Graph[T] satisfies it for every label type T.
type Adjacency interface {
	// NumOfNodes returns the number of nodes; valid indices are [0, NumOfNodes()).
	NumOfNodes() int
	// Edges returns the neighbors of node u in traversal order. Every
	// neighbor must be a valid index; anything else fails with ErrNeighbors.
	Edges(u int) ([]int, error)
}

// nilChecker is implemented by pointer-backed graphs such as *core.Graph[T],
// so that a typed nil stored in an Adjacency is still reported as ErrGraphNil.
type nilChecker interface {
	IsNil() bool
}

// isNil reports whether g is nil, either as an interface or as a typed nil
// pointer that implements nilChecker.
func isNil(g Adjacency) bool {
	if g == nil {
		return true
	}
	nc, ok := g.(nilChecker)

	return ok && nc.IsNil()
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds the three traversal hooks and the logger.
// Hooks are synchronous; they run on the caller's goroutine.
type Options struct {
	// PreVisit is called when a node is taken off the queue, before its
	// neighbors are scanned.
	PreVisit func(u int)

	// PostVisit is called after all neighbors of u were scanned, right
	// before u is marked processed.
	PostVisit func(u int)

	// OnEdge is called for each adjacency entry u→v whose target has not
	// been processed yet. On undirected graphs it may fire for an edge
	// whose other endpoint is already marked but still waiting in the queue.
	OnEdge func(u, v int)

	// Logger receives a Debug summary per traversal. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with no-op hooks and a no-op logger.
func DefaultOptions() Options {
	return Options{
		PreVisit:  func(int) {},
		PostVisit: func(int) {},
		OnEdge:    func(int, int) {},
		Logger:    zap.NewNop(),
	}
}

// WithPreVisit registers a hook run when a node is dequeued.
func WithPreVisit(fn func(u int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.PreVisit = fn
		}
	}
}

// WithPostVisit registers a hook run after a node's neighbors were scanned.
func WithPostVisit(fn func(u int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.PostVisit = fn
		}
	}
}

// WithOnEdge registers a hook run for every edge into a not-yet-processed node.
func WithOnEdge(fn func(u, v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEdge = fn
		}
	}
}

// WithLogger sets the logger used for traversal and query summaries.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Color is a two-coloring class used by Bipartite and Bipartition.
type Color uint8

const (
	Uncolored Color = iota // not reached yet
	White                  // root side
	Black                  // opposite side
)

// Opposite returns the other color; Uncolored stays Uncolored.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Uncolored
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Uncolored"
	}
}
