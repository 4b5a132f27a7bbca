// Package bfs provides breadth-first traversal over an index-addressed graph,
// driven by pre-visit, post-visit and edge hooks.
package bfs

import (
	"fmt"

	"go.uber.org/zap"
)

// Traverser owns the reusable BFS state for one graph: the FIFO queue and the
// marked/processed flags. Buffers are sized to the graph once and cleared
// after every run by touching only the nodes that run reached, so sweeping
// all components costs O(V + E) overall instead of O(V) per component.
//
// A Traverser is not safe for concurrent use.
type Traverser struct {
	graph Adjacency

	// queue holds every node enqueued during the current run; the run
	// advances a head cursor instead of popping, so after the run queue
	// lists exactly the marked nodes.
	queue []int
	// marked[v]: v has been enqueued at least once.
	marked []bool
	// processed[v]: v's neighbor expansion has completed.
	processed []bool
}

// NewTraverser returns a Traverser bound to g.
func NewTraverser(g Adjacency) *Traverser {
	return &Traverser{graph: g}
}

// Traverse runs a single breadth-first traversal of g from start.
// It is shorthand for NewTraverser(g).Run(start, opts...).
func Traverse(g Adjacency, start int, opts ...Option) error {
	return NewTraverser(g).Run(start, opts...)
}

// Run explores every node reachable from start in breadth-first order.
//
// Algorithm:
//  1. Seed the queue with start and mark it.
//  2. Dequeue u and call PreVisit(u).
//  3. For every v in Edges(u), in adjacency order:
//     - if v is not processed, call OnEdge(u, v);
//     - if v is not marked, mark it and enqueue it.
//  4. Call PostVisit(u), then mark u processed.
//  5. Repeat until the queue is empty.
//
// Marking on enqueue guarantees each node is visited at most once. Keeping
// "processed" separate from "marked" lets OnEdge see edges between two
// nodes that are both already queued, which Bipartite relies on.
//
// Returns ErrGraphNil (also for a typed nil *core.Graph), ErrIndexOutOfRange
// for an invalid start, or ErrNeighbors if the graph fails to return an
// adjacency list or reports a neighbor outside [0, NumOfNodes()).
//
// Complexity: O(V + E) time; O(V) memory, reused across runs.
func (t *Traverser) Run(start int, opts ...Option) error {
	return t.run(start, resolve(opts))
}

func (t *Traverser) run(start int, o Options) error {
	if isNil(t.graph) {
		return ErrGraphNil
	}
	n := t.graph.NumOfNodes()
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start %d not in [0, %d)", ErrIndexOutOfRange, start, n)
	}

	t.grow(n)
	defer t.reset()

	t.queue = append(t.queue, start)
	t.marked[start] = true

	for head := 0; head < len(t.queue); head++ {
		u := t.queue[head]
		o.PreVisit(u)

		nbrs, err := t.graph.Edges(u)
		if err != nil {
			return fmt.Errorf("%w: node %d: %v", ErrNeighbors, u, err)
		}
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: node %d: neighbor %d not in [0, %d)", ErrNeighbors, u, v, n)
			}
			if !t.processed[v] {
				o.OnEdge(u, v)
			}
			if !t.marked[v] {
				t.marked[v] = true
				t.queue = append(t.queue, v)
			}
		}

		o.PostVisit(u)
		t.processed[u] = true
	}

	if ce := o.Logger.Check(zap.DebugLevel, "bfs: traversal complete"); ce != nil {
		ce.Write(zap.Int("start", start), zap.Int("visited", len(t.queue)), zap.Int("nodes", n))
	}

	return nil
}

// grow makes sure the flag slices cover n nodes. The graph may have gained
// nodes since the previous run.
func (t *Traverser) grow(n int) {
	if len(t.marked) >= n {
		return
	}
	t.marked = append(t.marked, make([]bool, n-len(t.marked))...)
	t.processed = append(t.processed, make([]bool, n-len(t.processed))...)
	if cap(t.queue) < n {
		t.queue = make([]int, 0, n)
	}
}

// reset clears the flags of every node the last run enqueued.
func (t *Traverser) reset() {
	for _, u := range t.queue {
		t.marked[u] = false
		t.processed[u] = false
	}
	t.queue = t.queue[:0]
}
