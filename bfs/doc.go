// Package bfs provides a hook-driven breadth-first traversal over a graph of
// dense integer indices, and the queries derived from it.
//
// What
//
//   - Traverse / Traverser.Run explore every node reachable from a start index
//     in breadth-first order. All observable effects go through three hooks:
//   - PreVisit(u)   when u is dequeued
//   - OnEdge(u, v)  for each adjacency entry u→v whose target is not yet processed
//   - PostVisit(u)  after u's neighbors were scanned
//   - FindPath        fewest-edges path between two labels of a core.Graph.
//   - ConnectedComponents / Components   component count and label groups.
//   - Bipartite / Bipartition            two-coloring test and color classes.
//
// Marked vs. processed
//
//	A node is marked when it is enqueued and processed once its expansion is
//	done. Enqueueing is guarded by "marked", so no node is queued twice.
//	OnEdge is guarded by "processed", so an edge between two nodes that are
//	both queued but not yet expanded is still reported once, from the side
//	expanded first. Bipartite needs exactly those edges to find color
//	conflicts inside a BFS level.
//
// Determinism
//
//	Neighbors are scanned in core insertion order and components are swept in
//	increasing index order, so hook sequences and results are reproducible.
//
// Directed stores
//
//	ConnectedComponents and Bipartite use the adjacency as stored. On a
//	directed core.Graph they do not symmetrize edges; use an undirected store
//	when the undirected meaning is wanted.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E) per traversal and per sweep.
//   - Memory: O(V); a Traverser reuses its buffers across runs.
//
// Usage
//
//	g := core.NewGraph[string]()
//	g.Insert("f", "a")
//	g.Insert("a", "b")
//	g.Insert("b", "c")
//
//	path, err := bfs.FindPath(g, "f", "c")   // [f a b c]
//	n, err := bfs.ConnectedComponents(g)     // 1
//	ok, err := bfs.Bipartite(g)              // true
//
//	// raw traversal with hooks
//	err = bfs.Traverse(g, 0,
//	    bfs.WithPreVisit(func(u int) { /* ... */ }),
//	    bfs.WithOnEdge(func(u, v int) { /* ... */ }),
//	    bfs.WithPostVisit(func(u int) { /* ... */ }),
//	    bfs.WithLogger(logger),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrIndexOutOfRange   if the start index is invalid (same sentinel as core).
//   - ErrNeighbors         if the graph fails to return an adjacency list.
//   - ErrNoPath            FindPath: destination unreachable.
//   - ErrNotBipartite      Bipartition: no two-coloring exists.
//   - core.ErrUnknownLabel FindPath: a label was never inserted (wrapped).
package bfs
