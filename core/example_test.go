package core_test

import (
	"fmt"

	"github.com/katalvlaran/bfsgraph/core"
)

// ExampleGraph_Insert builds a small undirected graph and inspects its adjacency.
func ExampleGraph_Insert() {
	g := core.NewGraph[string]()
	g.Insert("a", "b")
	g.Insert("b", "c")
	g.Insert("c", "d")
	g.Insert("b", "d")

	fmt.Println("nodes:", g.NumOfNodes(), "edges:", g.NumOfEdges())
	for i, label := range g.All() {
		nbrs, _ := g.Edges(i)
		fmt.Printf("%d %s -> %v\n", i, label, nbrs)
	}
	// Output:
	// nodes: 4 edges: 4
	// 0 a -> [1]
	// 1 b -> [0 2 3]
	// 2 c -> [1 3]
	// 3 d -> [2 1]
}

// ExampleGraph_Key recovers labels from indices on a directed graph.
func ExampleGraph_Key() {
	type port struct {
		Host string
		Num  int
	}
	g := core.NewGraph[port](core.WithDirected(true))
	g.Insert(port{"gw", 443}, port{"api", 8080})
	g.Insert(port{"api", 8080}, port{"db", 5432})

	i, _ := g.Index(port{"api", 8080})
	nbrs, _ := g.Edges(i)
	next, _ := g.Key(nbrs[0])
	fmt.Println(i, next.Host, next.Num, g.NumOfEdges())
	// Output:
	// 1 db 5432 2
}
