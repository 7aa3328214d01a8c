package csr_test

import (
	"fmt"

	"github.com/atpapadop/ccbench/csr"
)

// ExampleBuildFromEdges builds a CSR graph from a small triangle plus an
// isolated vertex, symmetrizing and dropping self-loops along the way.
func ExampleBuildFromEdges() {
	edges := []csr.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}
	g, err := csr.BuildFromEdges(4, edges, csr.Options{Symmetrize: true, DropSelfLoops: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("n:", g.N, "m:", g.M)
	fmt.Println("neighbors(0):", g.Neighbors(0))
	fmt.Println("degree(3):", g.Degree(3))

	// Output:
	// n: 4 m: 6
	// neighbors(0): [1 2]
	// degree(3): 0
}
