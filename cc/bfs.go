package cc

import "github.com/atpapadop/ccbench/csr"

// unvisited marks a vertex with no component assigned yet.
const unvisited = -1

// BFS assigns each vertex of g a dense component ID in [0,k) via multi-source
// breadth-first search. It is the correctness oracle the other
// three kernels are checked against: two vertices share a label iff they are
// connected, and labels are assigned in discovery order for a given
// adjacency ordering, making the result deterministic for a fixed CSR.
//
// labels must have length g.N; BFS overwrites it in full. If g.N == 0, BFS
// returns immediately and leaves labels untouched.
func BFS(g *csr.Graph, labels []int32) {
	n := g.N
	if n == 0 {
		return
	}

	for i := range labels {
		labels[i] = unvisited
	}

	queue := make([]int32, 0, n)
	var current int32
	for start := int32(0); start < n; start++ {
		if labels[start] != unvisited {
			continue
		}

		labels[start] = current
		queue = queue[:0]
		queue = append(queue, start)

		for front := 0; front < len(queue); front++ {
			u := queue[front]
			for _, v := range g.Neighbors(u) {
				if labels[v] == unvisited {
					labels[v] = current
					queue = append(queue, v)
				}
			}
		}
		current++
	}
}
