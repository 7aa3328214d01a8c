package cc

import "github.com/atpapadop/ccbench/csr"

// LPSequential computes connected components by single-threaded label
// propagation with frontier compaction: the same relax-until-quiescent
// template that ccparallel.Relax and ccpool.Relax generalize to many
// goroutines.
//
// labels must have length g.N; on return labels[v] equals the minimum
// vertex ID reachable from v — the LP convention, not dense IDs. If g.N == 0,
// LPSequential returns immediately and leaves labels untouched.
func LPSequential(g *csr.Graph, labelsOut []int32) {
	n := g.N
	if n == 0 {
		return
	}

	cur := labelsOut
	next := make([]int32, n)
	active := make([]bool, n)
	nextActive := make([]bool, n)

	for v := int32(0); v < n; v++ {
		cur[v] = v
		active[v] = true
	}

	for {
		changed := false
		copy(next, cur)

		for u := int32(0); u < n; u++ {
			if !active[u] {
				continue
			}

			newLabel := cur[u]
			for _, v := range g.Neighbors(u) {
				if cur[v] < newLabel {
					newLabel = cur[v]
				}
			}

			if newLabel < cur[u] {
				next[u] = newLabel
				nextActive[u] = true
				for _, v := range g.Neighbors(u) {
					nextActive[v] = true
				}
				changed = true
			}
		}

		cur, next = next, cur
		active, nextActive = nextActive, active
		for i := range nextActive {
			nextActive[i] = false
		}

		if !changed {
			break
		}
	}

	if &cur[0] != &labelsOut[0] {
		copy(labelsOut, cur)
	}
}
