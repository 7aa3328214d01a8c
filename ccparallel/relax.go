package ccparallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/atpapadop/ccbench/csr"
)

// DefaultChunkSize is the fixed chunk size used when Relax is called with
// chunkSize <= 0.
const DefaultChunkSize = 1024

// Relax computes connected components via shared-memory parallel label
// propagation. labels must have length g.N; on return, labels[v] equals the
// minimum vertex ID reachable from v. If g.N == 0, Relax returns immediately
// and leaves labels untouched.
//
// workers, when > 0, overrides the number of goroutines pulling chunks;
// otherwise runtime.GOMAXPROCS(0) is used.
func Relax(g *csr.Graph, labels []int32, chunkSize int32, workers int) {
	n := g.N
	if n == 0 {
		return
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if int32(workers) > n {
		workers = int(n)
	}

	atomicLabels := make([]atomic.Int32, n)
	for v := int32(0); v < n; v++ {
		atomicLabels[v].Store(v)
	}

	var cursor atomic.Int64
	var anyChanged atomic.Bool

	for {
		cursor.Store(0)
		anyChanged.Store(false)

		var grp errgroup.Group
		for w := 0; w < workers; w++ {
			grp.Go(func() error {
				localChanged := false
				for {
					start := cursor.Add(int64(chunkSize)) - int64(chunkSize)
					if start >= int64(n) {
						break
					}
					end := start + int64(chunkSize)
					if end > int64(n) {
						end = int64(n)
					}
					for u := int32(start); u < int32(end); u++ {
						if relaxVertex(g, atomicLabels, u) {
							localChanged = true
						}
					}
				}
				if localChanged {
					anyChanged.Store(true)
				}
				return nil
			})
		}
		_ = grp.Wait()

		if !anyChanged.Load() {
			break
		}
	}

	for v := int32(0); v < n; v++ {
		labels[v] = atomicLabels[v].Load()
	}
}

// relaxVertex performs one relax step for u: compute the minimum label
// visible among u and its neighbors under relaxed atomic loads, CAS u's
// label down to it if it improves, then optimistically push the same bound
// onto each neighbor as a propagation hint. Returns true iff u's own label
// was lowered.
func relaxVertex(g *csr.Graph, labels []atomic.Int32, u int32) bool {
	old := labels[u].Load()
	newLabel := old
	for _, v := range g.Neighbors(u) {
		if nv := labels[v].Load(); nv < newLabel {
			newLabel = nv
		}
	}

	if newLabel >= old {
		return false
	}

	casDown(&labels[u], newLabel)
	for _, v := range g.Neighbors(u) {
		casDown(&labels[v], newLabel)
	}
	return true
}

// casDown CAS-loops *a downward until its observed value is <= bound. Safe
// under concurrent writers because the invariant is monotonic decrease: any
// value casDown observes is a valid upper bound to race against.
func casDown(a *atomic.Int32, bound int32) {
	for {
		cur := a.Load()
		if cur <= bound {
			return
		}
		if a.CompareAndSwap(cur, bound) {
			return
		}
	}
}
