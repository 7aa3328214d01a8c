package ccpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/atpapadop/ccbench/csr"
)

// DefaultChunkSize mirrors ccparallel.DefaultChunkSize for dynamic mode when
// no chunk size is supplied.
const DefaultChunkSize = 1024

// StaticChunkSentinel is the chunk_size value that selects static block
// partitioning: any other positive value selects dynamic chunking of that
// size. Mode and RelaxMode below expose an explicit, non-overloaded
// alternative to this sentinel for callers who prefer it.
const StaticChunkSentinel = 1

// Mode selects the thread-pool kernel's work-distribution discipline.
type Mode int

const (
	// ModeStatic assigns thread t a fixed block [t*ceil(n/T), (t+1)*ceil(n/T))
	// for every round.
	ModeStatic Mode = iota
	// ModeDynamic has each worker repeatedly claim chunkSize vertices from a
	// shared atomic cursor, reset to 0 at the start of every round.
	ModeDynamic
)

// Relax computes connected components via a fixed thread pool coordinated
// by a barrier. labels must have length g.N; on return labels[v] equals the
// minimum vertex ID reachable from v. chunkSize == 1
// selects static block partitioning; any other positive value selects
// dynamic chunking of that size; chunkSize <= 0 (other than 1) defaults to
// DefaultChunkSize under dynamic mode. Parameter order matches
// ccparallel.Relax (chunkSize before numThreads).
func Relax(g *csr.Graph, labels []int32, chunkSize int32, numThreads int) {
	mode := ModeDynamic
	effectiveChunk := chunkSize
	if chunkSize == StaticChunkSentinel {
		mode = ModeStatic
	} else if effectiveChunk <= 0 {
		effectiveChunk = DefaultChunkSize
	}
	RelaxMode(g, labels, effectiveChunk, numThreads, mode)
}

// RelaxMode is Relax with an explicit Mode instead of the overloaded
// chunk-size sentinel. chunkSize is ignored under ModeStatic.
func RelaxMode(g *csr.Graph, labels []int32, chunkSize int32, numThreads int, mode Mode) {
	n := g.N
	if n == 0 {
		return
	}
	if numThreads <= 0 {
		numThreads = runtime.GOMAXPROCS(0)
	}
	if int32(numThreads) > n {
		numThreads = int(n)
	}
	if mode == ModeDynamic && chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	atomicLabels := make([]atomic.Int32, n)
	for v := int32(0); v < n; v++ {
		atomicLabels[v].Store(v)
	}

	blockSize := int32((int64(n) + int64(numThreads) - 1) / int64(numThreads))

	var nextVertex atomic.Int64
	var changed atomic.Int32 // 0: clear, 1: some worker changed this round, -1: converged sentinel
	barrier := NewBarrier(numThreads)

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for tid := 0; tid < numThreads; tid++ {
		blockStart := int32(tid) * blockSize
		blockEnd := blockStart + blockSize
		if blockStart > n {
			blockStart = n
		}
		if blockEnd > n {
			blockEnd = n
		}

		go func(tid int, blockStart, blockEnd int32) {
			defer wg.Done()
			runWorker(workerArgs{
				tid:         tid,
				isLeader:    tid == 0,
				g:           g,
				labels:      atomicLabels,
				nextVertex:  &nextVertex,
				changed:     &changed,
				barrier:     barrier,
				mode:        mode,
				chunkSize:   chunkSize,
				blockStart:  blockStart,
				blockEnd:    blockEnd,
			})
		}(tid, blockStart, blockEnd)
	}
	wg.Wait()

	for v := int32(0); v < n; v++ {
		labels[v] = atomicLabels[v].Load()
	}
}

type workerArgs struct {
	tid        int
	isLeader   bool
	g          *csr.Graph
	labels     []atomic.Int32
	nextVertex *atomic.Int64
	changed    *atomic.Int32
	barrier    *Barrier
	mode       Mode
	chunkSize  int32
	blockStart int32
	blockEnd   int32
}

// runWorker runs one thread's per-round protocol: the leader resets the
// shared cursor and change flag, every thread waits at the first barrier,
// relaxes chunks until the cursor is exhausted, reports whether it changed
// anything, waits at the second barrier, and the leader alone decides
// whether another round is needed before the loop repeats.
func runWorker(a workerArgs) {
	n := a.g.N
	for {
		if a.isLeader {
			a.nextVertex.Store(0)
			a.changed.Store(0)
		}
		a.barrier.Wait() // rendezvous 1: reset visible to all

		localChanged := false
		if a.mode == ModeDynamic {
			for {
				start := a.nextVertex.Add(int64(a.chunkSize)) - int64(a.chunkSize)
				if start >= int64(n) {
					break
				}
				end := start + int64(a.chunkSize)
				if end > int64(n) {
					end = int64(n)
				}
				for u := int32(start); u < int32(end); u++ {
					if relaxVertex(a.g, a.labels, u) {
						localChanged = true
					}
				}
			}
		} else {
			for u := a.blockStart; u < a.blockEnd; u++ {
				if relaxVertex(a.g, a.labels, u) {
					localChanged = true
				}
			}
		}
		if localChanged {
			a.changed.Store(1)
		}
		a.barrier.Wait() // rendezvous 2: all relax work for this round visible

		if a.isLeader {
			if a.changed.Load() == 0 {
				a.changed.Store(-1) // signal convergence
			} else {
				a.changed.Store(0)
			}
		}
		a.barrier.Wait() // rendezvous 3: termination decision visible to all

		if a.changed.Load() == -1 {
			return
		}
	}
}

// relaxVertex mirrors ccparallel's relax step: lower u's label to the
// minimum visible in its closed neighborhood, then optimistically push the
// same bound onto each neighbor.
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
