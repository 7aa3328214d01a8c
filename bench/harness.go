package bench

import (
	"fmt"
	"time"

	"github.com/atpapadop/ccbench/cc"
	"github.com/atpapadop/ccbench/ccerr"
	"github.com/atpapadop/ccbench/ccparallel"
	"github.com/atpapadop/ccbench/ccpool"
	"github.com/atpapadop/ccbench/csr"
)

// Algorithm selects which of the four connected-components kernels the
// harness invokes.
type Algorithm int

const (
	AlgorithmBFS Algorithm = iota
	AlgorithmLPSequential
	AlgorithmLPParallelLoop
	AlgorithmLPParallelPool
)

// String renders the algorithm the way the CLI's --algorithm flag accepts it.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmLPSequential:
		return "lp-sequential"
	case AlgorithmLPParallelLoop:
		return "lp-parallel-loop"
	case AlgorithmLPParallelPool:
		return "lp-parallel-pool"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts the CLI's "lp" (sequential) and "bfs" names plus
// the more specific parallel-kernel names the --algorithm flag also
// recognizes.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "bfs":
		return AlgorithmBFS, nil
	case "lp", "lp-sequential":
		return AlgorithmLPSequential, nil
	case "lp-parallel-loop":
		return AlgorithmLPParallelLoop, nil
	case "lp-parallel-pool":
		return AlgorithmLPParallelPool, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", ccerr.ErrBadArgument, name)
	}
}

// Config carries the tuning knobs that only some algorithms consume:
// Threads is ignored by AlgorithmBFS/AlgorithmLPSequential, and ChunkSize's
// sentinel meaning (static partitioning) only applies to AlgorithmLPParallelPool.
type Config struct {
	Algorithm Algorithm
	Threads   int
	ChunkSize int32
}

// Result is what the harness hands to its external collaborators: the final
// label vector from the last run and the R per-run wall-clock durations.
// Aggregation (mean, min, surface points) is the caller's concern.
type Result struct {
	Labels    []int32
	Durations []time.Duration
}

// Run invokes the selected kernel runs times over g, writing each time into
// one label buffer of length g.N that Run allocates and reuses, and timing
// each call with the monotonic clock. Only the final run's labels are retained; all
// per-run durations are returned.
func Run(g *csr.Graph, cfg Config, runs int) (Result, error) {
	if runs < 1 {
		return Result{}, fmt.Errorf("%w: runs must be >= 1, got %d", ccerr.ErrBadArgument, runs)
	}

	kernel, err := resolveKernel(g, cfg)
	if err != nil {
		return Result{}, err
	}

	labels := make([]int32, g.N)
	durations := make([]time.Duration, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		kernel(labels)
		durations[i] = time.Since(start)
	}

	return Result{Labels: labels, Durations: durations}, nil
}

// resolveKernel closes cfg's tuning knobs over g into a single labels-only
// function, so Run's timed loop never branches on algorithm per call.
func resolveKernel(g *csr.Graph, cfg Config) (func(labels []int32), error) {
	switch cfg.Algorithm {
	case AlgorithmBFS:
		return func(labels []int32) { cc.BFS(g, labels) }, nil
	case AlgorithmLPSequential:
		return func(labels []int32) { cc.LPSequential(g, labels) }, nil
	case AlgorithmLPParallelLoop:
		return func(labels []int32) { ccparallel.Relax(g, labels, cfg.ChunkSize, cfg.Threads) }, nil
	case AlgorithmLPParallelPool:
		return func(labels []int32) { ccpool.Relax(g, labels, cfg.ChunkSize, cfg.Threads) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %d", ccerr.ErrBadArgument, cfg.Algorithm)
	}
}
