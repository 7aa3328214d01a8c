package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atpapadop/ccbench/bench"
	"github.com/atpapadop/ccbench/csr"
	"github.com/atpapadop/ccbench/mtxio"
	"github.com/atpapadop/ccbench/rangespec"
	"github.com/atpapadop/ccbench/resultsio"
)

// newSweepCommand mirrors main_cc_pthreads_sweep.c: it runs the thread-pool
// kernel across the cross product of a thread-count range and a chunk-size
// range, averaging --runs repetitions per cell, and emits the
// threads,chunk_size,average_seconds surface CSV.
func newSweepCommand(loggerFn func() *zap.Logger) *cobra.Command {
	var runs int
	var threadsSpec string
	var chunkSpec string
	var output string

	cmd := &cobra.Command{
		Use:   "sweep <matrix.mtx>",
		Short: "Sweep thread counts and chunk sizes over the thread-pool kernel",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger := loggerFn()
			matrixPath := args[0]

			threadCounts, err := rangespec.Parse(threadsSpec, "--threads")
			if err != nil {
				return err
			}
			chunkSizes, err := rangespec.Parse(chunkSpec, "--chunk-size")
			if err != nil {
				return err
			}

			parsed, err := mtxio.ParseFile(matrixPath)
			if err != nil {
				return err
			}
			g, err := csr.BuildFromEdges(parsed.N, parsed.Edges, csr.Options{
				Symmetrize:    true,
				DropSelfLoops: true,
			})
			if err != nil {
				return err
			}
			logger.Info("sweeping thread-pool kernel", zap.Int32("n", g.N), zap.Int64("m", g.M))

			rows := make([]resultsio.SurfaceRow, 0, len(threadCounts)*len(chunkSizes))
			for _, t := range threadCounts {
				for _, c := range chunkSizes {
					result, err := bench.Run(g, bench.Config{
						Algorithm: bench.AlgorithmLPParallelPool,
						Threads:   t,
						ChunkSize: int32(c),
					}, runs)
					if err != nil {
						return err
					}

					rows = append(rows, resultsio.SurfaceRow{
						Threads:        t,
						ChunkSize:      int32(c),
						AverageSeconds: averageSeconds(result.Durations),
					})
					logger.Info("cell complete",
						zap.Int("threads", t), zap.Int("chunk_size", c),
						zap.Float64("average_seconds", rows[len(rows)-1].AverageSeconds))
				}
			}

			if output == "" {
				return nil
			}
			if err := resultsio.EnsureDirectory(output); err != nil {
				return err
			}
			surfacePath := resultsio.JoinPath(output, resultsio.MatrixStem(matrixPath)+".surface.csv")
			return resultsio.WriteSurfaceCSV(surfacePath, rows)
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 1, "timed repetitions per grid cell")
	cmd.Flags().StringVar(&threadsSpec, "threads", "1,2,4,8", "comma list or start:end[:step] range")
	cmd.Flags().StringVar(&chunkSpec, "chunk-size", "1,32,1024", "comma list or start:end[:step] range")
	cmd.Flags().StringVar(&output, "output", "", "directory to write the surface CSV into")

	return cmd
}

func averageSeconds(durations []time.Duration) float64 {
	if len(durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return (total / time.Duration(len(durations))).Seconds()
}
