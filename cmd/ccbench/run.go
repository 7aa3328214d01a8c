package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atpapadop/ccbench/bench"
	"github.com/atpapadop/ccbench/ccerr"
	"github.com/atpapadop/ccbench/csr"
	"github.com/atpapadop/ccbench/mtxio"
	"github.com/atpapadop/ccbench/resultsio"
)

// registerRunFlags attaches the single-configuration benchmark's flags and
// RunE to cmd: everything the root command exposes except "sweep".
func registerRunFlags(cmd *cobra.Command, loggerFn func() *zap.Logger) {
	var runs int
	var threads int
	var chunkSize int
	var algorithm string
	var symmetrize bool
	var output string

	cmd.Flags().IntVar(&runs, "runs", 1, "number of timed repetitions")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker count for parallel kernels (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "chunk size for parallel kernels (1 selects static mode in lp-parallel-pool, 0 = default)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "lp", "bfs|lp|lp-parallel-loop|lp-parallel-pool")
	cmd.Flags().BoolVar(&symmetrize, "symmetrize", true, "symmetrize directed edges into both directions")
	cmd.Flags().StringVar(&output, "output", "", "directory to write labels and timings CSV into (empty disables output)")

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		logger := loggerFn()
		matrixPath := args[0]

		algo, err := bench.ParseAlgorithm(algorithm)
		if err != nil {
			return err
		}
		if runs < 1 {
			return fmt.Errorf("%w: --runs must be >= 1, got %d", ccerr.ErrBadArgument, runs)
		}

		logger.Info("parsing matrix", zap.String("path", matrixPath))
		parsed, err := mtxio.ParseFile(matrixPath)
		if err != nil {
			return err
		}

		g, err := csr.BuildFromEdges(parsed.N, parsed.Edges, csr.Options{
			Symmetrize:    symmetrize,
			DropSelfLoops: true,
		})
		if err != nil {
			return err
		}
		logger.Info("built CSR graph", zap.Int32("n", g.N), zap.Int64("m", g.M))

		result, err := bench.Run(g, bench.Config{
			Algorithm: algo,
			Threads:   threads,
			ChunkSize: int32(chunkSize),
		}, runs)
		if err != nil {
			return err
		}

		for i, d := range result.Durations {
			logger.Info("run complete", zap.Int("run", i+1), zap.Duration("elapsed", d))
		}

		if output == "" {
			return nil
		}
		return writeOutputs(output, matrixPath, algorithm, result)
	}
}

func writeOutputs(output, matrixPath, algorithm string, result bench.Result) error {
	if err := resultsio.EnsureDirectory(output); err != nil {
		return err
	}

	stem := resultsio.MatrixStem(matrixPath)
	labelsPath := resultsio.JoinPath(output, stem+".labels.txt")
	if err := resultsio.WriteLabels(labelsPath, result.Labels); err != nil {
		return err
	}

	timingsPath := resultsio.BuildResultsPath(output, "timings", matrixPath)
	seconds := make([]float64, len(result.Durations))
	for i, d := range result.Durations {
		seconds[i] = d.Seconds()
	}
	return resultsio.AppendTimesColumn(timingsPath, algorithm, seconds)
}
