// Command ccbench is the benchmark CLI: it ingests a Matrix
// Market file, builds a CSR graph, runs one of the four connected-components
// kernels R times, and writes labels + timings to --output. The "sweep"
// subcommand runs the thread-pool kernel across a grid of thread counts and
// chunk sizes, producing a surface CSV.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// cobra already printed the error; a single-line diagnostic plus a
		// non-zero exit is main_cc.c's print_usage/EXIT_FAILURE contract.
		os.Exit(1)
	}
}
