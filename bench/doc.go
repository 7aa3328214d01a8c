// Package bench implements the benchmark harness: repeated
// timed invocations of a connected-components kernel over the same graph,
// recording per-run wall-clock durations and handing off the final labels
// and durations to external collaborators (CSV writers, CLI). Aggregation
// (mean, min, surface points) is deliberately left to the caller.
package bench
