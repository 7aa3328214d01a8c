// Package resultsio writes the benchmark harness's output artifacts: a
// labels file, a timings CSV that gains one column per benchmark
// configuration with one row per run (padding short columns rather than
// truncating long ones), and the sweep tool's
// threads/chunk-size/average-seconds surface CSV.
package resultsio
