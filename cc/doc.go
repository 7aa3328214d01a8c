// Package cc provides the sequential connected-components kernels: a
// multi-source BFS that assigns dense component IDs (the correctness
// oracle), and a label-propagation-with-frontier kernel whose shape the
// parallel kernels in ccparallel and ccpool generalize.
//
// Both kernels share the Labels contract: given a *csr.Graph and a
// caller-allocated []int32 of length G.N, they overwrite every index with a
// non-initial value on return. BFS produces dense IDs in [0,k); LP produces
// the minimum reachable vertex ID per component (not dense). See
// CountUnique and Canonicalize for bridging the two conventions.
package cc
