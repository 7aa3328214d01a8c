// Package ccparallel provides the shared-memory loop-parallel
// label-propagation kernel. Vertices are relaxed by a fixed pool of
// goroutines pulling chunks from a shared atomic cursor — a work-stealing
// shape with no blocking inside a chunk and a single join point per round
// (golang.org/x/sync/errgroup.Group.Wait) — and labels are held in a slice
// of atomic.Int32, CAS-relaxed under relaxed ordering.
//
// Relax produces the same minimum-reachable-ID partition as cc.LPSequential
// for the same graph, though the concrete label values and round count may
// differ between runs because vertex relaxation order within a round is
// unordered.
package ccparallel
