// Package ccpool provides the thread-pool label-propagation kernel. A fixed
// set of long-lived goroutines,
// coordinated by a single reusable cyclic Barrier, relax vertex labels each
// round under either static block partitioning or dynamic chunking from a
// shared atomic cursor, and agree on convergence strictly after a barrier
// rendezvous so no goroutine can observe false termination.
//
// This mirrors the original C implementation's pthread_barrier_t-based
// worker pool one-for-one in goroutines: the barrier is the only
// synchronization primitive in the hot path, recycled across an unbounded
// number of rounds.
package ccpool
