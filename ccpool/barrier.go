package ccpool

import "sync"

// Barrier is a cyclic rendezvous point for a fixed number of goroutines: it
// supports an unbounded number of repeated Wait calls without
// reinitialization, matching pthread_barrier_t's reuse semantics. No stdlib
// primitive provides this directly —
// sync.WaitGroup is single-use and cannot be safely recycled while late
// goroutines might still observe the previous generation — so Barrier is
// built on sync.Cond with a generation counter, the standard idiom for a
// reusable barrier in Go.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	n          int
	waiting    int
	generation uint64
}

// NewBarrier returns a Barrier for exactly n participants. n must be >= 1.
func NewBarrier(n int) *Barrier {
	b := &Barrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all n participants have called Wait for the current
// generation, then releases them all and advances to the next generation.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.waiting++
	if b.waiting == b.n {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation {
		b.cond.Wait()
	}
}
