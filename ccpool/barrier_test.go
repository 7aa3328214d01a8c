package ccpool

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBarrier_ReleasesAllParticipants(t *testing.T) {
	const n = 8
	b := NewBarrier(n)

	var arrived atomic.Int32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			arrived.Add(1)
			b.Wait()
			// Every participant must observe the full arrival count once
			// released: no goroutine exits Wait before the last one calls it.
			require.EqualValues(t, n, arrived.Load())
		}()
	}
	wg.Wait()
}

func TestBarrier_ReusableAcrossRounds(t *testing.T) {
	const n = 4
	const rounds = 50
	b := NewBarrier(n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				b.Wait()
			}
		}()
	}
	wg.Wait()
}

func TestBarrier_SingleParticipant(t *testing.T) {
	b := NewBarrier(1)
	b.Wait()
	b.Wait()
}
