package parallel

import (
	"sync"
	"testing"
)

func TestParallelizeCoversRangeOnce(t *testing.T) {
	const items = 10007 // prime, so chunks never divide evenly
	hits := make([]int, items)
	var mu sync.Mutex

	Parallelize(items, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			hits[i]++
		}
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want exactly once", i, h)
		}
	}
}

func TestParallelizeEmptyRange(t *testing.T) {
	Parallelize(0, func(start, end int) {
		t.Errorf("fn must not run for an empty range, got (%d, %d)", start, end)
	})
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls [][2]int
	ParallelizeWithThreshold(8, 1000, func(start, end int) {
		calls = append(calls, [2]int{start, end})
	})
	if len(calls) != 1 || calls[0] != [2]int{0, 8} {
		t.Errorf("small ranges should run inline in one call, got %v", calls)
	}

	const items = 4096
	hits := make([]int, items)
	var mu sync.Mutex
	ParallelizeWithThreshold(items, 1000, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			hits[i]++
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want exactly once", i, h)
		}
	}
}
