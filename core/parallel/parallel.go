// Package parallel provides chunked row-parallel helpers for matrix assembly.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, items) into contiguous chunks, one per available
// core, and runs fn on each (start, end) range concurrently. It returns once
// every chunk is done.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	// Ceiling division so the trailing chunk absorbs the remainder.
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn inline over the whole range when items
// does not exceed threshold, and hands off to Parallelize otherwise. Small
// copies are cheaper done inline than fanned out to goroutines.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items > threshold {
		Parallelize(items, fn)
		return
	}
	if items > 0 {
		fn(0, items)
	}
}
