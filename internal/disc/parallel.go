package disc

import (
	"runtime"
	"sync"
)

// serialThreshold is the point count below which chunking across
// goroutines costs more than it saves.
const serialThreshold = 4096

// forEachPoint runs fn for every index in [0, n). Points are independent,
// so large grids are split into contiguous chunks processed concurrently;
// each chunk writes a disjoint index range, keeping results deterministic.
// The first error encountered wins.
func forEachPoint(n int, fn func(i int) error) error {
	workers := runtime.NumCPU()
	if n < serialThreshold || workers < 2 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
