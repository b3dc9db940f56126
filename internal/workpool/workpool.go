// Package workpool runs independent indexed jobs on a bounded set of goroutines.
package workpool

import (
	"runtime"
	"sync"
)

// Workers resolves a requested worker count. Values <= 0 select GOMAXPROCS.
// The result never exceeds jobs and is at least 1.
func Workers(requested, jobs int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	if n > jobs {
		n = jobs
	}

	if n < 1 {
		n = 1
	}

	return n
}

// Run calls fn(i) for every i in [0, jobs) using up to workers goroutines and
// returns when all calls have finished. Jobs must not share mutable state.
func Run(jobs, workers int, fn func(i int)) {
	if jobs <= 0 {
		return
	}

	workers = Workers(workers, jobs)
	if workers == 1 {
		for i := range jobs {
			fn(i)
		}

		return
	}

	next := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			for i := range next {
				fn(i)
			}
		}()
	}

	for i := range jobs {
		next <- i
	}

	close(next)
	wg.Wait()
}
