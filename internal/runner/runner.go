// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package runner implements the parallel task scheduler of spec.md
// §4.J: a dynamic work queue across a worker pool, draining results
// back to the caller in original task order. Ported from
// analyzer_executor.h's run_analyzer_app, whose OpenMP
// "schedule(dynamic,1)" loop plus a resultReady[]/nextWriteIdx
// critical section this mirrors with channels and a dedicated drain
// goroutine instead of a mutex-guarded array.
package runner

import "sync"

// Run applies solve to every index 0..n-1 using workers goroutines,
// calling emit with each result in input order (index 0, then 1, ...)
// as soon as it becomes available. A result that finishes before every
// lower index has been emitted is held in a map until its turn; the
// number of held results has no limit.
func Run(n int, workers int, solve func(i int) any, emit func(i int, result any)) {
	if workers < 1 {
		workers = 1
	}

	type outcome struct {
		idx int
		val any
	}

	work := make(chan int, n)
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)

	results := make(chan outcome, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				results <- outcome{idx: i, val: solve(i)}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	pending := make(map[int]any, workers)
	next := 0
	for r := range results {
		pending[r.idx] = r.val
		for {
			v, ok := pending[next]
			if !ok {
				break
			}
			emit(next, v)
			delete(pending, next)
			next++
		}
	}
}
