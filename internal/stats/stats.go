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

// Package stats holds the global counter group spec.md §5/§9 describe:
// a node counter, a completed-task counter and a solving flag, reset
// once per input file and polled by a Monitor goroutine to drive
// internal/ui's progress display. Ported from analyzer_executor.h's
// global_nodes / completed_tasks / is_solving atomics.
package stats

import (
	"sync/atomic"
	"time"
)

// Counters is the atomic state one input file's run shares across
// every worker goroutine.
type Counters struct {
	Nodes     int64
	Completed int32
	Total     int32
	Solving   int32 // 0/1, read/written via atomic.LoadInt32/StoreInt32
}

// Reset zeroes every counter and sets Total, called once per input
// file per spec.md §9 ("Global counters... reset per input file").
func (c *Counters) Reset(total int) {
	atomic.StoreInt64(&c.Nodes, 0)
	atomic.StoreInt32(&c.Completed, 0)
	atomic.StoreInt32(&c.Total, int32(total))
	atomic.StoreInt32(&c.Solving, 1)
}

// AddNodes accumulates a worker's batch of visited-node counts;
// workers count locally and flush periodically rather than calling
// this once per node, matching COUNT_NODE's thread-local-batch shape.
func (c *Counters) AddNodes(n int64) {
	if n != 0 {
		atomic.AddInt64(&c.Nodes, n)
	}
}

// IncCompleted records one finished scramble's worth of work.
func (c *Counters) IncCompleted() {
	atomic.AddInt32(&c.Completed, 1)
}

// Stop marks the run as finished, signalling Monitor to exit.
func (c *Counters) Stop() {
	atomic.StoreInt32(&c.Solving, 0)
}

// Snapshot is a point-in-time read of the counters, handed to
// internal/ui for rendering.
type Snapshot struct {
	Nodes     int64
	Completed int32
	Total     int32
}

// Snapshot reads a point-in-time copy of the counters.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Nodes:     atomic.LoadInt64(&c.Nodes),
		Completed: atomic.LoadInt32(&c.Completed),
		Total:     atomic.LoadInt32(&c.Total),
	}
}

// Monitor polls Counters every 200ms (matching the original's
// sleep_for(200ms) progress loop) and invokes report with each
// snapshot until Stop is called. Callers run it in its own goroutine,
// started and stopped around each input file's run — never left
// running between files, per spec.md §5.
func Monitor(c *Counters, report func(Snapshot)) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for atomic.LoadInt32(&c.Solving) != 0 {
		<-ticker.C
		report(c.Snapshot())
	}
	report(c.Snapshot())
}
