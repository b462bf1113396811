// Copyright 2026 The go-polybench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for running
// independent jobs, such as kernel verification checks, concurrently.
// Benchmarks never use it: timed kernels run single-threaded on the calling
// goroutine.
//
// A panic inside a job does not kill its worker. The first panic of a
// ParallelFor or ParallelForAtomic call is captured and re-raised on the
// calling goroutine once every job of that call has finished, so callers
// can recover it the same way they would recover a sequential loop.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(checks), func(i int) {
//	    results[i] = checks[i].Run()
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every call until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one unit handed to a worker.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
	failure *panicSlot
}

// panicSlot keeps the first panic value raised by the items of one call.
type panicSlot struct {
	once  sync.Once
	value any
	set   bool
}

func (s *panicSlot) store(v any) {
	s.once.Do(func() {
		s.value, s.set = v, true
	})
}

// rethrow re-raises the captured panic, if any, on the calling goroutine.
func (s *panicSlot) rethrow() {
	if s.set {
		panic(s.value)
	}
}

// New creates a pool with numWorkers workers. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		run(item)
	}
}

func run(item workItem) {
	defer item.barrier.Done()
	defer func() {
		if r := recover(); r != nil {
			item.failure.store(r)
		}
	}()
	item.fn()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. It is safe to call
// Close more than once; calls made after Close run sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each range. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	var failure panicSlot
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
			failure: &failure,
		}
	}
	wg.Wait()
	failure.rethrow()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so that jobs of very different cost balance across workers.
// It blocks until every index is done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	var failure panicSlot
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
			failure: &failure,
		}
	}
	wg.Wait()
	failure.rethrow()
}
