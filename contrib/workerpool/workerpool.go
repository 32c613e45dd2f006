// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for bulk evaluation of
// the elementary functions. A Pool is created once and shared by many slice
// transforms, so a call costs one barrier instead of a goroutine per chunk.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAligned(len(out), 8, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = math.Exp(in[i])
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line width of the running CPU in bytes, as
// padded by cpu.CacheLinePad.
var CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Pool runs parallel loops on a fixed set of goroutines spawned by New.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0 the pool
// uses GOMAXPROCS. The goroutines live until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued work drains. It is safe to call more
// than once; loops issued on a closed pool run on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// fanOut queues part(0) .. part(parts-1) and waits for all of them.
func (p *Pool) fanOut(parts int, part func(w int)) {
	var wg sync.WaitGroup
	wg.Add(parts)
	for w := range parts {
		p.workC <- task{run: func() { part(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) once per range. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.parallelChunks(n, 1, fn)
}

// ParallelForAligned is ParallelFor for loops that write a slice of
// elemSize-byte elements. Range boundaries fall on multiples of
// CacheLineSize/elemSize elements, so two workers never store into the same
// cache line of a slice that starts on a line boundary.
func (p *Pool) ParallelForAligned(n, elemSize int, fn func(start, end int)) {
	align := 1
	if elemSize > 0 && elemSize < CacheLineSize {
		align = CacheLineSize / elemSize
	}
	p.parallelChunks(n, align, fn)
}

func (p *Pool) parallelChunks(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers
	chunk = (chunk + align - 1) / align * align
	parts := (n + chunk - 1) / chunk
	if parts == 1 {
		fn(0, n)
		return
	}

	p.fanOut(parts, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), with workers claiming
// indices from a shared counter. Use it when the cost per index varies, as
// it does for series that converge at different speeds.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic with workers claiming
// batchSize indices at a time. fn receives the claimed [start, end).
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	batches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, batches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.fanOut(workers, func(int) {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
