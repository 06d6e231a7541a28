// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel provides the goroutine pool that fans fill-test
// invocations out across CPU cores.
//
// Fragment shading is embarrassingly parallel: every invocation is a pure
// function of read-only tables, so work items never synchronize with each
// other. The pool only has to spread them evenly. Each worker owns a queue
// and steals from its siblings when idle, which balances load when some
// spans of fragments are much more expensive than others (many band
// segments vs. early rejection).
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a work-stealing goroutine pool.
//
// Thread safety: Pool is safe for concurrent use after creation.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers <= 0, GOMAXPROCS is used. Workers start immediately.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// ExecuteAll distributes work items across workers and blocks until every
// item has run. If the pool is closed, it is a no-op.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(work))

	for i, fn := range work {
		item := fn
		wrapped := func() {
			defer pending.Done()
			item()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			pending.Done()
		}
	}

	pending.Wait()
}

// Close stops accepting work, drains the queues, and waits for all
// workers to exit. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	mine := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(mine)
			return
		case work := <-mine:
			if work != nil {
				work()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(mine)
				return
			case work := <-mine:
				if work != nil {
					work()
				}
			}
		}
	}
}

// steal takes one work item from another worker's queue, or returns nil.
func (p *Pool) steal(myID int) func() {
	for i := range p.queues {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}
