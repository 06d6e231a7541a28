// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"sync/atomic"
	"testing"
)

func TestExecuteAllRunsEverythingOnce(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	const n = 1000
	counts := make([]int32, n)
	work := make([]func(), n)
	for i := 0; i < n; i++ {
		idx := i
		work[i] = func() {
			atomic.AddInt32(&counts[idx], 1)
		}
	}

	pool.ExecuteAll(work)

	for i, c := range counts {
		if c != 1 {
			t.Errorf("work item %d ran %d times, want 1", i, c)
		}
	}
}

func TestExecuteAllEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()
	pool.ExecuteAll(nil) // must not block or panic
}

func TestDefaultWorkerCount(t *testing.T) {
	pool := NewPool(0)
	defer pool.Close()
	if pool.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", pool.Workers())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	// Work after close is dropped, not executed and not deadlocked.
	var ran atomic.Bool
	pool.ExecuteAll([]func(){func() { ran.Store(true) }})
	if ran.Load() {
		t.Error("work executed after Close")
	}
}

func TestManySmallBatches(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	var total atomic.Int64
	for batch := 0; batch < 50; batch++ {
		work := make([]func(), 7)
		for i := range work {
			work[i] = func() { total.Add(1) }
		}
		pool.ExecuteAll(work)
	}
	if total.Load() != 50*7 {
		t.Errorf("total = %d, want %d", total.Load(), 50*7)
	}
}
