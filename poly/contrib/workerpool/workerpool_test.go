// Copyright 2026 The go-polybench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 101} {
		hits := make([]int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			require.Equal(t, int32(1), h, "n=%d index %d", n, i)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})
	for i := range n {
		assert.Equal(t, i*2, results[i])
	}
}

func TestZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(int, int) { called = true })
	pool.ParallelForAtomic(0, func(int) { called = true })
	assert.False(t, called)
}

func TestPanicIsRethrown(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var done atomic.Int32
	assert.PanicsWithValue(t, "boom", func() {
		pool.ParallelForAtomic(20, func(i int) {
			if i == 7 {
				panic("boom")
			}
			done.Add(1)
		})
	})
	assert.Equal(t, int32(19), done.Load(), "other jobs still run")

	// Workers survive the panic.
	var count atomic.Int32
	pool.ParallelFor(8, func(start, end int) { count.Add(int32(end - start)) })
	assert.Equal(t, int32(8), count.Load())
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	// Work after Close runs sequentially.
	var count int
	pool.ParallelForAtomic(10, func(int) { count++ })
	assert.Equal(t, 10, count)
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()
	data := make([]float64, 1<<12)
	for b.Loop() {
		pool.ParallelForAtomic(len(data), func(i int) {
			data[i] += float64(i)
		})
	}
}
