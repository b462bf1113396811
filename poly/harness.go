// Copyright 2026 go-polybench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package poly

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"runtime"
	"sync"
	"time"
)

// TimeSource returns a monotonically non-decreasing counter. The harness
// never reads a clock itself; the unit of the counter is declared by
// Harness.Unit.
type TimeSource func() uint64

// MonotonicClock returns a TimeSource counting nanoseconds since the call,
// backed by Go's monotonic clock reading.
func MonotonicClock() TimeSource {
	start := time.Now()
	return func() uint64 {
		return uint64(time.Since(start))
	}
}

// Harness runs kernel closures with the benchmarking protocol: cache
// eviction, a timed region bracketed by two TimeSource samples, and the
// result sink.
//
// The zero value is usable: it flushes LLCFlushBytes() bytes, times with
// MonotonicClock and counts in nanoseconds.
type Harness struct {
	// Now is the injected counter. Nil selects MonotonicClock().
	Now TimeSource

	// Unit is the duration of one counter tick. Zero means time.Nanosecond.
	Unit time.Duration

	// FlushBytes is the size of the cache-eviction buffer. Zero selects
	// LLCFlushBytes(); a negative value disables the flush.
	FlushBytes int

	// Observe, if set, receives every value passed to Consume.
	Observe func(name string, v any)

	// Logger, if set, receives debug records for each run.
	Logger *slog.Logger
}

// Run executes kernel once between two samples of the time source and
// returns the elapsed duration. When flushing, a garbage collection runs
// first, and both complete before the first sample. A time source that goes backwards
// yields ErrNonMonotonic; a tick count that does not fit a time.Duration
// yields ErrOverflow. A nil h behaves like the zero Harness.
func (h *Harness) Run(kernel func()) (time.Duration, error) {
	if h == nil {
		h = &Harness{}
	}
	now := h.Now
	if now == nil {
		now = MonotonicClock()
	}
	unit := h.Unit
	if unit == 0 {
		unit = time.Nanosecond
	}

	flushBytes := h.FlushBytes
	if flushBytes == 0 {
		flushBytes = LLCFlushBytes()
	}
	if flushBytes > 0 {
		// Collect first so that no mark phase overlaps the timed region and
		// the collector's own memory traffic precedes the eviction.
		runtime.GC()
		FlushCache(flushBytes)
	}

	begin := now()
	kernel()
	end := now()

	if end < begin {
		return 0, fmt.Errorf("%w: begin=%d end=%d", ErrNonMonotonic, begin, end)
	}
	elapsed, err := ticksToDuration(end-begin, unit)
	if err != nil {
		return 0, err
	}
	if h.Logger != nil {
		h.Logger.LogAttrs(context.Background(), slog.LevelDebug, "timed region",
			slog.Uint64("begin", begin), slog.Uint64("end", end),
			slog.Int("flush_bytes", max(flushBytes, 0)), slog.Duration("elapsed", elapsed))
	}
	return elapsed, nil
}

// ticksToDuration multiplies a tick count by the tick unit, refusing any
// product that does not fit a non-negative time.Duration.
func ticksToDuration(ticks uint64, unit time.Duration) (time.Duration, error) {
	if unit < 0 {
		return 0, fmt.Errorf("%w: negative unit %v", ErrOverflow, unit)
	}
	hi, lo := bits.Mul64(ticks, uint64(unit))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d ticks of %v", ErrOverflow, ticks, unit)
	}
	return time.Duration(lo), nil
}

// Run is a shorthand for (&Harness{Now: now}).Run(kernel).
func Run(kernel func(), now TimeSource) (time.Duration, error) {
	h := &Harness{Now: now}
	return h.Run(kernel)
}

// flushBuf is reused across FlushCache calls so that a flush does not
// allocate once it has reached its largest size.
var (
	flushMu  sync.Mutex
	flushBuf []uint64
)

// FlushCache evicts previously touched data from the cache hierarchy by
// writing and then summing a buffer of at least bytes bytes. The sum goes
// through BlackBox so neither pass can be elided.
func FlushCache(bytes int) {
	n := (bytes + 7) / 8
	flushMu.Lock()
	defer flushMu.Unlock()
	if len(flushBuf) < n {
		flushBuf = make([]uint64, n)
	}
	buf := flushBuf[:n]
	// Freshly mapped pages may all alias the OS zero page, so write first.
	for i := range buf {
		buf[i] = uint64(i)
	}
	var sum uint64
	for _, v := range buf {
		sum += v
	}
	BlackBox(sum)
}
