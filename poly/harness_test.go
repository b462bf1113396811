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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns the given samples in order.
func fakeClock(samples ...uint64) TimeSource {
	i := 0
	return func() uint64 {
		v := samples[i]
		i++
		return v
	}
}

func TestHarnessElapsed(t *testing.T) {
	ran := false
	h := &Harness{Now: fakeClock(100, 350), FlushBytes: -1}
	elapsed, err := h.Run(func() { ran = true })
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 250*time.Nanosecond, elapsed)
}

func TestHarnessUnit(t *testing.T) {
	h := &Harness{Now: fakeClock(7, 10), Unit: time.Microsecond, FlushBytes: -1}
	elapsed, err := h.Run(func() {})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Microsecond, elapsed)
}

func TestHarnessNonMonotonic(t *testing.T) {
	h := &Harness{Now: fakeClock(500, 499), FlushBytes: -1}
	_, err := h.Run(func() {})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonMonotonic))
	assert.Contains(t, err.Error(), "begin=500 end=499")
}

func TestHarnessEqualSamples(t *testing.T) {
	elapsed, err := Run(func() {}, fakeClock(42, 42))
	require.NoError(t, err)
	assert.Zero(t, elapsed)
}

func TestHarnessFlushBeforeBegin(t *testing.T) {
	// The flush must happen before the first sample, so the clock is read
	// exactly twice regardless of the flush size.
	calls := 0
	now := func() uint64 { calls++; return uint64(calls) }
	h := &Harness{Now: now, FlushBytes: 4096}
	_, err := h.Run(func() {})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestHarnessRealClock(t *testing.T) {
	h := &Harness{FlushBytes: 1 << 16}
	elapsed, err := h.Run(func() { time.Sleep(time.Millisecond) })
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, time.Millisecond)
}

func TestHarnessLogs(t *testing.T) {
	var buf bytes.Buffer
	h := &Harness{
		Now:        fakeClock(1, 2),
		FlushBytes: -1,
		Logger:     slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	_, err := h.Run(func() {})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "timed region")
	assert.Contains(t, buf.String(), "elapsed=1ns")
}

func TestFlushCache(t *testing.T) {
	FlushCache(1 << 10)
	sinkMu.Lock()
	got := sink
	sinkMu.Unlock()
	// 128 words holding 0..127.
	assert.Equal(t, uint64(127*128/2), got)
}

func TestHarnessOverflow(t *testing.T) {
	for name, h := range map[string]*Harness{
		"ticks beyond MaxInt64": {Now: fakeClock(0, math.MaxInt64+1), FlushBytes: -1},
		"unit product":          {Now: fakeClock(0, math.MaxInt64/1000+1), Unit: time.Microsecond, FlushBytes: -1},
		"negative unit":         {Now: fakeClock(0, 1), Unit: -time.Second, FlushBytes: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := h.Run(func() {})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOverflow))
		})
	}

	// The largest representable product is still accepted.
	h := &Harness{Now: fakeClock(0, math.MaxInt64/1000), Unit: time.Microsecond, FlushBytes: -1}
	elapsed, err := h.Run(func() {})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.MaxInt64/1000)*time.Microsecond, elapsed)
}

func TestHarnessNil(t *testing.T) {
	var h *Harness
	ran := false
	elapsed, err := h.Run(func() { ran = true })
	require.NoError(t, err)
	assert.True(t, ran)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Equal(t, 3, Consume(h, "x", 3))
}

func TestFlushCacheReusesBuffer(t *testing.T) {
	FlushCache(1 << 12)
	flushMu.Lock()
	first := &flushBuf[0]
	flushMu.Unlock()

	// Equal and smaller flushes reuse the same backing array.
	FlushCache(1 << 12)
	FlushCache(1 << 8)
	flushMu.Lock()
	assert.Same(t, first, &flushBuf[0])
	flushMu.Unlock()

	sinkMu.Lock()
	got := sink
	sinkMu.Unlock()
	// 32 words holding 0..31.
	assert.Equal(t, uint64(31*32/2), got)
}
