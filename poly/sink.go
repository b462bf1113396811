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
	"runtime"
	"sync"
)

// sink is the package-level destination of BlackBox. Publishing a value to
// it keeps the value, and every store that produced it, observable.
var (
	sinkMu sync.Mutex
	sink   any
)

// BlackBox returns v unchanged. The compiler cannot see through it: it is
// never inlined and it publishes v to a package-level variable, so the
// computation that produced v cannot be proven dead.
//
//go:noinline
func BlackBox[T any](v T) T {
	sinkMu.Lock()
	sink = v
	sinkMu.Unlock()
	runtime.KeepAlive(v)
	return v
}

// Consume routes a kernel result through BlackBox after the timed region
// and hands it to h.Observe when set. It returns v so ownership can continue
// downstream; benchmarks discard the result.
func Consume[T any](h *Harness, name string, v T) T {
	v = BlackBox(v)
	if h != nil && h.Observe != nil {
		h.Observe(name, v)
	}
	return v
}
