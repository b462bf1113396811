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

// Package poly provides the core of the polybench harness: fixed-shape
// aligned arrays with an explicit uninitialized-to-initialized lifecycle,
// and the benchmarking protocol that wraps every kernel identically
// (cache flush, timed region, anti-elimination sink).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-polybench/poly"
//
//	pa := poly.Uninit2D[float64](n, n)
//	pa.Fill(func(i, j int) float64 { return float64(i*j%n) / float64(n) })
//	a := pa.AssumeInit()
//
//	h := &poly.Harness{Now: poly.MonotonicClock()}
//	elapsed, err := h.Run(func() { kernel(a) })
//	poly.Consume(h, "A", a)
package poly

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numbers is a constraint for every element type an array can hold.
// Every kernel computes over Floats; Nussinov's sequence is stored as int8.
type Numbers interface {
	Floats | Integers
}
