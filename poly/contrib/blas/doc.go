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

// Package blas provides the PolyBench BLAS-like kernels: gemm, gemver,
// gesummv, symm, syr2k, syrk and trmm.
//
// Each kernel comes as three functions over T poly.Floats:
//
//   - InitX writes the deterministic inputs into pending arrays and returns
//     the scalars (alpha, beta) the kernel uses.
//   - X runs the computation in place. It never allocates.
//   - BenchX allocates, initializes and times X with a poly.Harness, then
//     consumes the outputs.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-polybench/poly/contrib/blas"
//
//	h := &poly.Harness{}
//	elapsed, err := blas.BenchGemm[float64](h, 200, 220, 240)
//
// The loop nests follow the reference PolyBench/C 4.2 kernels exactly,
// including the order of floating-point accumulation. syrk and syr2k only
// update the lower triangle of C.
package blas
