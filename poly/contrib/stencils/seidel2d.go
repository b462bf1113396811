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

package stencils

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitSeidel2d fills the n×n grid A.
func InitSeidel2d[T poly.Floats](a *poly.Pending2D[T]) {
	fn := T(a.Dims()[0])
	a.Fill(func(i, j int) T { return T(i*(j+2)+2) / fn })
}

// Seidel2d runs tsteps in-place Gauss-Seidel sweeps of the 9-point stencil.
// Updated cells are read immediately by their successors.
func Seidel2d[T poly.Floats](tsteps int, a *poly.Array2D[T]) {
	n := a.Rows()
	for range tsteps {
		for i := 1; i < n-1; i++ {
			up, mid, down := a.Row(i-1), a.Row(i), a.Row(i+1)
			for j := 1; j < n-1; j++ {
				mid[j] = (up[j-1] + up[j] + up[j+1] +
					mid[j-1] + mid[j] + mid[j+1] +
					down[j-1] + down[j] + down[j+1]) / 9
			}
		}
	}
}

// BenchSeidel2d times Seidel2d on an n×n grid.
func BenchSeidel2d[T poly.Floats](h *poly.Harness, tsteps, n int) (time.Duration, error) {
	pa := poly.Uninit2D[T](n, n)
	InitSeidel2d(pa)
	a := pa.AssumeInit()

	elapsed, err := h.Run(func() { Seidel2d(tsteps, a) })
	poly.Consume(h, "A", a)
	return elapsed, err
}
