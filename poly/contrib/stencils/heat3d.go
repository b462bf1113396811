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

// InitHeat3d fills the n×n×n grids A and B with the same values.
func InitHeat3d[T poly.Floats](a, b *poly.Pending3D[T]) {
	n := a.Dims()[0]
	gen := func(i, j, k int) T { return T(i+j+(n-k)) * 10 / T(n) }
	a.Fill(gen)
	b.Fill(gen)
}

func heatStep[T poly.Floats](dst, src []T, n int) {
	nn := n * n
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			base := i*nn + j*n
			for k := 1; k < n-1; k++ {
				c := base + k
				dst[c] = 0.125*(src[c+nn]-2*src[c]+src[c-nn]) +
					0.125*(src[c+n]-2*src[c]+src[c-n]) +
					0.125*(src[c+1]-2*src[c]+src[c-1]) +
					src[c]
			}
		}
	}
}

// Heat3d runs tsteps-1 iterations of the 3-D heat equation, each one
// stepping A into B and B back into A. tsteps <= 1 leaves both grids as is.
func Heat3d[T poly.Floats](tsteps int, a, b *poly.Array3D[T]) {
	n := a.Dims()[0]
	ad, bd := a.Data(), b.Data()
	for t := 1; t < tsteps; t++ {
		heatStep(bd, ad, n)
		heatStep(ad, bd, n)
	}
}

// BenchHeat3d times Heat3d on an n×n×n grid.
func BenchHeat3d[T poly.Floats](h *poly.Harness, tsteps, n int) (time.Duration, error) {
	pa, pb := poly.Uninit3D[T](n, n, n), poly.Uninit3D[T](n, n, n)
	InitHeat3d(pa, pb)
	a, b := pa.AssumeInit(), pb.AssumeInit()

	elapsed, err := h.Run(func() { Heat3d(tsteps, a, b) })
	poly.Consume(h, "A", a)
	return elapsed, err
}
