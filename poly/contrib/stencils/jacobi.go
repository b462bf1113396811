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

// InitJacobi1d fills the length-n vectors A and B.
func InitJacobi1d[T poly.Floats](a, b *poly.Pending1D[T]) {
	fn := T(a.Len())
	a.Fill(func(i int) T { return T(i+2) / fn })
	b.Fill(func(i int) T { return T(i+3) / fn })
}

// Jacobi1d runs tsteps iterations of the 3-point Jacobi stencil, ping-ponging
// between A and B.
func Jacobi1d[T poly.Floats](tsteps int, a, b *poly.Array1D[T]) {
	n := a.Len()
	ad, bd := a.Data(), b.Data()
	for range tsteps {
		for i := 1; i < n-1; i++ {
			bd[i] = 0.33333 * (ad[i-1] + ad[i] + ad[i+1])
		}
		for i := 1; i < n-1; i++ {
			ad[i] = 0.33333 * (bd[i-1] + bd[i] + bd[i+1])
		}
	}
}

// BenchJacobi1d times Jacobi1d on length-n vectors.
func BenchJacobi1d[T poly.Floats](h *poly.Harness, tsteps, n int) (time.Duration, error) {
	pa, pb := poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	InitJacobi1d(pa, pb)
	a, b := pa.AssumeInit(), pb.AssumeInit()

	elapsed, err := h.Run(func() { Jacobi1d(tsteps, a, b) })
	poly.Consume(h, "A", a)
	return elapsed, err
}

// InitJacobi2d fills the n×n grids A and B.
func InitJacobi2d[T poly.Floats](a, b *poly.Pending2D[T]) {
	fn := T(a.Dims()[0])
	a.Fill(func(i, j int) T { return T(i*(j+2)+2) / fn })
	b.Fill(func(i, j int) T { return T(i*(j+3)+3) / fn })
}

func jacobi2dStep[T poly.Floats](dst, src *poly.Array2D[T]) {
	n := src.Rows()
	for i := 1; i < n-1; i++ {
		d, up, mid, down := dst.Row(i), src.Row(i-1), src.Row(i), src.Row(i+1)
		for j := 1; j < n-1; j++ {
			d[j] = 0.2 * (mid[j] + mid[j-1] + mid[1+j] + down[j] + up[j])
		}
	}
}

// Jacobi2d runs tsteps iterations of the 5-point Jacobi stencil,
// ping-ponging between A and B.
func Jacobi2d[T poly.Floats](tsteps int, a, b *poly.Array2D[T]) {
	for range tsteps {
		jacobi2dStep(b, a)
		jacobi2dStep(a, b)
	}
}

// BenchJacobi2d times Jacobi2d on an n×n grid.
func BenchJacobi2d[T poly.Floats](h *poly.Harness, tsteps, n int) (time.Duration, error) {
	pa, pb := poly.Uninit2D[T](n, n), poly.Uninit2D[T](n, n)
	InitJacobi2d(pa, pb)
	a, b := pa.AssumeInit(), pb.AssumeInit()

	elapsed, err := h.Run(func() { Jacobi2d(tsteps, a, b) })
	poly.Consume(h, "A", a)
	return elapsed, err
}
