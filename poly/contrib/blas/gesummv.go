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

package blas

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitGesummv fills A and B (n×n) and x (n) and returns alpha and beta.
func InitGesummv[T poly.Floats](a, b *poly.Pending2D[T], x *poly.Pending1D[T]) (alpha, beta T) {
	n := x.Len()
	fn := T(n)
	x.Fill(func(i int) T { return T(i%n) / fn })
	a.Fill(func(i, j int) T { return T((i*j+1)%n) / fn })
	b.Fill(func(i, j int) T { return T((i*j+2)%n) / fn })
	return 1.5, 1.2
}

// Gesummv computes y = alpha·A·x + beta·B·x. tmp is scratch of length n.
func Gesummv[T poly.Floats](alpha, beta T, a, b *poly.Array2D[T], tmp, x, y *poly.Array1D[T]) {
	n := a.Rows()
	td, xd, yd := tmp.Data(), x.Data(), y.Data()
	for i := range n {
		ai, bi := a.Row(i), b.Row(i)
		td[i] = 0
		yd[i] = 0
		for j := range n {
			td[i] = ai[j]*xd[j] + td[i]
			yd[i] = bi[j]*xd[j] + yd[i]
		}
		yd[i] = alpha*td[i] + beta*yd[i]
	}
}

// BenchGesummv times Gesummv for size n.
func BenchGesummv[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	pa, pb, px := poly.Uninit2D[T](n, n), poly.Uninit2D[T](n, n), poly.Uninit1D[T](n)
	alpha, beta := InitGesummv(pa, pb, px)
	a, b, x := pa.AssumeInit(), pb.AssumeInit(), px.AssumeInit()
	tmp, y := poly.Scratch1D[T](n), poly.Scratch1D[T](n)

	elapsed, err := h.Run(func() { Gesummv(alpha, beta, a, b, tmp, x, y) })
	poly.Consume(h, "y", y)
	return elapsed, err
}
