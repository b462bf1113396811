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

package linalg

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitAtax fills A (m×n) and x (n).
func InitAtax[T poly.Floats](a *poly.Pending2D[T], x *poly.Pending1D[T]) {
	da := a.Dims()
	m, n := da[0], da[1]
	fn := T(n)
	x.Fill(func(i int) T { return 1 + T(i)/fn })
	a.Fill(func(i, j int) T { return T((i+j)%n) / T(5*m) })
}

// Atax computes y[j] = Σ_i (A[i][j] + tmp[i]) with tmp = A·x, the additive
// form of the PolyBench reference corpus rather than y = Aᵗ·(A·x). tmp is
// scratch of length m.
func Atax[T poly.Floats](a *poly.Array2D[T], x, y, tmp *poly.Array1D[T]) {
	m, n := a.Rows(), a.Cols()
	xd, yd, td := x.Data(), y.Data(), tmp.Data()
	for j := range n {
		yd[j] = 0
	}
	for i := range m {
		ai := a.Row(i)
		td[i] = 0
		for j := range n {
			td[i] = td[i] + ai[j]*xd[j]
		}
		for j := range n {
			yd[j] = yd[j] + ai[j] + td[i]
		}
	}
}

// BenchAtax times Atax on an m×n A.
func BenchAtax[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pa, px := poly.Uninit2D[T](m, n), poly.Uninit1D[T](n)
	InitAtax(pa, px)
	a, x := pa.AssumeInit(), px.AssumeInit()
	y, tmp := poly.Scratch1D[T](n), poly.Scratch1D[T](m)

	elapsed, err := h.Run(func() { Atax(a, x, y, tmp) })
	poly.Consume(h, "y", y)
	return elapsed, err
}
