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

package solvers

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitLudcmp fills b, x and y (n) and returns the ready, positive
// semi-definite A (n×n).
func InitLudcmp[T poly.Floats](a *poly.Pending2D[T], b, x, y *poly.Pending1D[T]) *poly.Array2D[T] {
	fn := T(b.Len())
	x.Fill(func(int) T { return 0 })
	y.Fill(func(int) T { return 0 })
	b.Fill(func(i int) T { return T(i+1)/fn/2 + 4 })
	return fillFactorInput(a)
}

// Ludcmp solves A·x = b by LU decomposition followed by forward (into y)
// and backward substitution. A is overwritten with its factors.
func Ludcmp[T poly.Floats](a *poly.Array2D[T], b, x, y *poly.Array1D[T]) {
	n := a.Rows()
	ad, bd, xd, yd := a.Data(), b.Data(), x.Data(), y.Data()
	for i := range n {
		ai := a.Row(i)
		for j := range i {
			w := ai[j]
			for k := range j {
				w -= ai[k] * ad[k*n+j]
			}
			ai[j] = w / ad[j*n+j]
		}
		for j := i; j < n; j++ {
			w := ai[j]
			for k := range i {
				w -= ai[k] * ad[k*n+j]
			}
			ai[j] = w
		}
	}
	for i := range n {
		ai := a.Row(i)
		w := bd[i]
		for j := range i {
			w -= ai[j] * yd[j]
		}
		yd[i] = w
	}
	for i := n - 1; i >= 0; i-- {
		ai := a.Row(i)
		w := yd[i]
		for j := i + 1; j < n; j++ {
			w -= ai[j] * xd[j]
		}
		xd[i] = w / ai[i]
	}
}

// BenchLudcmp times Ludcmp for size n.
func BenchLudcmp[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	pb, px, py := poly.Uninit1D[T](n), poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	a := InitLudcmp(poly.Uninit2D[T](n, n), pb, px, py)
	b, x, y := pb.AssumeInit(), px.AssumeInit(), py.AssumeInit()

	elapsed, err := h.Run(func() { Ludcmp(a, b, x, y) })
	poly.Consume(h, "x", x)
	return elapsed, err
}
