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

// InitMvt fills x1, x2, y1, y2 (n) and A (n×n).
func InitMvt[T poly.Floats](x1, x2, y1, y2 *poly.Pending1D[T], a *poly.Pending2D[T]) {
	n := x1.Len()
	fn := T(n)
	x1.Fill(func(i int) T { return T(i%n) / fn })
	x2.Fill(func(i int) T { return T((i+1)%n) / fn })
	y1.Fill(func(i int) T { return T((i+3)%n) / fn })
	y2.Fill(func(i int) T { return T((i+4)%n) / fn })
	a.Fill(func(i, j int) T { return T(i*j%n) / fn })
}

// Mvt computes x1 += A·y1 and x2 += Aᵗ·y2.
func Mvt[T poly.Floats](x1, x2, y1, y2 *poly.Array1D[T], a *poly.Array2D[T]) {
	n := a.Rows()
	x1d, x2d, y1d, y2d := x1.Data(), x2.Data(), y1.Data(), y2.Data()
	ad := a.Data()
	for i := range n {
		ai := a.Row(i)
		for j := range n {
			x1d[i] = x1d[i] + ai[j]*y1d[j]
		}
	}
	for i := range n {
		for j := range n {
			x2d[i] = x2d[i] + ad[j*n+i]*y2d[j]
		}
	}
}

// BenchMvt times Mvt for size n.
func BenchMvt[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	px1, px2 := poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	py1, py2 := poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	pa := poly.Uninit2D[T](n, n)
	InitMvt(px1, px2, py1, py2, pa)
	x1, x2, y1, y2, a := px1.AssumeInit(), px2.AssumeInit(), py1.AssumeInit(), py2.AssumeInit(), pa.AssumeInit()

	elapsed, err := h.Run(func() { Mvt(x1, x2, y1, y2, a) })
	poly.Consume(h, "x1", x1)
	poly.Consume(h, "x2", x2)
	return elapsed, err
}
