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

// InitSyrk fills C (m×m) and A (m×n) and returns alpha and beta.
func InitSyrk[T poly.Floats](c, a *poly.Pending2D[T]) (alpha, beta T) {
	da := a.Dims()
	m, n := da[0], da[1]
	a.Fill(func(i, j int) T { return T((i*j+1)%m) / T(m) })
	c.Fill(func(i, j int) T { return T((i*j+2)%n) / T(n) })
	return 1.5, 1.2
}

// Syrk computes the symmetric rank-k update C = alpha·A·Aᵗ + beta·C on the
// lower triangle of C. The strict upper triangle is left untouched.
func Syrk[T poly.Floats](alpha, beta T, c, a *poly.Array2D[T]) {
	m, n := a.Rows(), a.Cols()
	ad := a.Data()
	for i := range m {
		ci, ai := c.Row(i), a.Row(i)
		for j := 0; j <= i; j++ {
			ci[j] *= beta
		}
		for k := range n {
			for j := 0; j <= i; j++ {
				ci[j] += alpha * ai[k] * ad[j*n+k]
			}
		}
	}
}

// BenchSyrk times Syrk on an m×n A.
func BenchSyrk[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pc, pa := poly.Uninit2D[T](m, m), poly.Uninit2D[T](m, n)
	alpha, beta := InitSyrk(pc, pa)
	c, a := pc.AssumeInit(), pa.AssumeInit()

	elapsed, err := h.Run(func() { Syrk(alpha, beta, c, a) })
	poly.Consume(h, "C", c)
	return elapsed, err
}
