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

// InitSymm fills C and B (m×n) and A (m×m) and returns alpha and beta. Only
// the lower triangle of A is meaningful; the strict upper triangle holds
// -999 so that a kernel reading it produces visibly wrong results.
func InitSymm[T poly.Floats](c, a, b *poly.Pending2D[T]) (alpha, beta T) {
	dc := c.Dims()
	m, n := dc[0], dc[1]
	fm := T(m)
	c.Fill(func(i, j int) T { return T((i+j)%100) / fm })
	b.Fill(func(i, j int) T { return T((n+i-j)%100) / fm })
	a.Fill(func(i, j int) T {
		if j > i {
			return -999
		}
		return T((i+j)%100) / fm
	})
	return 1.5, 1.2
}

// Symm computes C = alpha·A·B + beta·C where A is symmetric and stored in
// its lower triangle.
func Symm[T poly.Floats](alpha, beta T, c, a, b *poly.Array2D[T]) {
	m, n := c.Rows(), c.Cols()
	cd, bd := c.Data(), b.Data()
	for i := range m {
		ai, bi, ci := a.Row(i), b.Row(i), c.Row(i)
		for j := range n {
			var temp2 T
			for k := range i {
				cd[k*n+j] += alpha * bi[j] * ai[k]
				temp2 += bd[k*n+j] * ai[k]
			}
			ci[j] = beta*ci[j] + alpha*bi[j]*ai[i] + alpha*temp2
		}
	}
}

// BenchSymm times Symm on m×n inputs.
func BenchSymm[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pc, pa, pb := poly.Uninit2D[T](m, n), poly.Uninit2D[T](m, m), poly.Uninit2D[T](m, n)
	alpha, beta := InitSymm(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()

	elapsed, err := h.Run(func() { Symm(alpha, beta, c, a, b) })
	poly.Consume(h, "C", c)
	return elapsed, err
}
