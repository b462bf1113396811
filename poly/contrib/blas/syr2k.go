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

// InitSyr2k fills C (m×m), A and B (m×n) and returns alpha and beta.
func InitSyr2k[T poly.Floats](c, a, b *poly.Pending2D[T]) (alpha, beta T) {
	da := a.Dims()
	m, n := da[0], da[1]
	a.Fill(func(i, j int) T { return T((i*j+1)%m) / T(m) })
	b.Fill(func(i, j int) T { return T((i*j+2)%n) / T(n) })
	c.Fill(func(i, j int) T { return T((i*j+3)%m) / T(n) })
	return 1.5, 1.2
}

// Syr2k computes the symmetric rank-2k update
// C = alpha·A·Bᵗ + alpha·B·Aᵗ + beta·C on the lower triangle of C.
func Syr2k[T poly.Floats](alpha, beta T, c, a, b *poly.Array2D[T]) {
	m, n := a.Rows(), a.Cols()
	ad, bd := a.Data(), b.Data()
	for i := range m {
		ci, ai, bi := c.Row(i), a.Row(i), b.Row(i)
		for j := 0; j <= i; j++ {
			ci[j] *= beta
		}
		for k := range n {
			for j := 0; j <= i; j++ {
				ci[j] += ad[j*n+k]*alpha*bi[k] + bd[j*n+k]*alpha*ai[k]
			}
		}
	}
}

// BenchSyr2k times Syr2k on m×n A and B.
func BenchSyr2k[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pc, pa, pb := poly.Uninit2D[T](m, m), poly.Uninit2D[T](m, n), poly.Uninit2D[T](m, n)
	alpha, beta := InitSyr2k(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()

	elapsed, err := h.Run(func() { Syr2k(alpha, beta, c, a, b) })
	poly.Consume(h, "C", c)
	return elapsed, err
}
