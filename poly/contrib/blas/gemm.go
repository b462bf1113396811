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

// InitGemm fills C (ni×nj), A (ni×nk) and B (nk×nj) and returns alpha and
// beta.
func InitGemm[T poly.Floats](c, a, b *poly.Pending2D[T]) (alpha, beta T) {
	dc, da := c.Dims(), a.Dims()
	ni, nj, nk := dc[0], dc[1], da[1]
	c.Fill(func(i, j int) T { return T((i*j+1)%ni) / T(ni) })
	a.Fill(func(i, j int) T { return T(i*(j+1)%nk) / T(nk) })
	b.Fill(func(i, j int) T { return T(i*(j+2)%nj) / T(nj) })
	return 1.5, 1.2
}

// Gemm computes C = alpha·A·B + beta·C.
func Gemm[T poly.Floats](alpha, beta T, c, a, b *poly.Array2D[T]) {
	ni, nj, nk := c.Rows(), c.Cols(), a.Cols()
	bd := b.Data()
	for i := range ni {
		ci, ai := c.Row(i), a.Row(i)
		for j := range nj {
			ci[j] *= beta
			for k := range nk {
				ci[j] += alpha * ai[k] * bd[k*nj+j]
			}
		}
	}
}

// BenchGemm times Gemm on ni×nj×nk inputs.
func BenchGemm[T poly.Floats](h *poly.Harness, ni, nj, nk int) (time.Duration, error) {
	pc, pa, pb := poly.Uninit2D[T](ni, nj), poly.Uninit2D[T](ni, nk), poly.Uninit2D[T](nk, nj)
	alpha, beta := InitGemm(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()

	elapsed, err := h.Run(func() { Gemm(alpha, beta, c, a, b) })
	poly.Consume(h, "C", c)
	return elapsed, err
}
