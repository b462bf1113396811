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

// InitTrmm writes the unit lower-triangular A (m×m) into a zeroed matrix,
// fills B (m×n) and returns alpha. The strict upper triangle of A stays
// zero.
func InitTrmm[T poly.Floats](a *poly.Array2D[T], b *poly.Pending2D[T]) (alpha T) {
	db := b.Dims()
	m, n := db[0], db[1]
	for i := range m {
		ai := a.Row(i)
		for j := range i {
			ai[j] = T((i+j)%m) / T(m)
		}
		ai[i] = 1
	}
	b.Fill(func(i, j int) T { return T((n+i-j)%n) / T(n) })
	return 1.5
}

// Trmm computes B = alpha·Aᵗ·B where A is unit lower triangular. B is
// updated in place, row by row from the top, so every row only reads rows
// below it that are still unmodified.
func Trmm[T poly.Floats](alpha T, a, b *poly.Array2D[T]) {
	m, n := b.Rows(), b.Cols()
	ad, bd := a.Data(), b.Data()
	for i := range m {
		bi := b.Row(i)
		for j := range n {
			for k := i + 1; k < m; k++ {
				bi[j] += ad[k*m+i] * bd[k*n+j]
			}
			bi[j] = alpha * bi[j]
		}
	}
}

// BenchTrmm times Trmm on an m×m A and m×n B.
func BenchTrmm[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	a, pb := poly.Zeroed2D[T](m, m), poly.Uninit2D[T](m, n)
	alpha := InitTrmm(a, pb)
	b := pb.AssumeInit()

	elapsed, err := h.Run(func() { Trmm(alpha, a, b) })
	poly.Consume(h, "B", b)
	return elapsed, err
}
