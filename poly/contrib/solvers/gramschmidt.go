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

// InitGramschmidt fills A (m×n) and zeroes R (n×n) and Q (m×n).
func InitGramschmidt[T poly.Floats](a, r, q *poly.Pending2D[T]) {
	m := a.Dims()[0]
	a.Fill(func(i, j int) T { return (T(i*j%m)/T(m))*100 + 10 })
	r.Fill(func(int, int) T { return 0 })
	q.Fill(func(int, int) T { return 0 })
}

// Gramschmidt computes the QR decomposition A = Q·R with classical
// Gram-Schmidt. A is overwritten with the residual columns.
func Gramschmidt[T poly.Floats](a, r, q *poly.Array2D[T]) {
	m, n := a.Rows(), a.Cols()
	ad, qd := a.Data(), q.Data()
	for k := range n {
		var nrm T
		for i := range m {
			nrm += ad[i*n+k] * ad[i*n+k]
		}
		rk := r.Row(k)
		rk[k] = sqrt(nrm)
		for i := range m {
			qd[i*n+k] = ad[i*n+k] / rk[k]
		}
		for j := k + 1; j < n; j++ {
			rk[j] = 0
			for i := range m {
				rk[j] += qd[i*n+k] * ad[i*n+j]
			}
			for i := range m {
				ad[i*n+j] = ad[i*n+j] - qd[i*n+k]*rk[j]
			}
		}
	}
}

// BenchGramschmidt times Gramschmidt on an m×n A.
func BenchGramschmidt[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pa, pr, pq := poly.Uninit2D[T](m, n), poly.Uninit2D[T](n, n), poly.Uninit2D[T](m, n)
	InitGramschmidt(pa, pr, pq)
	a, r, q := pa.AssumeInit(), pr.AssumeInit(), pq.AssumeInit()

	elapsed, err := h.Run(func() { Gramschmidt(a, r, q) })
	poly.Consume(h, "A", a)
	poly.Consume(h, "R", r)
	poly.Consume(h, "Q", q)
	return elapsed, err
}
