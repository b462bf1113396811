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

// InitCholesky fills the n×n input and returns it ready and positive
// semi-definite.
func InitCholesky[T poly.Floats](a *poly.Pending2D[T]) *poly.Array2D[T] {
	return fillFactorInput(a)
}

// Cholesky factorizes A = L·Lᵗ in place. L is written to the lower triangle
// including the diagonal; the strict upper triangle keeps its input values.
func Cholesky[T poly.Floats](a *poly.Array2D[T]) {
	n := a.Rows()
	for i := range n {
		ai := a.Row(i)
		for j := range i {
			aj := a.Row(j)
			for k := range j {
				ai[j] -= ai[k] * aj[k]
			}
			ai[j] /= aj[j]
		}
		for k := range i {
			ai[i] -= ai[k] * ai[k]
		}
		ai[i] = sqrt(ai[i])
	}
}

// BenchCholesky times Cholesky for size n.
func BenchCholesky[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	a := InitCholesky(poly.Uninit2D[T](n, n))
	elapsed, err := h.Run(func() { Cholesky(a) })
	poly.Consume(h, "A", a)
	return elapsed, err
}
