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

// InitLU fills the n×n input and returns it ready and positive
// semi-definite.
func InitLU[T poly.Floats](a *poly.Pending2D[T]) *poly.Array2D[T] {
	return fillFactorInput(a)
}

// LU factorizes A = L·U in place without pivoting. The strict lower
// triangle receives L (its unit diagonal is implicit) and the upper
// triangle including the diagonal receives U.
func LU[T poly.Floats](a *poly.Array2D[T]) {
	n := a.Rows()
	ad := a.Data()
	for i := range n {
		ai := a.Row(i)
		for j := range i {
			for k := range j {
				ai[j] -= ai[k] * ad[k*n+j]
			}
			ai[j] /= ad[j*n+j]
		}
		for j := i; j < n; j++ {
			for k := range i {
				ai[j] -= ai[k] * ad[k*n+j]
			}
		}
	}
}

// BenchLU times LU for size n.
func BenchLU[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	a := InitLU(poly.Uninit2D[T](n, n))
	elapsed, err := h.Run(func() { LU(a) })
	poly.Consume(h, "A", a)
	return elapsed, err
}
