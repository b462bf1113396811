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

package poly

import "fmt"

// MakePositiveSemiDefinite replaces the square matrix a with a·aᵗ:
//
//	B[r][s] = Σ_t a[r][t]·a[s][t]
//
// accumulated into a zeroed scratch matrix with t outermost and copied back
// into a. The result is exactly symmetric, since B[r][s] and B[s][r] sum the
// same products in the same order, and positive semi-definite. The
// factorization kernels (cholesky, lu, ludcmp) call it from their
// generators, outside the timed region. Cost is O(n³).
func MakePositiveSemiDefinite[T Numbers](a *Array2D[T]) {
	if a.m != a.n {
		panic(fmt.Sprintf("poly: MakePositiveSemiDefinite needs a square matrix, got %dx%d", a.m, a.n))
	}
	n := a.n
	b := Zeroed2D[T](n, n)
	for t := range n {
		for r := range n {
			art := a.data[r*n+t]
			brow := b.Row(r)
			for s := range n {
				brow[s] += art * a.data[s*n+t]
			}
		}
	}
	a.CopyFrom(b)
}
