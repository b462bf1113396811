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

// Package solvers provides the PolyBench linear solvers and factorizations:
// cholesky, durbin, gramschmidt, lu, ludcmp and trisolv.
//
// None of the kernels pivot or guard against zero or negative pivots. The
// generators feed them well-conditioned inputs: cholesky, lu and ludcmp
// start from a matrix made positive semi-definite with
// poly.MakePositiveSemiDefinite.
package solvers

import (
	"math"

	"github.com/ajroetker/go-polybench/poly"
)

// fillFactorInput writes the lower-triangular seed shared by the
// factorization kernels and turns it into a positive semi-definite matrix.
func fillFactorInput[T poly.Floats](p *poly.Pending2D[T]) *poly.Array2D[T] {
	n := p.Dims()[0]
	fn := T(n)
	p.Fill(func(i, j int) T {
		switch {
		case j > i:
			return 0
		case j == i:
			return 1
		default:
			return T(-j%n)/fn + 1
		}
	})
	a := p.AssumeInit()
	poly.MakePositiveSemiDefinite(a)
	return a
}

func sqrt[T poly.Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}
