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

// Package verify cross-checks the float64 kernels against independent
// reference computations built on gonum. Checks use small problem sizes and
// are never timed; RunAll spreads them over a worker pool.
package verify

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-polybench/poly"
	"github.com/ajroetker/go-polybench/poly/contrib/workerpool"
)

// Tol is the tolerance for elementwise comparisons: absolute for values
// below one, relative above.
const Tol = 1e-9

// solverTol is used where the reference pivots and the kernel does not.
const solverTol = 1e-6

// ErrMismatch is wrapped by every check failure caused by a wrong value.
var ErrMismatch = errors.New("verify: mismatch")

// Check verifies one kernel.
type Check struct {
	// Name is the catalog name of the kernel under test.
	Name string
	Run  func() error
}

// Outcome is the result of running one Check.
type Outcome struct {
	Name string
	Err  error
}

// Passed reports whether the check succeeded.
func (o Outcome) Passed() bool { return o.Err == nil }

// RunAll runs checks concurrently on pool and returns their outcomes in the
// order of checks. A check that panics fails with the panic value; it does
// not stop the others.
func RunAll(pool *workerpool.Pool, checks []Check) []Outcome {
	out := make([]Outcome, len(checks))
	pool.ParallelForAtomic(len(checks), func(i int) {
		out[i] = runOne(checks[i])
	})
	return out
}

func runOne(c Check) (o Outcome) {
	o.Name = c.Name
	defer func() {
		if r := recover(); r != nil {
			o.Err = fmt.Errorf("verify: %s panicked: %v", c.Name, r)
		}
	}()
	o.Err = c.Run()
	return o
}

// compare reports the first element of got that is not within tol of want.
func compare(what string, want, got []float64, tol float64) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrMismatch, what, len(got), len(want))
	}
	for i := range want {
		if !scalar.EqualWithinAbsOrRel(got[i], want[i], tol, tol) {
			return fmt.Errorf("%w: %s[%d] = %g, want %g", ErrMismatch, what, i, got[i], want[i])
		}
	}
	return nil
}

// compareMatrix compares cells (i, j) of got and want for which keep is
// true, or every cell when keep is nil.
func compareMatrix(what string, want mat.Matrix, got *poly.Array2D[float64], tol float64, keep func(i, j int) bool) error {
	r, c := want.Dims()
	if r != got.Rows() || c != got.Cols() {
		return fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrMismatch, what, got.Rows(), got.Cols(), r, c)
	}
	for i := range r {
		for j := range c {
			if keep != nil && !keep(i, j) {
				continue
			}
			w, g := want.At(i, j), got.At(i, j)
			if !scalar.EqualWithinAbsOrRel(g, w, tol, tol) {
				return fmt.Errorf("%w: %s(%d, %d) = %g, want %g", ErrMismatch, what, i, j, g, w)
			}
		}
	}
	return nil
}

func lower(i, j int) bool { return j <= i }

// dense copies a into a new gonum matrix.
func dense(a *poly.Array2D[float64]) *mat.Dense {
	return mat.NewDense(a.Rows(), a.Cols(), slices.Clone(a.Data()))
}

// vec copies a into a new gonum vector.
func vec(a *poly.Array1D[float64]) *mat.VecDense {
	return mat.NewVecDense(a.Len(), slices.Clone(a.Data()))
}

func vecData(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
