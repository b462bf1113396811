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

// InitDurbin fills the autocorrelation vector r.
func InitDurbin[T poly.Floats](r *poly.Pending1D[T]) {
	n := r.Len()
	r.Fill(func(i int) T { return T(n + 1 - i) })
}

// Durbin solves the Yule-Walker equations for r with the Levinson-Durbin
// recursion. y receives the solution; z is scratch of the same length.
func Durbin[T poly.Floats](r, y, z *poly.Array1D[T]) {
	n := r.Len()
	rd, yd, zd := r.Data(), y.Data(), z.Data()

	yd[0] = -rd[0]
	var beta T = 1
	alpha := -rd[0]
	for k := 1; k < n; k++ {
		beta = (1 - alpha*alpha) * beta
		var sum T
		for i := range k {
			sum += rd[k-i-1] * yd[i]
		}
		alpha = -(rd[k] + sum) / beta
		for i := range k {
			zd[i] = yd[i] + alpha*yd[k-i-1]
		}
		copy(yd[:k], zd[:k])
		yd[k] = alpha
	}
}

// BenchDurbin times Durbin for size n.
func BenchDurbin[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	pr := poly.Uninit1D[T](n)
	InitDurbin(pr)
	r := pr.AssumeInit()
	y, z := poly.Scratch1D[T](n), poly.Scratch1D[T](n)

	elapsed, err := h.Run(func() { Durbin(r, y, z) })
	poly.Consume(h, "y", y)
	return elapsed, err
}
