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

package linalg

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitBicg fills A (m×n), r (m) and p (n).
func InitBicg[T poly.Floats](a *poly.Pending2D[T], r, p *poly.Pending1D[T]) {
	da := a.Dims()
	m, n := da[0], da[1]
	p.Fill(func(i int) T { return T(i%n) / T(n) })
	r.Fill(func(i int) T { return T(i%m) / T(m) })
	a.Fill(func(i, j int) T { return T(i*(j+1)%m) / T(m) })
}

// Bicg computes the BiCGStab sub-kernel s = Aᵗ·r and q = A·p.
func Bicg[T poly.Floats](a *poly.Array2D[T], s, q, p, r *poly.Array1D[T]) {
	m, n := a.Rows(), a.Cols()
	sd, qd, pd, rd := s.Data(), q.Data(), p.Data(), r.Data()
	for j := range n {
		sd[j] = 0
	}
	for i := range m {
		ai := a.Row(i)
		qd[i] = 0
		for j := range n {
			sd[j] = sd[j] + rd[i]*ai[j]
			qd[i] = qd[i] + ai[j]*pd[j]
		}
	}
}

// BenchBicg times Bicg on an m×n A.
func BenchBicg[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pa, pr, pp := poly.Uninit2D[T](m, n), poly.Uninit1D[T](m), poly.Uninit1D[T](n)
	InitBicg(pa, pr, pp)
	a, r, p := pa.AssumeInit(), pr.AssumeInit(), pp.AssumeInit()
	s, q := poly.Scratch1D[T](n), poly.Scratch1D[T](m)

	elapsed, err := h.Run(func() { Bicg(a, s, q, p, r) })
	poly.Consume(h, "s", s)
	poly.Consume(h, "q", q)
	return elapsed, err
}
