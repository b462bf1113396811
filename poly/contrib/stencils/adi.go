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

package stencils

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitAdi fills the n×n grid u.
func InitAdi[T poly.Floats](u *poly.Pending2D[T]) {
	n := u.Dims()[0]
	u.Fill(func(i, j int) T { return T(i+n-j) / T(n) })
}

// Adi runs tsteps-1 iterations of the alternating-direction implicit solver
// on u, matching the reference corpus loop bounds. Each iteration does a column sweep into v followed by a row sweep
// back into u, solving the tridiagonal systems with the Thomas algorithm.
// v, p and q are n×n scratch.
func Adi[T poly.Floats](tsteps int, u, v, p, q *poly.Array2D[T]) {
	n := u.Rows()
	ud, vd := u.Data(), v.Data()

	dx := 1 / T(n)
	dy := 1 / T(n)
	dt := 1 / T(tsteps)
	var b1, b2 T = 2, 1
	mul1 := b1 * dt / (dx * dx)
	mul2 := b2 * dt / (dy * dy)

	a := -mul1 / 2
	b := 1 + mul1
	c := a
	d := -mul2 / 2
	e := 1 + mul2
	f := d

	for t := 1; t < tsteps; t++ {
		// Column sweep.
		for i := 1; i < n-1; i++ {
			pi, qi := p.Row(i), q.Row(i)
			vd[i] = 1
			pi[0] = 0
			qi[0] = vd[i]
			for j := 1; j < n-1; j++ {
				pi[j] = -c / (a*pi[j-1] + b)
				qi[j] = (-d*ud[j*n+i-1] + (1+2*d)*ud[j*n+i] - f*ud[j*n+i+1] - a*qi[j-1]) /
					(a*pi[j-1] + b)
			}
			vd[(n-1)*n+i] = 1
			for j := n - 2; j >= 1; j-- {
				vd[j*n+i] = pi[j]*vd[(j+1)*n+i] + qi[j]
			}
		}
		// Row sweep.
		for i := 1; i < n-1; i++ {
			ui, pi, qi := u.Row(i), p.Row(i), q.Row(i)
			vm, vi, vp := v.Row(i-1), v.Row(i), v.Row(i+1)
			ui[0] = 1
			pi[0] = 0
			qi[0] = ui[0]
			for j := 1; j < n-1; j++ {
				pi[j] = -f / (d*pi[j-1] + e)
				qi[j] = (-a*vm[j] + (1+2*a)*vi[j] - c*vp[j] - d*qi[j-1]) /
					(d*pi[j-1] + e)
			}
			ui[n-1] = 1
			for j := n - 2; j >= 1; j-- {
				ui[j] = pi[j]*ui[j+1] + qi[j]
			}
		}
	}
}

// BenchAdi times Adi on an n×n grid.
func BenchAdi[T poly.Floats](h *poly.Harness, tsteps, n int) (time.Duration, error) {
	pu := poly.Uninit2D[T](n, n)
	InitAdi(pu)
	u := pu.AssumeInit()
	v, p, q := poly.Scratch2D[T](n, n), poly.Scratch2D[T](n, n), poly.Scratch2D[T](n, n)

	elapsed, err := h.Run(func() { Adi(tsteps, u, v, p, q) })
	poly.Consume(h, "u", u)
	return elapsed, err
}
