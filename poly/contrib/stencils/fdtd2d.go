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

// InitFdtd2d fills the nx×ny fields ex, ey and hz and the tmax-long source
// fict.
func InitFdtd2d[T poly.Floats](ex, ey, hz *poly.Pending2D[T], fict *poly.Pending1D[T]) {
	dims := ex.Dims()
	nx, ny := dims[0], dims[1]
	fict.Fill(func(i int) T { return T(i) })
	ex.Fill(func(i, j int) T { return T(i*(j+1)) / T(nx) })
	ey.Fill(func(i, j int) T { return T(i*(j+2)) / T(ny) })
	hz.Fill(func(i, j int) T { return T(i*(j+3)) / T(nx) })
}

// Fdtd2d runs len(fict) finite-difference time-domain steps over the
// electric fields ex, ey and the magnetic field hz. Step t drives the first
// row of ey with fict[t].
func Fdtd2d[T poly.Floats](ex, ey, hz *poly.Array2D[T], fict *poly.Array1D[T]) {
	nx, ny := ex.Rows(), ex.Cols()
	for _, src := range fict.Data() {
		ey0 := ey.Row(0)
		for j := range ny {
			ey0[j] = src
		}
		for i := 1; i < nx; i++ {
			eyi, hzi, hzm := ey.Row(i), hz.Row(i), hz.Row(i-1)
			for j := range ny {
				eyi[j] = eyi[j] - 0.5*(hzi[j]-hzm[j])
			}
		}
		for i := range nx {
			exi, hzi := ex.Row(i), hz.Row(i)
			for j := 1; j < ny; j++ {
				exi[j] = exi[j] - 0.5*(hzi[j]-hzi[j-1])
			}
		}
		for i := 0; i < nx-1; i++ {
			hzi, exi, eyi, eyp := hz.Row(i), ex.Row(i), ey.Row(i), ey.Row(i+1)
			for j := 0; j < ny-1; j++ {
				hzi[j] = hzi[j] - 0.7*(exi[j+1]-exi[j]+eyp[j]-eyi[j])
			}
		}
	}
}

// BenchFdtd2d times Fdtd2d for tmax steps on an nx×ny grid.
func BenchFdtd2d[T poly.Floats](h *poly.Harness, tmax, nx, ny int) (time.Duration, error) {
	pex, pey, phz := poly.Uninit2D[T](nx, ny), poly.Uninit2D[T](nx, ny), poly.Uninit2D[T](nx, ny)
	pfict := poly.Uninit1D[T](tmax)
	InitFdtd2d(pex, pey, phz, pfict)
	ex, ey, hz, fict := pex.AssumeInit(), pey.AssumeInit(), phz.AssumeInit(), pfict.AssumeInit()

	elapsed, err := h.Run(func() { Fdtd2d(ex, ey, hz, fict) })
	poly.Consume(h, "ex", ex)
	poly.Consume(h, "ey", ey)
	poly.Consume(h, "hz", hz)
	return elapsed, err
}
