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

// Init3mm fills A (ni×nk), B (nk×nj), C (nj×nm) and D (nm×nl).
func Init3mm[T poly.Floats](a, b, c, d *poly.Pending2D[T]) {
	da, db, dd := a.Dims(), b.Dims(), d.Dims()
	ni, nk, nj, nl := da[0], da[1], db[1], dd[1]
	a.Fill(func(i, j int) T { return T((i*j+1)%ni) / T(5*ni) })
	b.Fill(func(i, j int) T { return T((i*(j+1)+2)%nj) / T(5*nj) })
	c.Fill(func(i, j int) T { return T(i*(j+3)%nl) / T(5*nl) })
	d.Fill(func(i, j int) T { return T((i*(j+2)+2)%nk) / T(5*nk) })
}

func matmulInto[T poly.Floats](dst, a, b *poly.Array2D[T]) {
	n, inner := dst.Cols(), a.Cols()
	bd := b.Data()
	for i := range dst.Rows() {
		di, ai := dst.Row(i), a.Row(i)
		for j := range n {
			di[j] = 0
			for k := range inner {
				di[j] += ai[k] * bd[k*n+j]
			}
		}
	}
}

// Kernel3mm computes G = (A·B)·(C·D), storing the partial products in E
// (ni×nj) and F (nj×nl).
func Kernel3mm[T poly.Floats](e, a, b, f, c, d, g *poly.Array2D[T]) {
	matmulInto(e, a, b)
	matmulInto(f, c, d)
	matmulInto(g, e, f)
}

// Bench3mm times Kernel3mm.
func Bench3mm[T poly.Floats](h *poly.Harness, ni, nj, nk, nl, nm int) (time.Duration, error) {
	pa, pb := poly.Uninit2D[T](ni, nk), poly.Uninit2D[T](nk, nj)
	pc, pd := poly.Uninit2D[T](nj, nm), poly.Uninit2D[T](nm, nl)
	Init3mm(pa, pb, pc, pd)
	a, b, c, d := pa.AssumeInit(), pb.AssumeInit(), pc.AssumeInit(), pd.AssumeInit()
	e, f, g := poly.Scratch2D[T](ni, nj), poly.Scratch2D[T](nj, nl), poly.Scratch2D[T](ni, nl)

	elapsed, err := h.Run(func() { Kernel3mm(e, a, b, f, c, d, g) })
	poly.Consume(h, "G", g)
	return elapsed, err
}
