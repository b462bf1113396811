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

// Init2mm fills A (ni×nk), B (nk×nj), C (nj×nl) and D (ni×nl) and returns
// alpha and beta.
func Init2mm[T poly.Floats](a, b, c, d *poly.Pending2D[T]) (alpha, beta T) {
	da, dc := a.Dims(), c.Dims()
	ni, nk, nj, nl := da[0], da[1], dc[0], dc[1]
	a.Fill(func(i, j int) T { return T((i*j+1)%ni) / T(ni) })
	b.Fill(func(i, j int) T { return T(i*(j+1)%nj) / T(nj) })
	c.Fill(func(i, j int) T { return T((i*(j+3)+1)%nl) / T(nl) })
	d.Fill(func(i, j int) T { return T(i*(j+2)%nk) / T(nk) })
	return 1.5, 1.2
}

// Kernel2mm computes D = alpha·A·B·C + beta·D through the ni×nj
// intermediate tmp.
func Kernel2mm[T poly.Floats](alpha, beta T, tmp, a, b, c, d *poly.Array2D[T]) {
	ni, nj, nk, nl := a.Rows(), b.Cols(), a.Cols(), c.Cols()
	bd, cd := b.Data(), c.Data()
	for i := range ni {
		ti, ai := tmp.Row(i), a.Row(i)
		for j := range nj {
			ti[j] = 0
			for k := range nk {
				ti[j] += alpha * ai[k] * bd[k*nj+j]
			}
		}
	}
	for i := range ni {
		di, ti := d.Row(i), tmp.Row(i)
		for j := range nl {
			di[j] *= beta
			for k := range nj {
				di[j] += ti[k] * cd[k*nl+j]
			}
		}
	}
}

// Bench2mm times Kernel2mm.
func Bench2mm[T poly.Floats](h *poly.Harness, ni, nj, nk, nl int) (time.Duration, error) {
	pa, pb := poly.Uninit2D[T](ni, nk), poly.Uninit2D[T](nk, nj)
	pc, pd := poly.Uninit2D[T](nj, nl), poly.Uninit2D[T](ni, nl)
	alpha, beta := Init2mm(pa, pb, pc, pd)
	a, b, c, d := pa.AssumeInit(), pb.AssumeInit(), pc.AssumeInit(), pd.AssumeInit()
	tmp := poly.Scratch2D[T](ni, nj)

	elapsed, err := h.Run(func() { Kernel2mm(alpha, beta, tmp, a, b, c, d) })
	poly.Consume(h, "D", d)
	return elapsed, err
}
