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

// InitDoitgen fills A (nr×nq×np) and C4 (np×np).
func InitDoitgen[T poly.Floats](a *poly.Pending3D[T], c4 *poly.Pending2D[T]) {
	np := a.Dims()[2]
	fp := T(np)
	a.Fill(func(i, j, k int) T { return T((i*j+k)%np) / fp })
	c4.Fill(func(i, j int) T { return T(i*j%np) / fp })
}

// Doitgen multiplies every innermost row of A by C4 in place, using sum
// (length np) as the row buffer.
func Doitgen[T poly.Floats](a *poly.Array3D[T], c4 *poly.Array2D[T], sum *poly.Array1D[T]) {
	dims := a.Dims()
	nr, nq, np := dims[0], dims[1], dims[2]
	cd, sd := c4.Data(), sum.Data()
	for r := range nr {
		for q := range nq {
			row := a.Row(r, q)
			for p := range np {
				sd[p] = 0
				for s := range np {
					sd[p] += row[s] * cd[s*np+p]
				}
			}
			copy(row, sd)
		}
	}
}

// BenchDoitgen times Doitgen on an nr×nq×np tensor.
func BenchDoitgen[T poly.Floats](h *poly.Harness, nr, nq, np int) (time.Duration, error) {
	pa, pc := poly.Uninit3D[T](nr, nq, np), poly.Uninit2D[T](np, np)
	InitDoitgen(pa, pc)
	a, c4 := pa.AssumeInit(), pc.AssumeInit()
	sum := poly.Scratch1D[T](np)

	elapsed, err := h.Run(func() { Doitgen(a, c4, sum) })
	poly.Consume(h, "A", a)
	return elapsed, err
}
