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

package blas

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// GemverData holds the operands of Gemver. A is n×n; all vectors have
// length n. A, W and X are updated in place.
type GemverData[T poly.Floats] struct {
	A                    *poly.Array2D[T]
	U1, V1, U2, V2, W, X *poly.Array1D[T]
	Y, Z                 *poly.Array1D[T]
}

// InitGemver returns the ready operands for size n with alpha and beta.
func InitGemver[T poly.Floats](n int) (d GemverData[T], alpha, beta T) {
	fn := T(n)
	pa := poly.Uninit2D[T](n, n)
	pu1, pu2 := poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	pv1, pv2 := poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	py, pz := poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	px, pw := poly.Uninit1D[T](n), poly.Uninit1D[T](n)

	pu1.Fill(func(i int) T { return T(i) })
	pu2.Fill(func(i int) T { return (T(i+1) / fn) / 2 })
	pv1.Fill(func(i int) T { return (T(i+1) / fn) / 4 })
	pv2.Fill(func(i int) T { return (T(i+1) / fn) / 6 })
	py.Fill(func(i int) T { return (T(i+1) / fn) / 8 })
	pz.Fill(func(i int) T { return (T(i+1) / fn) / 9 })
	px.Fill(func(int) T { return 0 })
	pw.Fill(func(int) T { return 0 })
	pa.Fill(func(i, j int) T { return T(i*j%n) / fn })

	d = GemverData[T]{
		A:  pa.AssumeInit(),
		U1: pu1.AssumeInit(),
		V1: pv1.AssumeInit(),
		U2: pu2.AssumeInit(),
		V2: pv2.AssumeInit(),
		W:  pw.AssumeInit(),
		X:  px.AssumeInit(),
		Y:  py.AssumeInit(),
		Z:  pz.AssumeInit(),
	}
	return d, 1.5, 1.2
}

// Gemver computes the rank-2 update A += u1·v1ᵗ + u2·v2ᵗ followed by
// x += beta·Aᵗ·y + z and w += alpha·A·x.
func Gemver[T poly.Floats](alpha, beta T, d GemverData[T]) {
	n := d.A.Rows()
	u1, v1, u2, v2 := d.U1.Data(), d.V1.Data(), d.U2.Data(), d.V2.Data()
	w, x, y, z := d.W.Data(), d.X.Data(), d.Y.Data(), d.Z.Data()
	ad := d.A.Data()

	for i := range n {
		ai := d.A.Row(i)
		for j := range n {
			ai[j] = ai[j] + u1[i]*v1[j] + u2[i]*v2[j]
		}
	}
	for i := range n {
		for j := range n {
			x[i] = x[i] + beta*ad[j*n+i]*y[j]
		}
	}
	for i := range n {
		x[i] = x[i] + z[i]
	}
	for i := range n {
		ai := d.A.Row(i)
		for j := range n {
			w[i] = w[i] + alpha*ai[j]*x[j]
		}
	}
}

// BenchGemver times Gemver for size n.
func BenchGemver[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	d, alpha, beta := InitGemver[T](n)
	elapsed, err := h.Run(func() { Gemver(alpha, beta, d) })
	poly.Consume(h, "w", d.W)
	return elapsed, err
}
