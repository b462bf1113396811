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

// InitTrisolv writes the lower triangle of L into a zeroed n×n matrix and
// fills x and b.
func InitTrisolv[T poly.Floats](l *poly.Array2D[T], x, b *poly.Pending1D[T]) {
	n := x.Len()
	fn := T(n)
	x.Fill(func(int) T { return -999 })
	b.Fill(func(i int) T { return T(i) })
	for i := range n {
		li := l.Row(i)
		for j := 0; j <= i; j++ {
			li[j] = T(i+n-j+1) * 2 / fn
		}
	}
}

// Trisolv solves L·x = b by forward substitution.
func Trisolv[T poly.Floats](l *poly.Array2D[T], x, b *poly.Array1D[T]) {
	n := l.Rows()
	xd, bd := x.Data(), b.Data()
	for i := range n {
		li := l.Row(i)
		xd[i] = bd[i]
		for j := range i {
			xd[i] -= li[j] * xd[j]
		}
		xd[i] = xd[i] / li[i]
	}
}

// BenchTrisolv times Trisolv for size n.
func BenchTrisolv[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	l, px, pb := poly.Zeroed2D[T](n, n), poly.Uninit1D[T](n), poly.Uninit1D[T](n)
	InitTrisolv(l, px, pb)
	x, b := px.AssumeInit(), pb.AssumeInit()

	elapsed, err := h.Run(func() { Trisolv(l, x, b) })
	poly.Consume(h, "x", x)
	return elapsed, err
}
