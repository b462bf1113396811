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

package medley

import (
	"math"
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitDeriche fills the w×h input image and returns alpha.
func InitDeriche[T poly.Floats](imgIn *poly.Pending2D[T]) (alpha T) {
	imgIn.Fill(func(i, j int) T { return T((313*i+991*j)%65536) / 65535 })
	return 0.25
}

// dericheCoefficients holds the recursive filter taps for one alpha.
type dericheCoefficients[T poly.Floats] struct {
	a1, a2, a3, a4, a5, a6, a7, a8 T
	b1, b2, c1, c2                 T
}

func newDericheCoefficients[T poly.Floats](alpha T) dericheCoefficients[T] {
	fa := float64(alpha)
	em := math.Exp(-fa)
	k := (1 - em) * (1 - em) / (1 + 2*fa*em - math.Exp(2*fa))
	var c dericheCoefficients[T]
	c.a1 = T(k)
	c.a5 = c.a1
	c.a2 = T(k * em * (fa - 1))
	c.a6 = c.a2
	c.a3 = T(k * em * (fa + 1))
	c.a7 = c.a3
	c.a4 = T(-k * math.Exp(-2*fa))
	c.a8 = c.a4
	c.b1 = T(math.Pow(2, -fa))
	c.b2 = T(-math.Exp(-2 * fa))
	c.c1, c.c2 = 1, 1
	return c
}

// Deriche runs the recursive Gaussian edge filter over imgIn: a causal and
// an anti-causal pass along every row, summed into imgOut, then the same two
// passes along every column of imgOut. y1 and y2 are w×h scratch images.
func Deriche[T poly.Floats](alpha T, imgIn, imgOut, y1, y2 *poly.Array2D[T]) {
	w, h := imgIn.Rows(), imgIn.Cols()
	c := newDericheCoefficients(alpha)
	od, y1d, y2d := imgOut.Data(), y1.Data(), y2.Data()

	for i := range w {
		in, r1 := imgIn.Row(i), y1.Row(i)
		var ym1, ym2, xm1 T
		for j := range h {
			r1[j] = c.a1*in[j] + c.a2*xm1 + c.b1*ym1 + c.b2*ym2
			xm1 = in[j]
			ym2 = ym1
			ym1 = r1[j]
		}
	}
	for i := range w {
		in, r2 := imgIn.Row(i), y2.Row(i)
		var yp1, yp2, xp1, xp2 T
		for j := h - 1; j >= 0; j-- {
			r2[j] = c.a3*xp1 + c.a4*xp2 + c.b1*yp1 + c.b2*yp2
			xp2 = xp1
			xp1 = in[j]
			yp2 = yp1
			yp1 = r2[j]
		}
	}
	for i := range od {
		od[i] = c.c1 * (y1d[i] + y2d[i])
	}

	for j := range h {
		var tm1, ym1, ym2 T
		for i := range w {
			idx := i*h + j
			y1d[idx] = c.a5*od[idx] + c.a6*tm1 + c.b1*ym1 + c.b2*ym2
			tm1 = od[idx]
			ym2 = ym1
			ym1 = y1d[idx]
		}
	}
	for j := range h {
		var tp1, tp2, yp1, yp2 T
		for i := w - 1; i >= 0; i-- {
			idx := i*h + j
			y2d[idx] = c.a7*tp1 + c.a8*tp2 + c.b1*yp1 + c.b2*yp2
			tp2 = tp1
			tp1 = od[idx]
			yp2 = yp1
			yp1 = y2d[idx]
		}
	}
	for i := range od {
		od[i] = c.c2 * (y1d[i] + y2d[i])
	}
}

// BenchDeriche times Deriche on a w×h image.
func BenchDeriche[T poly.Floats](h *poly.Harness, w, hgt int) (time.Duration, error) {
	pin := poly.Uninit2D[T](w, hgt)
	alpha := InitDeriche(pin)
	imgIn := pin.AssumeInit()
	imgOut, y1, y2 := poly.Scratch2D[T](w, hgt), poly.Scratch2D[T](w, hgt), poly.Scratch2D[T](w, hgt)

	elapsed, err := h.Run(func() { Deriche(alpha, imgIn, imgOut, y1, y2) })
	poly.Consume(h, "imgOut", imgOut)
	return elapsed, err
}
