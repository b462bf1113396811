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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-polybench/poly"
)

var noFlush = &poly.Harness{FlushBytes: -1}

// naiveMatMul returns a·b for row-major a (m×k) and b (k×n).
func naiveMatMul(a, b []float64, m, k, n int) []float64 {
	c := make([]float64, m*n)
	for i := range m {
		for j := range n {
			var sum float64
			for p := range k {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return c
}

func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(tol, 1e-12)
}

func Test2mm(t *testing.T) {
	const ni, nj, nk, nl = 4, 5, 6, 7
	pa, pb := poly.Uninit2D[float64](ni, nk), poly.Uninit2D[float64](nk, nj)
	pc, pd := poly.Uninit2D[float64](nj, nl), poly.Uninit2D[float64](ni, nl)
	alpha, beta := Init2mm(pa, pb, pc, pd)
	a, b, c, d := pa.AssumeInit(), pb.AssumeInit(), pc.AssumeInit(), pd.AssumeInit()

	ab := naiveMatMul(a.Data(), b.Data(), ni, nk, nj)
	abc := naiveMatMul(ab, c.Data(), ni, nj, nl)
	want := make([]float64, ni*nl)
	for i := range want {
		want[i] = alpha*abc[i] + beta*d.Data()[i]
	}

	Kernel2mm(alpha, beta, poly.Scratch2D[float64](ni, nj), a, b, c, d)
	if diff := cmp.Diff(want, d.Data(), approx(1e-12)); diff != "" {
		t.Errorf("2mm mismatch (-want +got):\n%s", diff)
	}
}

func Test3mm(t *testing.T) {
	const ni, nj, nk, nl, nm = 3, 4, 5, 6, 7
	pa, pb := poly.Uninit2D[float64](ni, nk), poly.Uninit2D[float64](nk, nj)
	pc, pd := poly.Uninit2D[float64](nj, nm), poly.Uninit2D[float64](nm, nl)
	Init3mm(pa, pb, pc, pd)
	a, b, c, d := pa.AssumeInit(), pb.AssumeInit(), pc.AssumeInit(), pd.AssumeInit()

	ab := naiveMatMul(a.Data(), b.Data(), ni, nk, nj)
	cd := naiveMatMul(c.Data(), d.Data(), nj, nm, nl)
	want := naiveMatMul(ab, cd, ni, nj, nl)

	e, f, g := poly.Scratch2D[float64](ni, nj), poly.Scratch2D[float64](nj, nl), poly.Scratch2D[float64](ni, nl)
	Kernel3mm(e, a, b, f, c, d, g)
	if diff := cmp.Diff(want, g.Data(), approx(1e-12)); diff != "" {
		t.Errorf("3mm mismatch (-want +got):\n%s", diff)
	}
}

func TestAtax(t *testing.T) {
	const m, n = 5, 8
	pa, px := poly.Uninit2D[float64](m, n), poly.Uninit1D[float64](n)
	InitAtax(pa, px)
	a, x := pa.AssumeInit(), px.AssumeInit()

	ax := naiveMatMul(a.Data(), x.Data(), m, n, 1)
	want := make([]float64, n)
	for j := range n {
		for i := range m {
			want[j] += a.At(i, j) + ax[i]
		}
	}

	y, tmp := poly.Scratch1D[float64](n), poly.Scratch1D[float64](m)
	Atax(a, x, y, tmp)
	if diff := cmp.Diff(want, y.Data(), approx(1e-12)); diff != "" {
		t.Errorf("atax mismatch (-want +got):\n%s", diff)
	}
}

func TestAtaxSingleCell(t *testing.T) {
	pa, px := poly.Uninit2D[float64](1, 1), poly.Uninit1D[float64](1)
	pa.Set(0, 0, 0.2)
	px.Set(0, 1)
	y, tmp := poly.Scratch1D[float64](1), poly.Scratch1D[float64](1)
	Atax(pa.AssumeInit(), px.AssumeInit(), y, tmp)
	require.InDelta(t, 0.2, tmp.At(0), 1e-15)
	// A[0][0] + tmp[0], not A[0][0]·tmp[0].
	require.InDelta(t, 0.4, y.At(0), 1e-15)
}

func TestBicg(t *testing.T) {
	const m, n = 6, 4
	pa, pr, pp := poly.Uninit2D[float64](m, n), poly.Uninit1D[float64](m), poly.Uninit1D[float64](n)
	InitBicg(pa, pr, pp)
	a, r, p := pa.AssumeInit(), pr.AssumeInit(), pp.AssumeInit()

	wantQ := naiveMatMul(a.Data(), p.Data(), m, n, 1)
	wantS := naiveMatMul(r.Data(), a.Data(), 1, m, n)

	s, q := poly.Scratch1D[float64](n), poly.Scratch1D[float64](m)
	Bicg(a, s, q, p, r)
	if diff := cmp.Diff(wantS, s.Data(), approx(1e-12)); diff != "" {
		t.Errorf("bicg s mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantQ, q.Data(), approx(1e-12)); diff != "" {
		t.Errorf("bicg q mismatch (-want +got):\n%s", diff)
	}
}

func TestDoitgen(t *testing.T) {
	const nr, nq, np = 3, 2, 5
	pa, pc := poly.Uninit3D[float64](nr, nq, np), poly.Uninit2D[float64](np, np)
	InitDoitgen(pa, pc)
	a, c4 := pa.AssumeInit(), pc.AssumeInit()

	// Every (r, q) row is a 1×np matrix multiplied by C4.
	want := naiveMatMul(a.Data(), c4.Data(), nr*nq, np, np)

	Doitgen(a, c4, poly.Scratch1D[float64](np))
	if diff := cmp.Diff(want, a.Data(), approx(1e-12)); diff != "" {
		t.Errorf("doitgen mismatch (-want +got):\n%s", diff)
	}
}

func TestMvt(t *testing.T) {
	const n = 7
	px1, px2 := poly.Uninit1D[float64](n), poly.Uninit1D[float64](n)
	py1, py2 := poly.Uninit1D[float64](n), poly.Uninit1D[float64](n)
	pa := poly.Uninit2D[float64](n, n)
	InitMvt(px1, px2, py1, py2, pa)
	x1, x2, y1, y2, a := px1.AssumeInit(), px2.AssumeInit(), py1.AssumeInit(), py2.AssumeInit(), pa.AssumeInit()

	ay1 := naiveMatMul(a.Data(), y1.Data(), n, n, 1)
	aty2 := naiveMatMul(y2.Data(), a.Data(), 1, n, n)
	want1, want2 := make([]float64, n), make([]float64, n)
	for i := range n {
		want1[i] = x1.At(i) + ay1[i]
		want2[i] = x2.At(i) + aty2[i]
	}

	Mvt(x1, x2, y1, y2, a)
	if diff := cmp.Diff(want1, x1.Data(), approx(1e-12)); diff != "" {
		t.Errorf("mvt x1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want2, x2.Data(), approx(1e-12)); diff != "" {
		t.Errorf("mvt x2 mismatch (-want +got):\n%s", diff)
	}
}

func TestBenchRuns(t *testing.T) {
	for name, run := range map[string]func() error{
		"2mm":     func() error { _, err := Bench2mm[float32](noFlush, 4, 5, 6, 7); return err },
		"3mm":     func() error { _, err := Bench3mm[float64](noFlush, 4, 5, 6, 7, 8); return err },
		"atax":    func() error { _, err := BenchAtax[float32](noFlush, 9, 10); return err },
		"bicg":    func() error { _, err := BenchBicg[float64](noFlush, 10, 9); return err },
		"doitgen": func() error { _, err := BenchDoitgen[float32](noFlush, 4, 3, 5); return err },
		"mvt":     func() error { _, err := BenchMvt[float64](noFlush, 12); return err },
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, run())
		})
	}
}

func TestAtaxOutputFinite(t *testing.T) {
	h := &poly.Harness{FlushBytes: -1}
	h.Observe = func(_ string, v any) {
		for _, y := range v.(*poly.Array1D[float64]).Data() {
			require.False(t, math.IsNaN(y) || math.IsInf(y, 0))
		}
	}
	_, err := BenchAtax[float64](h, 38, 42)
	require.NoError(t, err)
}

func Benchmark3mm(b *testing.B) {
	pa, pb := poly.Uninit2D[float64](180, 210), poly.Uninit2D[float64](210, 190)
	pc, pd := poly.Uninit2D[float64](190, 220), poly.Uninit2D[float64](220, 200)
	Init3mm(pa, pb, pc, pd)
	a, bm, c, d := pa.AssumeInit(), pb.AssumeInit(), pc.AssumeInit(), pd.AssumeInit()
	e, f, g := poly.Scratch2D[float64](180, 190), poly.Scratch2D[float64](190, 200), poly.Scratch2D[float64](180, 200)
	for b.Loop() {
		Kernel3mm(e, a, bm, f, c, d, g)
	}
	poly.BlackBox(g)
}
