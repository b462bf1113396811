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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-polybench/poly"
)

// assertClose fails if any element of got differs from want by more than
// tol relative to max(1, |want|).
func assertClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		scale := math.Max(1, math.Abs(want[i]))
		if math.Abs(got[i]-want[i]) > tol*scale {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// clone copies the backing data of a ready 2D array.
func clone(a *poly.Array2D[float64]) []float64 {
	return append([]float64(nil), a.Data()...)
}

// noFlush skips the cache eviction to keep tests fast.
var noFlush = &poly.Harness{FlushBytes: -1}

func TestGemmSmall(t *testing.T) {
	const n = 4
	pc, pa, pb := poly.Uninit2D[float64](n, n), poly.Uninit2D[float64](n, n), poly.Uninit2D[float64](n, n)
	alpha, beta := InitGemm(pc, pa, pb)
	require.Equal(t, 1.5, alpha)
	require.Equal(t, 1.2, beta)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()

	want := make([]float64, n*n)
	for i := range n {
		for j := range n {
			var sum float64
			for k := range n {
				sum += a.At(i, k) * b.At(k, j)
			}
			want[i*n+j] = alpha*sum + beta*c.At(i, j)
		}
	}

	Gemm(alpha, beta, c, a, b)
	assertClose(t, want, c.Data(), 1e-9)
}

func TestGemmFloat32(t *testing.T) {
	pc, pa, pb := poly.Uninit2D[float32](5, 3), poly.Uninit2D[float32](5, 7), poly.Uninit2D[float32](7, 3)
	alpha, beta := InitGemm(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()
	Gemm(alpha, beta, c, a, b)
	for _, v := range c.Data() {
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestGemmDeterministic(t *testing.T) {
	run := func() []float64 {
		h := &poly.Harness{FlushBytes: -1}
		var out []float64
		h.Observe = func(name string, v any) {
			out = clone(v.(*poly.Array2D[float64]))
		}
		_, err := BenchGemm[float64](h, 6, 7, 8)
		require.NoError(t, err)
		return out
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("gemm output differs between runs (-first +second):\n%s", diff)
	}
}

func TestGemver(t *testing.T) {
	const n = 7
	d, alpha, beta := InitGemver[float64](n)

	// Reference on plain slices.
	A := clone(d.A)
	u1, v1, u2, v2 := d.U1.Data(), d.V1.Data(), d.U2.Data(), d.V2.Data()
	y, z := d.Y.Data(), d.Z.Data()
	for i := range n {
		for j := range n {
			A[i*n+j] += u1[i]*v1[j] + u2[i]*v2[j]
		}
	}
	x := make([]float64, n)
	for i := range n {
		for j := range n {
			x[i] += beta * A[j*n+i] * y[j]
		}
		x[i] += z[i]
	}
	w := make([]float64, n)
	for i := range n {
		for j := range n {
			w[i] += alpha * A[i*n+j] * x[j]
		}
	}

	Gemver(alpha, beta, d)
	assertClose(t, A, d.A.Data(), 1e-12)
	assertClose(t, x, d.X.Data(), 1e-12)
	assertClose(t, w, d.W.Data(), 1e-12)
}

func TestGesummv(t *testing.T) {
	const n = 9
	pa, pb, px := poly.Uninit2D[float64](n, n), poly.Uninit2D[float64](n, n), poly.Uninit1D[float64](n)
	alpha, beta := InitGesummv(pa, pb, px)
	a, b, x := pa.AssumeInit(), pb.AssumeInit(), px.AssumeInit()
	tmp, y := poly.Scratch1D[float64](n), poly.Scratch1D[float64](n)

	want := make([]float64, n)
	for i := range n {
		var sa, sb float64
		for j := range n {
			sa += a.At(i, j) * x.At(j)
			sb += b.At(i, j) * x.At(j)
		}
		want[i] = alpha*sa + beta*sb
	}
	Gesummv(alpha, beta, a, b, tmp, x, y)
	assertClose(t, want, y.Data(), 1e-12)
}

func TestSymm(t *testing.T) {
	const m, n = 6, 5
	pc, pa, pb := poly.Uninit2D[float64](m, n), poly.Uninit2D[float64](m, m), poly.Uninit2D[float64](m, n)
	alpha, beta := InitSymm(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()
	assert.Equal(t, -999.0, a.At(0, m-1), "upper triangle is poisoned")

	sym := func(i, k int) float64 {
		if k > i {
			return a.At(k, i)
		}
		return a.At(i, k)
	}
	want := make([]float64, m*n)
	for i := range m {
		for j := range n {
			var sum float64
			for k := range m {
				sum += sym(i, k) * b.At(k, j)
			}
			want[i*n+j] = alpha*sum + beta*c.At(i, j)
		}
	}
	Symm(alpha, beta, c, a, b)
	assertClose(t, want, c.Data(), 1e-12)
}

func TestSyrkLowerTriangleOnly(t *testing.T) {
	const m, n = 6, 4
	pc, pa := poly.Uninit2D[float64](m, m), poly.Uninit2D[float64](m, n)
	alpha, beta := InitSyrk(pc, pa)
	c, a := pc.AssumeInit(), pa.AssumeInit()
	before := clone(c)

	Syrk(alpha, beta, c, a)
	for i := range m {
		for j := range m {
			if j > i {
				assert.Equal(t, before[i*m+j], c.At(i, j), "upper (%d,%d) modified", i, j)
				continue
			}
			var sum float64
			for k := range n {
				sum += a.At(i, k) * a.At(j, k)
			}
			assert.InDelta(t, alpha*sum+beta*before[i*m+j], c.At(i, j), 1e-12)
		}
	}
}

func TestSyr2kLowerTriangleOnly(t *testing.T) {
	const m, n = 5, 7
	pc, pa, pb := poly.Uninit2D[float64](m, m), poly.Uninit2D[float64](m, n), poly.Uninit2D[float64](m, n)
	alpha, beta := InitSyr2k(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()
	before := clone(c)

	Syr2k(alpha, beta, c, a, b)
	for i := range m {
		for j := range m {
			if j > i {
				assert.Equal(t, before[i*m+j], c.At(i, j), "upper (%d,%d) modified", i, j)
				continue
			}
			var sum float64
			for k := range n {
				sum += a.At(j, k)*b.At(i, k) + b.At(j, k)*a.At(i, k)
			}
			assert.InDelta(t, alpha*sum+beta*before[i*m+j], c.At(i, j), 1e-12)
		}
	}
}

func TestTrmm(t *testing.T) {
	const m, n = 6, 4
	a, pb := poly.Zeroed2D[float64](m, m), poly.Uninit2D[float64](m, n)
	alpha := InitTrmm(a, pb)
	b := pb.AssumeInit()
	for i := range m {
		assert.Equal(t, 1.0, a.At(i, i))
		for j := i + 1; j < m; j++ {
			assert.Zero(t, a.At(i, j))
		}
	}

	// B' = alpha·Aᵗ·B with A unit lower triangular.
	want := make([]float64, m*n)
	for i := range m {
		for j := range n {
			var sum float64
			for k := range m {
				sum += a.At(k, i) * b.At(k, j)
			}
			want[i*n+j] = alpha * sum
		}
	}
	Trmm(alpha, a, b)
	assertClose(t, want, b.Data(), 1e-12)
}

func TestBenchRuns(t *testing.T) {
	benches := map[string]func() error{
		"gemm":    func() error { _, err := BenchGemm[float32](noFlush, 8, 9, 10); return err },
		"gemver":  func() error { _, err := BenchGemver[float64](noFlush, 8); return err },
		"gesummv": func() error { _, err := BenchGesummv[float32](noFlush, 8); return err },
		"symm":    func() error { _, err := BenchSymm[float64](noFlush, 8, 9); return err },
		"syrk":    func() error { _, err := BenchSyrk[float32](noFlush, 8, 9); return err },
		"syr2k":   func() error { _, err := BenchSyr2k[float64](noFlush, 8, 9); return err },
		"trmm":    func() error { _, err := BenchTrmm[float32](noFlush, 8, 9); return err },
	}
	for name, run := range benches {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, run())
		})
	}
}

func TestElapsedGrowsWithSize(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	small, err := BenchGemm[float64](noFlush, 20, 25, 30)
	require.NoError(t, err)
	large, err := BenchGemm[float64](noFlush, 200, 220, 240)
	require.NoError(t, err)
	assert.Positive(t, large)
	assert.Greater(t, large, small, "the kernel must not be elided")
}

func BenchmarkGemm(b *testing.B) {
	pc, pa, pb := poly.Uninit2D[float32](200, 220), poly.Uninit2D[float32](200, 240), poly.Uninit2D[float32](240, 220)
	alpha, beta := InitGemm(pc, pa, pb)
	c, a, bm := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()
	for b.Loop() {
		Gemm(alpha, beta, c, a, bm)
	}
	poly.BlackBox(c)
}

func BenchmarkSyrk(b *testing.B) {
	pc, pa := poly.Uninit2D[float64](240, 240), poly.Uninit2D[float64](240, 200)
	alpha, beta := InitSyrk(pc, pa)
	c, a := pc.AssumeInit(), pa.AssumeInit()
	for b.Loop() {
		Syrk(alpha, beta, c, a)
	}
	poly.BlackBox(c)
}
