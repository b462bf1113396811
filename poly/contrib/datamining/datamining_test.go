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

package datamining

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-polybench/poly"
)

func TestCovariance(t *testing.T) {
	const m, n = 9, 5
	pd := poly.Uninit2D[float64](m, n)
	floatN := InitCovariance(pd)
	require.Equal(t, float64(n), floatN, "float_n is the attribute count")
	data := pd.AssumeInit()
	orig := append([]float64(nil), data.Data()...)

	cov, mean := poly.Scratch2D[float64](n, n), poly.Scratch1D[float64](n)
	Covariance(floatN, data, cov, mean)

	for a := range n {
		var mu float64
		for i := range m {
			mu += orig[i*n+a]
		}
		mu /= n
		assert.InDelta(t, mu, mean.At(a), 1e-12)
	}
	for a := range n {
		for b := range n {
			var s float64
			for i := range m {
				s += (orig[i*n+a] - mean.At(a)) * (orig[i*n+b] - mean.At(b))
			}
			assert.InDelta(t, s/(n-1), cov.At(a, b), 1e-12, "cov(%d,%d)", a, b)
			assert.Equal(t, cov.At(a, b), cov.At(b, a))
		}
	}
}

func TestCorrelation(t *testing.T) {
	// Square data, where float_n is also the observation count.
	const m, n = 8, 8
	pd := poly.Uninit2D[float64](m, n)
	floatN := InitCorrelation(pd)
	data := pd.AssumeInit()
	orig := append([]float64(nil), data.Data()...)

	corr := poly.Scratch2D[float64](n, n)
	mean, stddev := poly.Scratch1D[float64](n), poly.Scratch1D[float64](n)
	Correlation(floatN, data, corr, mean, stddev)

	// Column 0 is identically zero, so its deviation is clamped.
	assert.Equal(t, 1.0, stddev.At(0))

	col := func(j int) []float64 {
		c := make([]float64, m)
		for i := range m {
			c[i] = orig[i*n+j]
		}
		return c
	}
	pearson := func(x, y []float64) float64 {
		var mx, my float64
		for i := range x {
			mx += x[i]
			my += y[i]
		}
		mx /= float64(len(x))
		my /= float64(len(y))
		var sxy, sxx, syy float64
		for i := range x {
			sxy += (x[i] - mx) * (y[i] - my)
			sxx += (x[i] - mx) * (x[i] - mx)
			syy += (y[i] - my) * (y[i] - my)
		}
		return sxy / math.Sqrt(sxx*syy)
	}

	for i := range n {
		assert.Equal(t, 1.0, corr.At(i, i))
		for j := range n {
			assert.Equal(t, corr.At(i, j), corr.At(j, i))
			if i == j || stddev.At(i) == 1 || stddev.At(j) == 1 {
				continue
			}
			assert.InDelta(t, pearson(col(i), col(j)), corr.At(i, j), 1e-9, "corr(%d,%d)", i, j)
		}
	}
	for j := 1; j < n; j++ {
		assert.Zero(t, corr.At(0, j), "a constant column is uncorrelated")
	}
}

func TestCorrelationDividesByColumnCount(t *testing.T) {
	const m, n = 3, 2
	pd := poly.Uninit2D[float64](m, n)
	floatN := InitCorrelation(pd)
	require.Equal(t, 2.0, floatN)

	// Column 1 is {0, 1/3, 1/2}: its sum over float_n = 2 rather than m = 3.
	corr := poly.Scratch2D[float64](n, n)
	mean, stddev := poly.Scratch1D[float64](n), poly.Scratch1D[float64](n)
	Correlation(floatN, pd.AssumeInit(), corr, mean, stddev)
	assert.InDelta(t, 5.0/12, mean.At(1), 1e-15)
	assert.InDelta(t, math.Sqrt(27.0/288), stddev.At(1), 1e-15)
}

func TestCorrelationSingleColumn(t *testing.T) {
	pd := poly.Uninit2D[float32](4, 1)
	floatN := InitCorrelation(pd)
	corr := poly.Scratch2D[float32](1, 1)
	Correlation(floatN, pd.AssumeInit(), corr, poly.Scratch1D[float32](1), poly.Scratch1D[float32](1))
	assert.Equal(t, float32(1), corr.At(0, 0))
}

func TestBenchRuns(t *testing.T) {
	h := &poly.Harness{FlushBytes: -1}
	_, err := BenchCovariance[float32](h, 32, 28)
	require.NoError(t, err)
	_, err = BenchCorrelation[float64](h, 32, 28)
	require.NoError(t, err)
}
