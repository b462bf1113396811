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
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// StddevEpsilon is the threshold at or below which a column's standard
// deviation is replaced by 1, so near-constant columns do not blow up the
// normalization.
const StddevEpsilon = 0.1

// InitCorrelation fills data (m×n) and returns float_n = n, the attribute
// count, which the kernel divides by in place of the observation count.
func InitCorrelation[T poly.Floats](data *poly.Pending2D[T]) (floatN T) {
	n := data.Dims()[1]
	data.Fill(func(i, j int) T { return T(i*j) / T(n+i) })
	return T(n)
}

// Correlation computes the n×n correlation matrix of data into corr, taking
// moments over floatN. With floatN equal to the row count this is the
// Pearson correlation.
// data is normalized in place; mean and stddev (length n) receive the column
// statistics, with clamped columns reporting a stddev of 1.
func Correlation[T poly.Floats](floatN T, data, corr *poly.Array2D[T], mean, stddev *poly.Array1D[T]) {
	m, n := data.Rows(), data.Cols()
	dd, md, sd, cd := data.Data(), mean.Data(), stddev.Data(), corr.Data()
	const eps = StddevEpsilon

	for j := range n {
		md[j] = 0
		for i := range m {
			md[j] += dd[i*n+j]
		}
		md[j] /= floatN
	}
	for j := range n {
		sd[j] = 0
		for i := range m {
			d := dd[i*n+j] - md[j]
			sd[j] += d * d
		}
		sd[j] /= floatN
		sd[j] = T(math.Sqrt(float64(sd[j])))
		if sd[j] <= eps {
			sd[j] = 1
		}
	}

	sqrtN := T(math.Sqrt(float64(floatN)))
	for i := range m {
		di := data.Row(i)
		for j := range n {
			di[j] -= md[j]
			di[j] /= sqrtN * sd[j]
		}
	}

	for i := 0; i < n-1; i++ {
		ci := corr.Row(i)
		ci[i] = 1
		for j := i + 1; j < n; j++ {
			ci[j] = 0
			for k := range m {
				ci[j] += dd[k*n+i] * dd[k*n+j]
			}
			cd[j*n+i] = ci[j]
		}
	}
	cd[(n-1)*n+n-1] = 1
}

// BenchCorrelation times Correlation on m observations of n attributes.
func BenchCorrelation[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pd := poly.Uninit2D[T](m, n)
	floatN := InitCorrelation(pd)
	data := pd.AssumeInit()
	corr := poly.Scratch2D[T](n, n)
	mean, stddev := poly.Scratch1D[T](n), poly.Scratch1D[T](n)

	elapsed, err := h.Run(func() { Correlation(floatN, data, corr, mean, stddev) })
	poly.Consume(h, "corr", corr)
	return elapsed, err
}
