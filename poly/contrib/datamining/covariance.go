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
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// InitCovariance fills data (m×n) and returns float_n = n, the attribute
// count, which the kernel divides by in place of the observation count.
func InitCovariance[T poly.Floats](data *poly.Pending2D[T]) (floatN T) {
	n := data.Dims()[1]
	data.Fill(func(i, j int) T { return T(i*j) / T(n) })
	return T(n)
}

// Covariance computes the n×n covariance matrix of data into cov, taking
// means over floatN and normalizing by floatN-1. With floatN equal to the
// row count this is the sample covariance. data is centered in place; mean
// (length n) receives the column means.
func Covariance[T poly.Floats](floatN T, data, cov *poly.Array2D[T], mean *poly.Array1D[T]) {
	m, n := data.Rows(), data.Cols()
	dd, md, cd := data.Data(), mean.Data(), cov.Data()
	for j := range n {
		md[j] = 0
		for i := range m {
			md[j] += dd[i*n+j]
		}
		md[j] /= floatN
	}
	for i := range m {
		di := data.Row(i)
		for j := range n {
			di[j] -= md[j]
		}
	}
	for i := range n {
		ci := cov.Row(i)
		for j := i; j < n; j++ {
			ci[j] = 0
			for k := range m {
				ci[j] += dd[k*n+i] * dd[k*n+j]
			}
			ci[j] /= floatN - 1
			cd[j*n+i] = ci[j]
		}
	}
}

// BenchCovariance times Covariance on m observations of n attributes.
func BenchCovariance[T poly.Floats](h *poly.Harness, m, n int) (time.Duration, error) {
	pd := poly.Uninit2D[T](m, n)
	floatN := InitCovariance(pd)
	data := pd.AssumeInit()
	cov, mean := poly.Scratch2D[T](n, n), poly.Scratch1D[T](n)

	elapsed, err := h.Run(func() { Covariance(floatN, data, cov, mean) })
	poly.Consume(h, "cov", cov)
	return elapsed, err
}
