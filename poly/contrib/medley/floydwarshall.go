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
	"time"

	"github.com/ajroetker/go-polybench/poly"
)

// NoEdge is the weight the generator writes for missing edges.
const NoEdge = 999

// InitFloydWarshall fills the n×n path-weight matrix.
func InitFloydWarshall[T poly.Floats](path *poly.Pending2D[T]) {
	path.Fill(func(i, j int) T {
		if s := i + j; s%13 == 0 || s%7 == 0 || s%11 == 0 {
			return NoEdge
		}
		return T(i*j%7 + 1)
	})
}

// FloydWarshall relaxes path in place into all-pairs shortest path lengths.
// The intermediate vertex k is the outermost loop.
func FloydWarshall[T poly.Floats](path *poly.Array2D[T]) {
	n := path.Rows()
	for k := range n {
		pk := path.Row(k)
		for i := range n {
			pi := path.Row(i)
			for j := range n {
				if via := pi[k] + pk[j]; via <= pi[j] {
					pi[j] = via
				}
			}
		}
	}
}

// BenchFloydWarshall times FloydWarshall for n vertices.
func BenchFloydWarshall[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	pp := poly.Uninit2D[T](n, n)
	InitFloydWarshall(pp)
	path := pp.AssumeInit()

	elapsed, err := h.Run(func() { FloydWarshall(path) })
	poly.Consume(h, "path", path)
	return elapsed, err
}
