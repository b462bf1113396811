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

// Base is one nucleotide encoded as 0..3. Two bases pair when they sum to 3.
type Base = int8

// InitNussinov fills the sequence and zeroes the n×n score table.
func InitNussinov[T poly.Floats](seq *poly.Pending1D[Base], table *poly.Pending2D[T]) {
	seq.Fill(func(i int) Base { return Base((i + 1) % 4) })
	table.Fill(func(int, int) T { return 0 })
}

func matchBase[T poly.Floats](b1, b2 Base) T {
	if b1+b2 == 3 {
		return 1
	}
	return 0
}

// Nussinov fills the upper triangle of table with maximal base-pair counts
// by dynamic programming. Rows are processed from the last to the first so
// that every cell only depends on finished cells.
func Nussinov[T poly.Floats](seq *poly.Array1D[Base], table *poly.Array2D[T]) {
	n := table.Rows()
	sd, td := seq.Data(), table.Data()
	for i := n - 1; i >= 0; i-- {
		ti := table.Row(i)
		for j := i + 1; j < n; j++ {
			if j-1 >= 0 {
				ti[j] = max(ti[j], ti[j-1])
			}
			if i+1 < n {
				ti[j] = max(ti[j], td[(i+1)*n+j])
			}
			if j-1 >= 0 && i+1 < n {
				if i < j-1 {
					ti[j] = max(ti[j], td[(i+1)*n+j-1]+matchBase[T](sd[i], sd[j]))
				} else {
					ti[j] = max(ti[j], td[(i+1)*n+j-1])
				}
			}
			for k := i + 1; k < j; k++ {
				ti[j] = max(ti[j], ti[k]+td[(k+1)*n+j])
			}
		}
	}
}

// BenchNussinov times Nussinov on a sequence of length n.
func BenchNussinov[T poly.Floats](h *poly.Harness, n int) (time.Duration, error) {
	pseq, ptable := poly.Uninit1D[Base](n), poly.Uninit2D[T](n, n)
	InitNussinov(pseq, ptable)
	seq, table := pseq.AssumeInit(), ptable.AssumeInit()

	elapsed, err := h.Run(func() { Nussinov(seq, table) })
	poly.Consume(h, "table", table)
	return elapsed, err
}
