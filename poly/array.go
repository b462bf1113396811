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

package poly

import (
	"fmt"
	"strings"
)

// Array1D is a dense vector of fixed length n backed by an aligned slice.
//
// Arrays are created by the allocation functions in alloc.go: Zeroed1D,
// Scratch1D, or Uninit1D followed by AssumeInit. The length never changes.
type Array1D[T Numbers] struct {
	data []T
	n    int
}

// Array2D is a dense row-major m×n matrix backed by one aligned slice.
type Array2D[T Numbers] struct {
	data []T
	m, n int
}

// Array3D is a dense row-major m×n×p tensor backed by one aligned slice.
type Array3D[T Numbers] struct {
	data    []T
	m, n, p int
}

func newArray1D[T Numbers](n int) *Array1D[T] {
	return &Array1D[T]{data: alignedSlice[T](numElements(n), alignment), n: n}
}

func newArray2D[T Numbers](m, n int) *Array2D[T] {
	return &Array2D[T]{data: alignedSlice[T](numElements(m, n), alignment), m: m, n: n}
}

func newArray3D[T Numbers](m, n, p int) *Array3D[T] {
	return &Array3D[T]{data: alignedSlice[T](numElements(m, n, p), alignment), m: m, n: n, p: p}
}

func checkIndex(axis, i, extent int) {
	if uint(i) >= uint(extent) {
		panic(&IndexError{Axis: axis, Index: i, Extent: extent})
	}
}

// Len returns the number of elements.
func (a *Array1D[T]) Len() int { return a.n }

// Dims returns the shape as a fresh slice.
func (a *Array1D[T]) Dims() []int { return []int{a.n} }

// At returns a[i].
func (a *Array1D[T]) At(i int) T {
	if DebugChecks {
		checkIndex(0, i, a.n)
	}
	return a.data[i]
}

// Set assigns a[i] = v.
func (a *Array1D[T]) Set(i int, v T) {
	if DebugChecks {
		checkIndex(0, i, a.n)
	}
	a.data[i] = v
}

// Data returns the backing slice. Writes through it are visible in a.
func (a *Array1D[T]) Data() []T { return a.data }

// Footprint returns the size in bytes of the element storage rounded up to
// the allocation alignment.
func (a *Array1D[T]) Footprint() int { return AlignSize(len(a.data)*elemSize[T](), alignment) }

// Equal reports whether a and b have the same shape and elements.
func (a *Array1D[T]) Equal(b *Array1D[T]) bool {
	return a.n == b.n && equalData(a.data, b.data)
}

func (a *Array1D[T]) String() string {
	var sb strings.Builder
	writeRow(&sb, a.data)
	return sb.String()
}

// Len returns the number of elements.
func (a *Array2D[T]) Len() int { return len(a.data) }

// Dims returns the shape as a fresh slice.
func (a *Array2D[T]) Dims() []int { return []int{a.m, a.n} }

// Rows returns the first extent.
func (a *Array2D[T]) Rows() int { return a.m }

// Cols returns the second extent.
func (a *Array2D[T]) Cols() int { return a.n }

// At returns a[i][j].
func (a *Array2D[T]) At(i, j int) T {
	if DebugChecks {
		checkIndex(0, i, a.m)
		checkIndex(1, j, a.n)
	}
	return a.data[i*a.n+j]
}

// Set assigns a[i][j] = v.
func (a *Array2D[T]) Set(i, j int, v T) {
	if DebugChecks {
		checkIndex(0, i, a.m)
		checkIndex(1, j, a.n)
	}
	a.data[i*a.n+j] = v
}

// Row returns row i as a slice of length Cols() aliasing the array.
// Kernels use rows in hot loops so the bound check is hoisted per row.
func (a *Array2D[T]) Row(i int) []T {
	if DebugChecks {
		checkIndex(0, i, a.m)
	}
	off := i * a.n
	return a.data[off : off+a.n : off+a.n]
}

// Data returns the row-major backing slice.
func (a *Array2D[T]) Data() []T { return a.data }

// Footprint returns the size in bytes of the element storage rounded up to
// the allocation alignment.
func (a *Array2D[T]) Footprint() int { return AlignSize(len(a.data)*elemSize[T](), alignment) }

// CopyFrom copies every element of src into a. Shapes must match.
func (a *Array2D[T]) CopyFrom(src *Array2D[T]) {
	if a.m != src.m || a.n != src.n {
		panic(fmt.Sprintf("poly: CopyFrom shape mismatch %dx%d vs %dx%d", a.m, a.n, src.m, src.n))
	}
	copy(a.data, src.data)
}

// Equal reports whether a and b have the same shape and elements.
func (a *Array2D[T]) Equal(b *Array2D[T]) bool {
	return a.m == b.m && a.n == b.n && equalData(a.data, b.data)
}

func (a *Array2D[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range a.m {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeRow(&sb, a.Row(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len returns the number of elements.
func (a *Array3D[T]) Len() int { return len(a.data) }

// Dims returns the shape as a fresh slice.
func (a *Array3D[T]) Dims() []int { return []int{a.m, a.n, a.p} }

// At returns a[i][j][k].
func (a *Array3D[T]) At(i, j, k int) T {
	if DebugChecks {
		checkIndex(0, i, a.m)
		checkIndex(1, j, a.n)
		checkIndex(2, k, a.p)
	}
	return a.data[(i*a.n+j)*a.p+k]
}

// Set assigns a[i][j][k] = v.
func (a *Array3D[T]) Set(i, j, k int, v T) {
	if DebugChecks {
		checkIndex(0, i, a.m)
		checkIndex(1, j, a.n)
		checkIndex(2, k, a.p)
	}
	a.data[(i*a.n+j)*a.p+k] = v
}

// Row returns the innermost row a[i][j] as a slice of length p.
func (a *Array3D[T]) Row(i, j int) []T {
	if DebugChecks {
		checkIndex(0, i, a.m)
		checkIndex(1, j, a.n)
	}
	off := (i*a.n + j) * a.p
	return a.data[off : off+a.p : off+a.p]
}

// Data returns the row-major backing slice.
func (a *Array3D[T]) Data() []T { return a.data }

// Footprint returns the size in bytes of the element storage rounded up to
// the allocation alignment.
func (a *Array3D[T]) Footprint() int { return AlignSize(len(a.data)*elemSize[T](), alignment) }

// Equal reports whether a and b have the same shape and elements.
func (a *Array3D[T]) Equal(b *Array3D[T]) bool {
	return a.m == b.m && a.n == b.n && a.p == b.p && equalData(a.data, b.data)
}

func (a *Array3D[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range a.m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j := range a.n {
			if j > 0 {
				sb.WriteString(", ")
			}
			writeRow(&sb, a.Row(i, j))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

func equalData[T Numbers](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeRow[T Numbers](sb *strings.Builder, row []T) {
	sb.WriteByte('[')
	for i, v := range row {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, v)
	}
	sb.WriteByte(']')
}
