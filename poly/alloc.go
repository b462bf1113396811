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

import "fmt"

// This file implements the allocation lifecycle of arrays:
//
//	Uninit* (pending, write-only) -> generator writes every cell -> AssumeInit -> ready array
//
// Zeroed* and Scratch* skip the pending state.

// written tracks which cells of a pending array were set. It is only
// allocated when DebugChecks is on.
type written struct {
	bits  []uint64
	count int
}

func newWritten(n int) *written {
	if !DebugChecks {
		return nil
	}
	return &written{bits: make([]uint64, (n+63)/64)}
}

func (w *written) mark(idx int) {
	if w == nil {
		return
	}
	word, bit := idx/64, uint(idx%64)
	if w.bits[word]&(1<<bit) == 0 {
		w.bits[word] |= 1 << bit
		w.count++
	}
}

func (w *written) check(n int) {
	if w == nil || w.count == n {
		return
	}
	panic(fmt.Errorf("%w: %d of %d cells written", ErrIncomplete, w.count, n))
}

// Pending1D is an owned vector whose contents are not yet valid.
// It exposes writes only; AssumeInit is the single transition to Array1D.
type Pending1D[T Numbers] struct {
	arr *Array1D[T]
	wr  *written
}

// Pending2D is an owned matrix whose contents are not yet valid.
// It exposes writes only; AssumeInit is the single transition to Array2D.
type Pending2D[T Numbers] struct {
	arr *Array2D[T]
	wr  *written
}

// Pending3D is an owned tensor whose contents are not yet valid.
// It exposes writes only; AssumeInit is the single transition to Array3D.
type Pending3D[T Numbers] struct {
	arr *Array3D[T]
	wr  *written
}

// Uninit1D reserves an n-element vector in the pending state.
//
// Precondition: every element must be written before AssumeInit. The Go
// runtime hands out zeroed memory, but callers must not rely on it: polydebug
// builds panic in AssumeInit if any cell was skipped. Use Zeroed1D when a
// generator only fills part of the array.
func Uninit1D[T Numbers](n int) *Pending1D[T] {
	arr := newArray1D[T](n)
	return &Pending1D[T]{arr: arr, wr: newWritten(len(arr.data))}
}

// Uninit2D reserves an m×n matrix in the pending state. See Uninit1D.
func Uninit2D[T Numbers](m, n int) *Pending2D[T] {
	arr := newArray2D[T](m, n)
	return &Pending2D[T]{arr: arr, wr: newWritten(len(arr.data))}
}

// Uninit3D reserves an m×n×p tensor in the pending state. See Uninit1D.
func Uninit3D[T Numbers](m, n, p int) *Pending3D[T] {
	arr := newArray3D[T](m, n, p)
	return &Pending3D[T]{arr: arr, wr: newWritten(len(arr.data))}
}

// Zeroed1D returns a ready vector with every element equal to zero.
func Zeroed1D[T Numbers](n int) *Array1D[T] { return newArray1D[T](n) }

// Zeroed2D returns a ready matrix with every element equal to zero.
func Zeroed2D[T Numbers](m, n int) *Array2D[T] { return newArray2D[T](m, n) }

// Zeroed3D returns a ready tensor with every element equal to zero.
func Zeroed3D[T Numbers](m, n, p int) *Array3D[T] { return newArray3D[T](m, n, p) }

// Scratch1D returns a vector for kernel outputs and scratch state. Its
// contents are unspecified: the kernel must write each cell before reading
// it.
func Scratch1D[T Numbers](n int) *Array1D[T] { return newArray1D[T](n) }

// Scratch2D returns a matrix for kernel outputs and scratch state.
// See Scratch1D.
func Scratch2D[T Numbers](m, n int) *Array2D[T] { return newArray2D[T](m, n) }

// Scratch3D returns a tensor for kernel outputs and scratch state.
// See Scratch1D.
func Scratch3D[T Numbers](m, n, p int) *Array3D[T] { return newArray3D[T](m, n, p) }

// Len returns the number of elements.
func (p *Pending1D[T]) Len() int { return p.live().n }

// Set writes element i.
func (p *Pending1D[T]) Set(i int, v T) {
	arr := p.live()
	checkIndex(0, i, arr.n)
	arr.data[i] = v
	p.wr.mark(i)
}

// Fill writes every element with fn(i).
func (p *Pending1D[T]) Fill(fn func(i int) T) {
	arr := p.live()
	for i := range arr.data {
		arr.data[i] = fn(i)
		p.wr.mark(i)
	}
}

// AssumeInit asserts that every element has been written and returns the
// ready array. The handle cannot be used afterwards.
func (p *Pending1D[T]) AssumeInit() *Array1D[T] {
	arr := p.live()
	p.wr.check(len(arr.data))
	p.arr, p.wr = nil, nil
	return arr
}

func (p *Pending1D[T]) live() *Array1D[T] {
	if p.arr == nil {
		panic(ErrConsumed)
	}
	return p.arr
}

// Dims returns the shape as a fresh slice.
func (p *Pending2D[T]) Dims() []int { return p.live().Dims() }

// Set writes element (i, j).
func (p *Pending2D[T]) Set(i, j int, v T) {
	arr := p.live()
	checkIndex(0, i, arr.m)
	checkIndex(1, j, arr.n)
	idx := i*arr.n + j
	arr.data[idx] = v
	p.wr.mark(idx)
}

// Fill writes every element with fn(i, j) in row-major order.
func (p *Pending2D[T]) Fill(fn func(i, j int) T) {
	arr := p.live()
	for i := range arr.m {
		row := arr.data[i*arr.n : (i+1)*arr.n]
		for j := range row {
			row[j] = fn(i, j)
			p.wr.mark(i*arr.n + j)
		}
	}
}

// AssumeInit asserts that every element has been written and returns the
// ready array. The handle cannot be used afterwards.
func (p *Pending2D[T]) AssumeInit() *Array2D[T] {
	arr := p.live()
	p.wr.check(len(arr.data))
	p.arr, p.wr = nil, nil
	return arr
}

func (p *Pending2D[T]) live() *Array2D[T] {
	if p.arr == nil {
		panic(ErrConsumed)
	}
	return p.arr
}

// Dims returns the shape as a fresh slice.
func (p *Pending3D[T]) Dims() []int { return p.live().Dims() }

// Set writes element (i, j, k).
func (p *Pending3D[T]) Set(i, j, k int, v T) {
	arr := p.live()
	checkIndex(0, i, arr.m)
	checkIndex(1, j, arr.n)
	checkIndex(2, k, arr.p)
	idx := (i*arr.n+j)*arr.p + k
	arr.data[idx] = v
	p.wr.mark(idx)
}

// Fill writes every element with fn(i, j, k) in row-major order.
func (p *Pending3D[T]) Fill(fn func(i, j, k int) T) {
	arr := p.live()
	idx := 0
	for i := range arr.m {
		for j := range arr.n {
			for k := range arr.p {
				arr.data[idx] = fn(i, j, k)
				p.wr.mark(idx)
				idx++
			}
		}
	}
}

// AssumeInit asserts that every element has been written and returns the
// ready array. The handle cannot be used afterwards.
func (p *Pending3D[T]) AssumeInit() *Array3D[T] {
	arr := p.live()
	p.wr.check(len(arr.data))
	p.arr, p.wr = nil, nil
	return arr
}

func (p *Pending3D[T]) live() *Array3D[T] {
	if p.arr == nil {
		panic(ErrConsumed)
	}
	return p.arr
}
