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
	"math/bits"
	"unsafe"
)

// IsAligned reports whether addr is a multiple of align.
func IsAligned(addr uintptr, align int) bool {
	return addr%uintptr(align) == 0
}

// AlignSize rounds size up to the next multiple of align, which must be a
// power of two.
func AlignSize(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// elemSize returns sizeof(T).
func elemSize[T Numbers]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// numElements validates extents and returns their product.
func numElements(dims ...int) int {
	n := 1
	for axis, d := range dims {
		if d <= 0 {
			panic(fmt.Errorf("%w: extent %d on axis %d", ErrInvalidShape, d, axis))
		}
		hi, lo := bits.Mul(uint(n), uint(d))
		if hi != 0 || lo > uint(maxInt) {
			panic(fmt.Errorf("%w: %v elements overflow int", ErrInvalidShape, dims))
		}
		n = int(lo)
	}
	return n
}

const maxInt = int(^uint(0) >> 1)

// alignedSlice allocates n elements whose first element sits on an align
// boundary. The backing array is over-allocated by up to align bytes and
// resliced at the first aligned element.
func alignedSlice[T Numbers](n, align int) []T {
	size := elemSize[T]()
	pad := (align + size - 1) / size
	buf := make([]T, n+pad)

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	offset := 0
	if mod := addr % uintptr(align); mod != 0 {
		// Go aligns T-allocations to sizeof(T), so the gap is a whole
		// number of elements.
		offset = int((uintptr(align) - mod) / uintptr(size))
	}
	return buf[offset : offset+n : offset+n]
}

// baseAddr returns the address of the first element of s.
func baseAddr[T Numbers](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}
