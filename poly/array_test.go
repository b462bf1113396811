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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignment(t *testing.T) {
	t.Logf("Vector: %s (%d bytes), alignment %d", VectorName(), VectorWidth(), Alignment())
	assert.GreaterOrEqual(t, Alignment(), MinAlignment)
	assert.GreaterOrEqual(t, Alignment(), VectorWidth())
	assert.Zero(t, Alignment()&(Alignment()-1), "alignment must be a power of two")
}

func TestShapeInvariant(t *testing.T) {
	shapes := [][]int{{1}, {7}, {33}, {1, 1}, {3, 5}, {17, 31}, {2, 3, 4}, {5, 1, 9}}
	for _, dims := range shapes {
		var data []float64
		var gotDims []int
		var footprint int
		switch len(dims) {
		case 1:
			a := Zeroed1D[float64](dims[0])
			data, gotDims, footprint = a.Data(), a.Dims(), a.Footprint()
		case 2:
			a := Zeroed2D[float64](dims[0], dims[1])
			data, gotDims, footprint = a.Data(), a.Dims(), a.Footprint()
		case 3:
			a := Zeroed3D[float64](dims[0], dims[1], dims[2])
			data, gotDims, footprint = a.Data(), a.Dims(), a.Footprint()
		}
		want := 1
		for _, d := range dims {
			want *= d
		}
		assert.Equal(t, dims, gotDims)
		assert.Len(t, data, want, "dims %v", dims)
		assert.Equal(t, AlignSize(want*8, Alignment()), footprint, "dims %v", dims)
		assert.True(t, IsAligned(baseAddr(data), Alignment()), "dims %v base %#x", dims, baseAddr(data))
	}
}

func TestAlignedSliceSmallElements(t *testing.T) {
	for n := 1; n < 70; n++ {
		s := alignedSlice[int8](n, 64)
		require.Len(t, s, n)
		require.Equal(t, n, cap(s))
		require.True(t, IsAligned(baseAddr(s), 64), "n=%d", n)
	}
}

func TestInvalidShapePanics(t *testing.T) {
	assert.PanicsWithError(t, "poly: invalid shape: extent 0 on axis 1", func() {
		Zeroed2D[float32](3, 0)
	})
	assert.Panics(t, func() { Zeroed1D[float32](-1) })
	assert.Panics(t, func() { Zeroed3D[float64](maxInt/2, 4, 4) })
}

func TestArray2DIndexing(t *testing.T) {
	a := Zeroed2D[float64](3, 4)
	for i := range 3 {
		for j := range 4 {
			a.Set(i, j, float64(10*i+j))
		}
	}
	assert.Equal(t, 23.0, a.At(2, 3))
	assert.Equal(t, []float64{10, 11, 12, 13}, a.Row(1))
	assert.Equal(t, 3, a.Rows())
	assert.Equal(t, 4, a.Cols())

	// Rows alias the array.
	a.Row(0)[2] = -1
	assert.Equal(t, -1.0, a.At(0, 2))
	assert.Equal(t, "[[0, 1, -1, 3], [10, 11, 12, 13], [20, 21, 22, 23]]", a.String())
}

func TestArray3DIndexing(t *testing.T) {
	a := Zeroed3D[float32](2, 3, 4)
	a.Set(1, 2, 3, 5)
	assert.Equal(t, float32(5), a.At(1, 2, 3))
	assert.Equal(t, float32(5), a.Data()[(1*3+2)*4+3])
	assert.Equal(t, []float32{0, 0, 0, 5}, a.Row(1, 2))
}

func TestArrayEqual(t *testing.T) {
	a := Zeroed1D[float64](4)
	b := Zeroed1D[float64](4)
	assert.True(t, a.Equal(b))
	b.Set(3, 1)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(Zeroed1D[float64](5)))
	assert.Equal(t, "[0, 0, 0, 0]", a.String())

	m := Zeroed2D[int8](2, 2)
	assert.False(t, m.Equal(Zeroed2D[int8](1, 4)), "same length, different shape")
}

func TestCopyFromShapeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Zeroed2D[float64](2, 3).CopyFrom(Zeroed2D[float64](3, 2))
	})
}
