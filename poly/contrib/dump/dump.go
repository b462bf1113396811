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

// Package dump records the arrays a benchmark consumes and writes them as a
// safetensors file, so results of different builds or implementations can
// be compared offline.
//
// A Recorder is wired into a run through poly.Harness.Observe:
//
//	rec := dump.New()
//	h := &poly.Harness{Observe: rec.Observer(dump.Run{Kernel: "gemm", Dims: dims})}
//	...
//	_, err := rec.WriteTo(f)
package dump

import (
	"encoding/binary"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/nlpodyssey/safetensors"

	"github.com/ajroetker/go-polybench/poly"
)

// Run describes one benchmark invocation. Its fields are stored in the file
// metadata under "<kernel>.<field>".
type Run struct {
	Kernel    string
	Dims      []int
	Precision string
	Dataset   string
}

// Recorder accumulates tensors keyed "<kernel>/<name>". It is safe for
// concurrent use. A later observation under the same key replaces the
// earlier one.
type Recorder struct {
	mu      sync.Mutex
	tensors map[string]safetensors.TensorView
	meta    map[string]string
	err     error
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{
		tensors: make(map[string]safetensors.TensorView),
		meta:    make(map[string]string),
	}
}

// Observer returns a callback for poly.Harness.Observe that records every
// consumed array under run.Kernel.
func (r *Recorder) Observer(run Run) func(name string, v any) {
	r.mu.Lock()
	r.setMeta(run)
	r.mu.Unlock()
	return func(name string, v any) {
		r.Observe(run.Kernel+"/"+name, v)
	}
}

func (r *Recorder) setMeta(run Run) {
	dims := make([]string, len(run.Dims))
	for i, d := range run.Dims {
		dims[i] = strconv.Itoa(d)
	}
	r.meta[run.Kernel+".dims"] = strings.Join(dims, ",")
	if run.Precision != "" {
		r.meta[run.Kernel+".precision"] = run.Precision
	}
	if run.Dataset != "" {
		r.meta[run.Kernel+".dataset"] = run.Dataset
	}
}

// Observe records v under key. Supported values are the float32 and float64
// arrays of package poly; anything else makes WriteTo fail.
func (r *Recorder) Observe(key string, v any) {
	view, err := toView(v)
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("dump: %s: %w", key, err)
		}
		return
	}
	r.tensors[key] = view
}

// Keys returns the recorded keys in sorted order.
func (r *Recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.tensors))
}

// WriteTo serializes every recorded tensor, together with the run metadata,
// in safetensors format.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	cw := &countingWriter{w: w}
	if err := safetensors.SerializeToWriter(r.tensors, r.meta, cw); err != nil {
		return cw.n, fmt.Errorf("dump: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func toView(v any) (safetensors.TensorView, error) {
	switch a := v.(type) {
	case *poly.Array1D[float32]:
		return view(safetensors.F32, a.Dims(), a.Data())
	case *poly.Array2D[float32]:
		return view(safetensors.F32, a.Dims(), a.Data())
	case *poly.Array3D[float32]:
		return view(safetensors.F32, a.Dims(), a.Data())
	case *poly.Array1D[float64]:
		return view(safetensors.F64, a.Dims(), a.Data())
	case *poly.Array2D[float64]:
		return view(safetensors.F64, a.Dims(), a.Data())
	case *poly.Array3D[float64]:
		return view(safetensors.F64, a.Dims(), a.Data())
	}
	return safetensors.TensorView{}, fmt.Errorf("unsupported value of type %T", v)
}

func view[T float32 | float64](dt safetensors.DType, dims []int, data []T) (safetensors.TensorView, error) {
	shape := make([]uint64, len(dims))
	for i, d := range dims {
		shape[i] = uint64(d)
	}
	return safetensors.NewTensorView(dt, shape, encode(data))
}

// encode copies data into little-endian bytes.
func encode[T float32 | float64](data []T) []byte {
	var zero T
	switch any(zero).(type) {
	case float32:
		buf := make([]byte, 0, 4*len(data))
		for _, v := range data {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v)))
		}
		return buf
	default:
		buf := make([]byte, 0, 8*len(data))
		for _, v := range data {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(v)))
		}
		return buf
	}
}
