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

// Package catalog registers every kernel of the suite under its PolyBench
// name, with its size parameters and dataset presets, and runs them by name
// at a precision chosen at run time.
//
// Run isolates each benchmark: a panic inside a kernel (a contract
// violation such as a bad shape) is returned as a *RunError instead of
// crashing the process, so a driver can continue with the next run.
package catalog

import (
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-polybench/poly"
)

// Groups in registration order.
const (
	GroupDatamining = "datamining"
	GroupBLAS       = "blas"
	GroupLinalg     = "linalg"
	GroupSolvers    = "solvers"
	GroupMedley     = "medley"
	GroupStencils   = "stencils"
)

// ErrUnknownKernel is returned by Lookup for a name that is not registered.
var ErrUnknownKernel = errors.New("catalog: unknown kernel")

// ErrArity is returned by Run when the number of sizes does not match the
// kernel's parameters.
var ErrArity = errors.New("catalog: wrong number of dimensions")

// runner adapts a typed Bench function to a dims slice.
type runner func(h *poly.Harness, dims []int) (time.Duration, error)

// Kernel describes one registered benchmark.
type Kernel struct {
	// Name is the PolyBench name, e.g. "gemm" or "fdtd-2d".
	Name string
	// Group is one of the Group* constants.
	Group string
	// Dims names the size parameters in the order Run expects them.
	Dims []string
	// Presets maps each dataset to its sizes.
	Presets map[Dataset][]int

	f32, f64 runner
}

// Size returns a copy of the preset sizes for d.
func (k *Kernel) Size(d Dataset) []int {
	return slices.Clone(k.Presets[d])
}

func (k *Kernel) runner(p Precision) runner {
	if p == F32 {
		return k.f32
	}
	return k.f64
}

var (
	registry []*Kernel
	byName   map[string]*Kernel
)

func register(kernels ...*Kernel) {
	registry = append(registry, kernels...)
	byName = lo.KeyBy(registry, func(k *Kernel) string { return k.Name })
}

// All returns every kernel in registration order.
func All() []*Kernel {
	return slices.Clone(registry)
}

// Names returns the names of every kernel in registration order.
func Names() []string {
	return lo.Map(registry, func(k *Kernel, _ int) string { return k.Name })
}

// Groups returns the group names in registration order.
func Groups() []string {
	return lo.Uniq(lo.Map(registry, func(k *Kernel, _ int) string { return k.Group }))
}

// ByGroup returns the kernels of every group, each list in registration
// order.
func ByGroup() map[string][]*Kernel {
	return lo.GroupBy(registry, func(k *Kernel) string { return k.Group })
}

// Lookup finds a kernel by name. Names are case-insensitive and "_" may be
// used in place of "-".
func Lookup(name string) (*Kernel, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if k, ok := byName[key]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKernel, name)
}

// Result is the outcome of one successful Run.
type Result struct {
	Kernel    string
	Dims      []int
	Precision Precision
	Elapsed   time.Duration
}

// String renders the report line: name, size tuple and elapsed seconds.
func (r Result) String() string {
	return fmt.Sprintf("%-14s | %-30s | %.7f s", r.Kernel, FormatDims(r.Dims), r.Elapsed.Seconds())
}

// FormatDims renders sizes as "n" for a single parameter and
// "(a, b, c)" otherwise.
func FormatDims(dims []int) string {
	parts := lo.Map(dims, func(d int, _ int) string { return strconv.Itoa(d) })
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// RunError reports a kernel that panicked during Run.
type RunError struct {
	Kernel string
	Dims   []int
	Value  any
	Stack  []byte
}

func (e *RunError) Error() string {
	return fmt.Sprintf("catalog: %s %s panicked: %v", e.Kernel, FormatDims(e.Dims), e.Value)
}

// Unwrap returns the panic value when it is an error, so errors.Is works
// against sentinels such as poly.ErrInvalidShape.
func (e *RunError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Run validates dims against k and runs its benchmark once with h.
func Run(k *Kernel, dims []int, prec Precision, h *poly.Harness) (res Result, err error) {
	if len(dims) != len(k.Dims) {
		return Result{}, fmt.Errorf("%w: %s takes %d (%s), got %d",
			ErrArity, k.Name, len(k.Dims), strings.Join(k.Dims, ", "), len(dims))
	}
	if i := slices.IndexFunc(dims, func(d int) bool { return d <= 0 }); i >= 0 {
		return Result{}, fmt.Errorf("%w: %s=%d for %s", poly.ErrInvalidShape, k.Dims[i], dims[i], k.Name)
	}
	dims = slices.Clone(dims)

	defer func() {
		if r := recover(); r != nil {
			err = &RunError{Kernel: k.Name, Dims: dims, Value: r, Stack: debug.Stack()}
		}
	}()

	elapsed, err := k.runner(prec)(h, dims)
	if err != nil {
		return Result{}, fmt.Errorf("catalog: %s %s: %w", k.Name, FormatDims(dims), err)
	}
	return Result{Kernel: k.Name, Dims: dims, Precision: prec, Elapsed: elapsed}, nil
}
