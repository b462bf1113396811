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

package verify

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-polybench/poly"
	"github.com/ajroetker/go-polybench/poly/contrib/catalog"
	"github.com/ajroetker/go-polybench/poly/contrib/workerpool"
)

func TestChecksPass(t *testing.T) {
	for _, c := range Checks() {
		t.Run(c.Name, func(t *testing.T) {
			require.NoError(t, c.Run())
		})
	}
}

func TestCheckNamesUnique(t *testing.T) {
	names := lo.Map(Checks(), func(c Check, _ int) string { return c.Name })
	assert.Len(t, lo.Uniq(names), len(names))
	assert.Contains(t, names, "floyd-warshall")
	assert.Contains(t, names, "durbin")
	for _, name := range names {
		k, err := catalog.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, k.Name, name, "check names are canonical kernel names")
	}
}

func TestRunAll(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	bad := errors.New("bad")
	checks := append(Checks(),
		Check{Name: "failing", Run: func() error { return bad }},
		Check{Name: "panicking", Run: func() error { panic("boom") }},
	)
	outcomes := RunAll(pool, checks)
	require.Len(t, outcomes, len(checks))
	for i, o := range outcomes {
		assert.Equal(t, checks[i].Name, o.Name)
	}

	failed := lo.Filter(outcomes, func(o Outcome, _ int) bool { return !o.Passed() })
	require.Len(t, failed, 2)
	assert.ErrorIs(t, failed[0].Err, bad)
	assert.ErrorContains(t, failed[1].Err, "verify: panicking panicked: boom")
}

func TestRunAllClosedPool(t *testing.T) {
	pool := workerpool.New(2)
	pool.Close()
	outcomes := RunAll(pool, Checks()[:3])
	for _, o := range outcomes {
		assert.True(t, o.Passed(), o.Name)
	}
}

func TestCompare(t *testing.T) {
	require.NoError(t, compare("v", []float64{1, 1e6}, []float64{1 + 1e-12, 1e6 + 1e-4}, Tol))

	err := compare("v", []float64{1, 2}, []float64{1, 2.5}, Tol)
	require.ErrorIs(t, err, ErrMismatch)
	assert.EqualError(t, err, "verify: mismatch: v[1] = 2.5, want 2")

	err = compare("v", []float64{1}, nil, Tol)
	assert.ErrorContains(t, err, "v has 0 values, want 1")
}

func TestCompareMatrix(t *testing.T) {
	want := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	p := poly.Uninit2D[float64](2, 2)
	p.Fill(func(i, j int) float64 { return want.At(i, j) })
	got := p.AssumeInit()
	require.NoError(t, compareMatrix("A", want, got, 0, nil))

	got.Set(0, 1, -1)
	err := compareMatrix("A", want, got, Tol, nil)
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "A(0, 1) = -1, want 2")
	assert.NoError(t, compareMatrix("A", want, got, Tol, lower), "upper cells are ignored")

	err = compareMatrix("A", mat.NewDense(3, 2, nil), got, Tol, nil)
	assert.ErrorContains(t, err, "A is 2x2, want 3x2")
}
