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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nlpodyssey/safetensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-polybench/poly/contrib/catalog"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list", "--dataset", "mini")
	require.NoError(t, err)
	assert.Contains(t, out, "blas:\n")
	assert.Contains(t, out, "stencils:\n")
	assert.Regexp(t, `gemm +\(ni, nj, nk\) +\(20, 25, 30\)`, out)
	assert.Regexp(t, `floyd-warshall +\(n\) +60\n`, out)
}

func TestRunPreset(t *testing.T) {
	out, _, err := execute(t, "run", "gemm", "--dataset", "mini", "--flush-bytes", "-1")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 1)
	assert.Regexp(t, `^gemm +\| \(20, 25, 30\) +\| \d+\.\d{7} s$`, got[0])
}

func TestRunExplicitDimsAndRepeat(t *testing.T) {
	out, _, err := execute(t, "run", "trisolv", "--dims", "16", "--repeat", "3", "--flush-bytes", "-1", "-p", "f32")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 3)
	for _, line := range got {
		assert.True(t, strings.HasPrefix(line, "trisolv        | 16 "), line)
	}
}

func TestRunGroup(t *testing.T) {
	out, _, err := execute(t, "run", "-g", "stencils", "-d", "mini", "--flush-bytes", "-1")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 6)
	assert.True(t, strings.HasPrefix(got[0], "adi "))
	assert.True(t, strings.HasPrefix(got[5], "seidel-2d "))
}

func TestRunFailuresContinue(t *testing.T) {
	_, _, err := execute(t, "run", "gemm", "lu", "--dims", "4,4,4")
	assert.ErrorContains(t, err, "--dims applies to a single kernel")

	out, stderr, err := execute(t, "run", "gemm", "--dims", "4,4", "--flush-bytes", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 runs failed")
	assert.Contains(t, stderr, "run failed")
	assert.Empty(t, out)

	_, _, err = execute(t, "run", "fft")
	assert.ErrorContains(t, err, `unknown kernel "fft"`)

	_, _, err = execute(t, "run")
	assert.ErrorContains(t, err, "no kernels selected")

	_, _, err = execute(t, "run", "-g", "sparse")
	assert.ErrorContains(t, err, `unknown group "sparse"`)
}

func TestRunDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.safetensors")
	_, _, err := execute(t, "run", "trisolv", "bicg", "-d", "mini", "--flush-bytes", "-1", "--dump", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	st, err := safetensors.Deserialize(data)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bicg/s", "bicg/q", "trisolv/x"}, st.Names())
	x, ok := st.Tensor("trisolv/x")
	require.True(t, ok)
	assert.Equal(t, []uint64{40}, x.Shape())
	assert.Equal(t, safetensors.F64, x.DType())
}

func TestRunPrintResult(t *testing.T) {
	_, stderr, err := execute(t, "run", "mvt", "--dims", "8", "--flush-bytes", "-1", "--print-result", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"result"`)
	assert.Contains(t, stderr, `"name":"x1"`)
	assert.Contains(t, stderr, `"len":8`)
}

func TestVerify(t *testing.T) {
	out, _, err := execute(t, "verify", "gemm", "LU", "-j", "2")
	require.NoError(t, err)
	assert.Equal(t, "PASS gemm\nPASS lu\n", out)

	// Names resolve like run does.
	out, _, err = execute(t, "verify", " Floyd_Warshall", "durbin")
	require.NoError(t, err)
	assert.Equal(t, "PASS floyd-warshall\nPASS durbin\n", out)

	_, _, err = execute(t, "verify", "adi")
	assert.ErrorContains(t, err, `no check for kernel "adi"`)

	_, _, err = execute(t, "verify", "fft")
	assert.ErrorIs(t, err, catalog.ErrUnknownKernel)
}

func TestInfo(t *testing.T) {
	out, _, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "alignment:")
	assert.Contains(t, out, "flush buffer:")
}

func TestBadLogFormat(t *testing.T) {
	_, _, err := execute(t, "info", "--log-format", "xml")
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}
