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

// Package linalg provides the PolyBench linear-algebra kernels: 2mm, 3mm,
// atax, bicg, doitgen and mvt.
//
// The layout mirrors package blas: InitX generates inputs, X computes in
// place and BenchX times X with a poly.Harness. Intermediate matrices such
// as the tmp product of 2mm are allocated by BenchX before the timed region.
package linalg
