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

// Package stencils provides the PolyBench stencil kernels: adi, fdtd-2d,
// heat-3d, jacobi-1d, jacobi-2d and seidel-2d.
//
// Every kernel takes the number of time steps as its first size. Sweeps
// cover the interior of the grid only: boundary cells keep their generated
// values unless the kernel assigns them explicitly (adi sets its boundary
// rows and columns to 1, fdtd-2d drives the first row of ey from fict).
package stencils
