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

// Command polybench runs the PolyBench kernels and reports their timings.
//
// Usage:
//
//	polybench list --dataset large
//	polybench run gemm lu --dataset medium --precision f32
//	polybench run gemm --dims 500,600,700 --repeat 5
//	polybench run --group stencils --dump stencils.safetensors
//	polybench run --all
//	polybench verify
//	polybench info
//
// Every run prints one line "kernel | dims | seconds" to stdout. A failing
// run is logged to stderr, the remaining runs still execute, and the
// command exits with a non-zero status.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
