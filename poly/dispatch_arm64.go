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

//go:build arm64

package poly

import "golang.org/x/sys/cpu"

func initDispatch() {
	// ASIMD is part of ARMv8-A, SVE lengths are implementation defined so
	// only the 128-bit NEON width is assumed.
	if cpu.ARM64.HasASIMD {
		currentWidth = 16
		currentName = "neon"
		if cpu.ARM64.HasSVE {
			currentName = "sve"
		}
		return
	}
	currentWidth = 16
	currentName = "scalar"
}
