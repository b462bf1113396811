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
	"math/bits"
	"os"
	"strconv"
)

const (
	// MinAlignment is the smallest alignment, in bytes, of any array base
	// address. It is wide enough for 256-bit vector loads.
	MinAlignment = 32

	// DefaultLLCFlushBytes is the size of the buffer touched before every
	// timed region. It is chosen to exceed the last-level cache of common
	// server and desktop parts.
	DefaultLLCFlushBytes = 32 * 1024 * 1024
)

// currentWidth is the widest SIMD register in bytes detected for this CPU.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the detected SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

var (
	alignment     int
	llcFlushBytes int
)

func init() {
	initDispatch()
	alignment = resolveAlignment(currentWidth, os.Getenv("POLY_ALIGN"))
	llcFlushBytes = resolveFlushBytes(os.Getenv("POLY_LLC_BYTES"))
}

// VectorWidth returns the widest SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func VectorWidth() int {
	return currentWidth
}

// VectorName returns a human-readable name for the detected SIMD level,
// such as "avx2", "neon" or "scalar".
func VectorName() string {
	return currentName
}

// Alignment returns the byte alignment of every array allocated by this
// package. It is max(MinAlignment, VectorWidth()) unless POLY_ALIGN holds a
// larger power of two.
func Alignment() int {
	return alignment
}

// LLCFlushBytes returns the default cache-eviction buffer size: the
// POLY_LLC_BYTES environment variable if it parses as a positive integer,
// DefaultLLCFlushBytes otherwise.
func LLCFlushBytes() int {
	return llcFlushBytes
}

func resolveAlignment(width int, env string) int {
	align := max(MinAlignment, width)
	if env == "" {
		return align
	}
	v, err := strconv.Atoi(env)
	if err != nil || v < MinAlignment || bits.OnesCount(uint(v)) != 1 {
		return align
	}
	return max(align, v)
}

func resolveFlushBytes(env string) int {
	if env == "" {
		return DefaultLLCFlushBytes
	}
	v, err := strconv.Atoi(env)
	if err != nil || v <= 0 {
		return DefaultLLCFlushBytes
	}
	return v
}
