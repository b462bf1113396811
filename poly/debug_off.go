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

//go:build !polydebug

package poly

// DebugChecks reports whether per-axis index checks and pending-array
// completeness tracking are compiled in. Enable with -tags polydebug.
//
// Release builds only rely on Go's bound check of the flat backing slice,
// so an index past one axis but inside the allocation reads a neighbouring
// cell instead of failing.
const DebugChecks = false
