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
	"errors"
	"fmt"
)

var (
	// ErrNonMonotonic is returned by Run when the injected time source
	// reports an end sample smaller than the begin sample.
	ErrNonMonotonic = errors.New("poly: time source is not monotonic")

	// ErrOverflow is returned by Run when the elapsed tick count times the
	// unit does not fit a time.Duration.
	ErrOverflow = errors.New("poly: elapsed time overflows time.Duration")

	// ErrInvalidShape is the panic value (wrapped) for a non-positive extent
	// or an element count that overflows int.
	ErrInvalidShape = errors.New("poly: invalid shape")

	// ErrIncomplete is the panic value (wrapped) raised by AssumeInit in
	// polydebug builds when a generator left cells unwritten.
	ErrIncomplete = errors.New("poly: pending array not fully written")

	// ErrConsumed is the panic value (wrapped) for any use of a pending
	// handle after AssumeInit.
	ErrConsumed = errors.New("poly: pending handle already initialized")
)

// IndexError reports an out-of-range index along one axis. It is only
// raised in builds with the polydebug tag.
type IndexError struct {
	Axis   int
	Index  int
	Extent int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("poly: index %d out of range [0, %d) on axis %d", e.Index, e.Extent, e.Axis)
}
