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
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-polybench/poly"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected platform parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printInfo(cmd.OutOrStdout())
		},
	}
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "go:           %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "cpus:         %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "vector:       %s (%d bytes)\n", poly.VectorName(), poly.VectorWidth())
	fmt.Fprintf(w, "alignment:    %d bytes\n", poly.Alignment())
	fmt.Fprintf(w, "flush buffer: %d bytes\n", poly.LLCFlushBytes())
	fmt.Fprintf(w, "debug checks: %t\n", poly.DebugChecks)
}
