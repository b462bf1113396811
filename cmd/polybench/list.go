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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-polybench/poly/contrib/catalog"
)

func newListCmd() *cobra.Command {
	var dataset string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the kernels by group with their sizes for a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := catalog.ParseDataset(dataset)
			if err != nil {
				return err
			}
			listKernels(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "large", "problem-size preset whose sizes are shown")
	return cmd
}

func listKernels(w io.Writer, d catalog.Dataset) {
	groups := catalog.ByGroup()
	for _, g := range catalog.Groups() {
		fmt.Fprintf(w, "%s:\n", g)
		for _, k := range groups[g] {
			fmt.Fprintf(w, "  %-14s %-24s %s\n", k.Name, "("+strings.Join(k.Dims, ", ")+")", catalog.FormatDims(k.Size(d)))
		}
	}
}
