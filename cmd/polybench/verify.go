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
	"log/slog"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-polybench/poly/contrib/catalog"
	"github.com/ajroetker/go-polybench/poly/contrib/verify"
	"github.com/ajroetker/go-polybench/poly/contrib/workerpool"
)

func newVerifyCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "verify [kernel...]",
		Short: "Cross-check float64 kernels against gonum reference results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.OutOrStdout(), a.logger, workers, args)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "number of concurrent checks; 0 uses GOMAXPROCS")
	return cmd
}

func runVerify(w io.Writer, logger *slog.Logger, workers int, names []string) error {
	checks := verify.Checks()
	if len(names) > 0 {
		byName := lo.KeyBy(checks, func(c verify.Check) string { return c.Name })
		var picked []verify.Check
		for _, name := range names {
			k, err := catalog.Lookup(name)
			if err != nil {
				return err
			}
			c, ok := byName[k.Name]
			if !ok {
				return fmt.Errorf("no check for kernel %q", k.Name)
			}
			picked = append(picked, c)
		}
		checks = picked
	}

	pool := workerpool.New(workers)
	defer pool.Close()
	logger.Debug("running checks", "checks", len(checks), "workers", pool.NumWorkers())

	failed := 0
	for _, o := range verify.RunAll(pool, checks) {
		if o.Passed() {
			fmt.Fprintf(w, "PASS %s\n", o.Name)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL %s: %v\n", o.Name, o.Err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}
