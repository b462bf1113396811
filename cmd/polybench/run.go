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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-polybench/poly"
	"github.com/ajroetker/go-polybench/poly/contrib/catalog"
	"github.com/ajroetker/go-polybench/poly/contrib/dump"
)

type runOptions struct {
	dataset     string
	dims        []int
	precision   string
	flushBytes  int
	repeat      int
	dumpPath    string
	printResult bool
	all         bool
	groups      []string
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [kernel...]",
		Short: "Time kernels and print one report line per run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKernels(cmd.OutOrStdout(), a.logger, o, args)
		},
	}
	addRunFlags(cmd.Flags(), o)
	return cmd
}

func addRunFlags(flags *pflag.FlagSet, o *runOptions) {
	flags.StringVarP(&o.dataset, "dataset", "d", "large", "problem-size preset: mini, small, medium, large or extralarge")
	flags.IntSliceVar(&o.dims, "dims", nil, "explicit sizes, e.g. 500,600,700 (a single kernel only)")
	flags.StringVarP(&o.precision, "precision", "p", "f64", "element type: f32 or f64")
	flags.IntVar(&o.flushBytes, "flush-bytes", 0, "cache-eviction buffer size in bytes; 0 detects it, -1 disables the flush")
	flags.IntVarP(&o.repeat, "repeat", "r", 1, "number of timed runs per kernel")
	flags.StringVar(&o.dumpPath, "dump", "", "write the consumed results to this safetensors file")
	flags.BoolVar(&o.printResult, "print-result", false, "log a summary of every consumed result")
	flags.BoolVar(&o.all, "all", false, "run every kernel")
	flags.StringSliceVarP(&o.groups, "group", "g", nil, "run every kernel of these groups")
}

// selectKernels resolves the kernel names and groups of a run command, in
// catalog order and without duplicates.
func selectKernels(o *runOptions, args []string) ([]*catalog.Kernel, error) {
	if o.all {
		return catalog.All(), nil
	}
	picked := make(map[*catalog.Kernel]bool)
	for _, name := range args {
		k, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		picked[k] = true
	}
	groups := catalog.ByGroup()
	for _, g := range o.groups {
		ks, ok := groups[g]
		if !ok {
			return nil, fmt.Errorf("unknown group %q (want one of %v)", g, catalog.Groups())
		}
		for _, k := range ks {
			picked[k] = true
		}
	}
	if len(picked) == 0 {
		return nil, errors.New("no kernels selected: name kernels or use --group or --all")
	}
	return lo.Filter(catalog.All(), func(k *catalog.Kernel, _ int) bool { return picked[k] }), nil
}

func runKernels(stdout io.Writer, logger *slog.Logger, o *runOptions, args []string) error {
	kernels, err := selectKernels(o, args)
	if err != nil {
		return err
	}
	dataset, err := catalog.ParseDataset(o.dataset)
	if err != nil {
		return err
	}
	prec, err := catalog.ParsePrecision(o.precision)
	if err != nil {
		return err
	}
	if len(o.dims) > 0 && len(kernels) != 1 {
		return fmt.Errorf("--dims applies to a single kernel, got %d", len(kernels))
	}
	if o.repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1, got %d", o.repeat)
	}

	var rec *dump.Recorder
	if o.dumpPath != "" {
		rec = dump.New()
	}

	runs, failures := 0, 0
	for _, k := range kernels {
		dims := k.Size(dataset)
		if len(o.dims) > 0 {
			dims = o.dims
		}
		h := &poly.Harness{FlushBytes: o.flushBytes, Logger: logger.With("kernel", k.Name)}
		h.Observe = observer(logger, o, rec, dump.Run{
			Kernel:    k.Name,
			Dims:      dims,
			Precision: prec.String(),
			Dataset:   dataset.String(),
		})
		for range o.repeat {
			runs++
			res, err := catalog.Run(k, dims, prec, h)
			if err != nil {
				failures++
				logger.Error("run failed", "kernel", k.Name, "dims", catalog.FormatDims(dims), "err", err)
				var runErr *catalog.RunError
				if errors.As(err, &runErr) {
					logger.Debug("panic stack", "kernel", k.Name, "stack", string(runErr.Stack))
				}
				break
			}
			fmt.Fprintln(stdout, res)
		}
	}

	if rec != nil {
		if err := writeDump(o.dumpPath, rec); err != nil {
			return err
		}
		logger.Info("wrote results", "path", o.dumpPath, "tensors", len(rec.Keys()))
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d runs failed", failures, runs)
	}
	return nil
}

// observer builds the Harness.Observe callback for one kernel, or nil when
// nothing consumes the results.
func observer(logger *slog.Logger, o *runOptions, rec *dump.Recorder, run dump.Run) func(string, any) {
	var record func(string, any)
	if rec != nil {
		record = rec.Observer(run)
	}
	if !o.printResult {
		return record
	}
	return func(name string, v any) {
		if record != nil {
			record(name, v)
		}
		if n, sum, ok := summarize(v); ok {
			logger.Info("result", "kernel", run.Kernel, "name", name, "len", n, "sum", sum)
		}
	}
}

// summarize returns the element count and sum of a consumed array.
func summarize(v any) (n int, sum float64, ok bool) {
	switch a := v.(type) {
	case *poly.Array1D[float32]:
		return a.Len(), float64(lo.Sum(a.Data())), true
	case *poly.Array2D[float32]:
		return a.Len(), float64(lo.Sum(a.Data())), true
	case *poly.Array3D[float32]:
		return a.Len(), float64(lo.Sum(a.Data())), true
	case *poly.Array1D[float64]:
		return a.Len(), lo.Sum(a.Data()), true
	case *poly.Array2D[float64]:
		return a.Len(), lo.Sum(a.Data()), true
	case *poly.Array3D[float64]:
		return a.Len(), lo.Sum(a.Data()), true
	}
	return 0, 0, false
}

func writeDump(path string, rec *dump.Recorder) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = rec.WriteTo(f)
	return err
}
