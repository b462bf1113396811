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

package catalog

import (
	"time"

	"github.com/ajroetker/go-polybench/poly"
	"github.com/ajroetker/go-polybench/poly/contrib/blas"
	"github.com/ajroetker/go-polybench/poly/contrib/datamining"
	"github.com/ajroetker/go-polybench/poly/contrib/linalg"
	"github.com/ajroetker/go-polybench/poly/contrib/medley"
	"github.com/ajroetker/go-polybench/poly/contrib/solvers"
	"github.com/ajroetker/go-polybench/poly/contrib/stencils"
)

type (
	bench1 = func(*poly.Harness, int) (time.Duration, error)
	bench2 = func(*poly.Harness, int, int) (time.Duration, error)
	bench3 = func(*poly.Harness, int, int, int) (time.Duration, error)
	bench4 = func(*poly.Harness, int, int, int, int) (time.Duration, error)
	bench5 = func(*poly.Harness, int, int, int, int, int) (time.Duration, error)
)

func arity1(f bench1) runner {
	return func(h *poly.Harness, d []int) (time.Duration, error) { return f(h, d[0]) }
}

func arity2(f bench2) runner {
	return func(h *poly.Harness, d []int) (time.Duration, error) { return f(h, d[0], d[1]) }
}

func arity3(f bench3) runner {
	return func(h *poly.Harness, d []int) (time.Duration, error) { return f(h, d[0], d[1], d[2]) }
}

func arity4(f bench4) runner {
	return func(h *poly.Harness, d []int) (time.Duration, error) { return f(h, d[0], d[1], d[2], d[3]) }
}

func arity5(f bench5) runner {
	return func(h *poly.Harness, d []int) (time.Duration, error) {
		return f(h, d[0], d[1], d[2], d[3], d[4])
	}
}

// presets builds a Presets map from the five sizes, mini to extralarge.
func presets(mini, small, medium, large, extraLarge []int) map[Dataset][]int {
	return map[Dataset][]int{
		Mini:       mini,
		Small:      small,
		Medium:     medium,
		Large:      large,
		ExtraLarge: extraLarge,
	}
}

// square returns presets for kernels with a single size parameter.
func square(mini, small, medium, large, extraLarge int) map[Dataset][]int {
	return presets([]int{mini}, []int{small}, []int{medium}, []int{large}, []int{extraLarge})
}

func sizes(d ...int) []int { return d }

func init() {
	register(
		// Data mining. m observations of n attributes.
		&Kernel{
			Name:    "correlation",
			Group:   GroupDatamining,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(32, 28), sizes(100, 80), sizes(260, 240), sizes(1400, 1200), sizes(3000, 2600)),
			f32:     arity2(datamining.BenchCorrelation[float32]),
			f64:     arity2(datamining.BenchCorrelation[float64]),
		},
		&Kernel{
			Name:    "covariance",
			Group:   GroupDatamining,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(32, 28), sizes(100, 80), sizes(260, 240), sizes(1400, 1200), sizes(3000, 2600)),
			f32:     arity2(datamining.BenchCovariance[float32]),
			f64:     arity2(datamining.BenchCovariance[float64]),
		},

		// BLAS.
		&Kernel{
			Name:    "gemm",
			Group:   GroupBLAS,
			Dims:    []string{"ni", "nj", "nk"},
			Presets: presets(sizes(20, 25, 30), sizes(60, 70, 80), sizes(200, 220, 240), sizes(1000, 1100, 1200), sizes(2000, 2300, 2600)),
			f32:     arity3(blas.BenchGemm[float32]),
			f64:     arity3(blas.BenchGemm[float64]),
		},
		&Kernel{
			Name:    "gemver",
			Group:   GroupBLAS,
			Dims:    []string{"n"},
			Presets: square(40, 120, 400, 2000, 4000),
			f32:     arity1(blas.BenchGemver[float32]),
			f64:     arity1(blas.BenchGemver[float64]),
		},
		&Kernel{
			Name:    "gesummv",
			Group:   GroupBLAS,
			Dims:    []string{"n"},
			Presets: square(30, 90, 250, 1300, 2800),
			f32:     arity1(blas.BenchGesummv[float32]),
			f64:     arity1(blas.BenchGesummv[float64]),
		},
		&Kernel{
			Name:    "symm",
			Group:   GroupBLAS,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(20, 30), sizes(60, 80), sizes(200, 240), sizes(1000, 1200), sizes(2000, 2600)),
			f32:     arity2(blas.BenchSymm[float32]),
			f64:     arity2(blas.BenchSymm[float64]),
		},
		&Kernel{
			Name:    "syr2k",
			Group:   GroupBLAS,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(30, 20), sizes(80, 60), sizes(240, 200), sizes(1200, 1000), sizes(2600, 2000)),
			f32:     arity2(blas.BenchSyr2k[float32]),
			f64:     arity2(blas.BenchSyr2k[float64]),
		},
		&Kernel{
			Name:    "syrk",
			Group:   GroupBLAS,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(30, 20), sizes(80, 60), sizes(240, 200), sizes(1200, 1000), sizes(2600, 2000)),
			f32:     arity2(blas.BenchSyrk[float32]),
			f64:     arity2(blas.BenchSyrk[float64]),
		},
		&Kernel{
			Name:    "trmm",
			Group:   GroupBLAS,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(20, 30), sizes(60, 80), sizes(200, 240), sizes(1000, 1200), sizes(2000, 2600)),
			f32:     arity2(blas.BenchTrmm[float32]),
			f64:     arity2(blas.BenchTrmm[float64]),
		},

		// Linear-algebra kernels.
		&Kernel{
			Name:    "2mm",
			Group:   GroupLinalg,
			Dims:    []string{"ni", "nj", "nk", "nl"},
			Presets: presets(sizes(16, 18, 22, 24), sizes(40, 50, 70, 80), sizes(180, 190, 210, 220), sizes(800, 900, 1100, 1200), sizes(1600, 1800, 2200, 2400)),
			f32:     arity4(linalg.Bench2mm[float32]),
			f64:     arity4(linalg.Bench2mm[float64]),
		},
		&Kernel{
			Name:    "3mm",
			Group:   GroupLinalg,
			Dims:    []string{"ni", "nj", "nk", "nl", "nm"},
			Presets: presets(sizes(16, 18, 20, 22, 24), sizes(40, 50, 60, 70, 80), sizes(180, 190, 200, 210, 220), sizes(800, 900, 1000, 1100, 1200), sizes(1600, 1800, 2000, 2200, 2400)),
			f32:     arity5(linalg.Bench3mm[float32]),
			f64:     arity5(linalg.Bench3mm[float64]),
		},
		&Kernel{
			Name:    "atax",
			Group:   GroupLinalg,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(38, 42), sizes(116, 124), sizes(390, 410), sizes(1900, 2100), sizes(1800, 2200)),
			f32:     arity2(linalg.BenchAtax[float32]),
			f64:     arity2(linalg.BenchAtax[float64]),
		},
		&Kernel{
			Name:    "bicg",
			Group:   GroupLinalg,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(42, 38), sizes(124, 116), sizes(410, 390), sizes(2100, 1900), sizes(2200, 1800)),
			f32:     arity2(linalg.BenchBicg[float32]),
			f64:     arity2(linalg.BenchBicg[float64]),
		},
		&Kernel{
			Name:    "doitgen",
			Group:   GroupLinalg,
			Dims:    []string{"nr", "nq", "np"},
			Presets: presets(sizes(10, 8, 12), sizes(25, 20, 30), sizes(50, 40, 60), sizes(150, 140, 160), sizes(250, 220, 270)),
			f32:     arity3(linalg.BenchDoitgen[float32]),
			f64:     arity3(linalg.BenchDoitgen[float64]),
		},
		&Kernel{
			Name:    "mvt",
			Group:   GroupLinalg,
			Dims:    []string{"n"},
			Presets: square(40, 120, 400, 2000, 4000),
			f32:     arity1(linalg.BenchMvt[float32]),
			f64:     arity1(linalg.BenchMvt[float64]),
		},

		// Solvers.
		&Kernel{
			Name:    "cholesky",
			Group:   GroupSolvers,
			Dims:    []string{"n"},
			Presets: square(40, 120, 400, 2000, 4000),
			f32:     arity1(solvers.BenchCholesky[float32]),
			f64:     arity1(solvers.BenchCholesky[float64]),
		},
		&Kernel{
			Name:    "durbin",
			Group:   GroupSolvers,
			Dims:    []string{"n"},
			Presets: square(40, 120, 400, 2000, 4000),
			f32:     arity1(solvers.BenchDurbin[float32]),
			f64:     arity1(solvers.BenchDurbin[float64]),
		},
		&Kernel{
			Name:    "gramschmidt",
			Group:   GroupSolvers,
			Dims:    []string{"m", "n"},
			Presets: presets(sizes(20, 30), sizes(60, 80), sizes(200, 240), sizes(1000, 1200), sizes(2000, 2600)),
			f32:     arity2(solvers.BenchGramschmidt[float32]),
			f64:     arity2(solvers.BenchGramschmidt[float64]),
		},
		&Kernel{
			Name:    "lu",
			Group:   GroupSolvers,
			Dims:    []string{"n"},
			Presets: square(40, 120, 400, 2000, 4000),
			f32:     arity1(solvers.BenchLU[float32]),
			f64:     arity1(solvers.BenchLU[float64]),
		},
		&Kernel{
			Name:    "ludcmp",
			Group:   GroupSolvers,
			Dims:    []string{"n"},
			Presets: square(40, 120, 400, 2000, 4000),
			f32:     arity1(solvers.BenchLudcmp[float32]),
			f64:     arity1(solvers.BenchLudcmp[float64]),
		},
		&Kernel{
			Name:    "trisolv",
			Group:   GroupSolvers,
			Dims:    []string{"n"},
			Presets: square(40, 120, 400, 2000, 4000),
			f32:     arity1(solvers.BenchTrisolv[float32]),
			f64:     arity1(solvers.BenchTrisolv[float64]),
		},

		// Medley.
		&Kernel{
			Name:    "deriche",
			Group:   GroupMedley,
			Dims:    []string{"w", "h"},
			Presets: presets(sizes(64, 64), sizes(192, 128), sizes(720, 480), sizes(4096, 2160), sizes(7680, 4320)),
			f32:     arity2(medley.BenchDeriche[float32]),
			f64:     arity2(medley.BenchDeriche[float64]),
		},
		&Kernel{
			Name:    "floyd-warshall",
			Group:   GroupMedley,
			Dims:    []string{"n"},
			Presets: square(60, 180, 500, 2800, 5600),
			f32:     arity1(medley.BenchFloydWarshall[float32]),
			f64:     arity1(medley.BenchFloydWarshall[float64]),
		},
		&Kernel{
			Name:    "nussinov",
			Group:   GroupMedley,
			Dims:    []string{"n"},
			Presets: square(60, 180, 500, 2500, 5500),
			f32:     arity1(medley.BenchNussinov[float32]),
			f64:     arity1(medley.BenchNussinov[float64]),
		},

		// Stencils. The first size is the number of time steps.
		&Kernel{
			Name:    "adi",
			Group:   GroupStencils,
			Dims:    []string{"tsteps", "n"},
			Presets: presets(sizes(20, 20), sizes(40, 60), sizes(100, 200), sizes(500, 1000), sizes(1000, 2000)),
			f32:     arity2(stencils.BenchAdi[float32]),
			f64:     arity2(stencils.BenchAdi[float64]),
		},
		&Kernel{
			Name:    "fdtd-2d",
			Group:   GroupStencils,
			Dims:    []string{"tmax", "nx", "ny"},
			Presets: presets(sizes(20, 20, 30), sizes(40, 60, 80), sizes(100, 200, 240), sizes(500, 1000, 1200), sizes(1000, 2000, 2600)),
			f32:     arity3(stencils.BenchFdtd2d[float32]),
			f64:     arity3(stencils.BenchFdtd2d[float64]),
		},
		&Kernel{
			Name:    "heat-3d",
			Group:   GroupStencils,
			Dims:    []string{"tsteps", "n"},
			Presets: presets(sizes(20, 10), sizes(40, 20), sizes(100, 40), sizes(500, 120), sizes(1000, 200)),
			f32:     arity2(stencils.BenchHeat3d[float32]),
			f64:     arity2(stencils.BenchHeat3d[float64]),
		},
		&Kernel{
			Name:    "jacobi-1d",
			Group:   GroupStencils,
			Dims:    []string{"tsteps", "n"},
			Presets: presets(sizes(20, 30), sizes(40, 120), sizes(100, 400), sizes(500, 2000), sizes(1000, 4000)),
			f32:     arity2(stencils.BenchJacobi1d[float32]),
			f64:     arity2(stencils.BenchJacobi1d[float64]),
		},
		&Kernel{
			Name:    "jacobi-2d",
			Group:   GroupStencils,
			Dims:    []string{"tsteps", "n"},
			Presets: presets(sizes(20, 30), sizes(40, 90), sizes(100, 250), sizes(500, 1300), sizes(1000, 2800)),
			f32:     arity2(stencils.BenchJacobi2d[float32]),
			f64:     arity2(stencils.BenchJacobi2d[float64]),
		},
		&Kernel{
			Name:    "seidel-2d",
			Group:   GroupStencils,
			Dims:    []string{"tsteps", "n"},
			Presets: presets(sizes(20, 40), sizes(40, 120), sizes(100, 400), sizes(500, 2000), sizes(1000, 4000)),
			f32:     arity2(stencils.BenchSeidel2d[float32]),
			f64:     arity2(stencils.BenchSeidel2d[float64]),
		},
	)
}
