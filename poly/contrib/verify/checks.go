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

package verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-polybench/poly"
	"github.com/ajroetker/go-polybench/poly/contrib/blas"
	"github.com/ajroetker/go-polybench/poly/contrib/datamining"
	"github.com/ajroetker/go-polybench/poly/contrib/linalg"
	"github.com/ajroetker/go-polybench/poly/contrib/medley"
	"github.com/ajroetker/go-polybench/poly/contrib/solvers"
)

// Checks returns every available check, in catalog order.
func Checks() []Check {
	return []Check{
		{"correlation", checkCorrelation},
		{"covariance", checkCovariance},
		{"gemm", checkGemm},
		{"gemver", checkGemver},
		{"gesummv", checkGesummv},
		{"symm", checkSymm},
		{"syr2k", checkSyr2k},
		{"syrk", checkSyrk},
		{"trmm", checkTrmm},
		{"2mm", check2mm},
		{"3mm", check3mm},
		{"atax", checkAtax},
		{"bicg", checkBicg},
		{"mvt", checkMvt},
		{"cholesky", checkCholesky},
		{"durbin", checkDurbin},
		{"gramschmidt", checkGramschmidt},
		{"lu", checkLU},
		{"ludcmp", checkLudcmp},
		{"trisolv", checkTrisolv},
		{"floyd-warshall", checkFloydWarshall},
	}
}

// The datamining kernels take moments over the column count, so their
// references use square data where that equals the row count.

func checkCorrelation() error {
	const m, n = 30, 30
	pd := poly.Uninit2D[float64](m, n)
	floatN := datamining.InitCorrelation(pd)
	data := pd.AssumeInit()
	var want mat.SymDense
	stat.CorrelationMatrix(&want, dense(data), nil)

	corr := poly.Scratch2D[float64](n, n)
	mean, stddev := poly.Scratch1D[float64](n), poly.Scratch1D[float64](n)
	datamining.Correlation(floatN, data, corr, mean, stddev)

	// Clamped columns have no defined correlation.
	clamped := stddev.Data()
	return compareMatrix("corr", &want, corr, Tol, func(i, j int) bool {
		return clamped[i] != 1 && clamped[j] != 1
	})
}

func checkCovariance() error {
	const m, n = 30, 30
	pd := poly.Uninit2D[float64](m, n)
	floatN := datamining.InitCovariance(pd)
	data := pd.AssumeInit()
	var want mat.SymDense
	stat.CovarianceMatrix(&want, dense(data), nil)

	cov, mean := poly.Scratch2D[float64](n, n), poly.Scratch1D[float64](n)
	datamining.Covariance(floatN, data, cov, mean)
	return compareMatrix("cov", &want, cov, Tol, nil)
}

func checkGemm() error {
	const ni, nj, nk = 20, 25, 30
	pc, pa, pb := poly.Uninit2D[float64](ni, nj), poly.Uninit2D[float64](ni, nk), poly.Uninit2D[float64](nk, nj)
	alpha, beta := blas.InitGemm(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()

	var want, bc mat.Dense
	want.Mul(dense(a), dense(b))
	want.Scale(alpha, &want)
	bc.Scale(beta, dense(c))
	want.Add(&want, &bc)

	blas.Gemm(alpha, beta, c, a, b)
	return compareMatrix("C", &want, c, Tol, nil)
}

func checkGemver() error {
	const n = 40
	d, alpha, beta := blas.InitGemver[float64](n)

	a := dense(d.A)
	a.RankOne(a, 1, vec(d.U1), vec(d.V1))
	a.RankOne(a, 1, vec(d.U2), vec(d.V2))
	var x, w mat.VecDense
	x.MulVec(a.T(), vec(d.Y))
	x.ScaleVec(beta, &x)
	x.AddVec(&x, vec(d.X))
	x.AddVec(&x, vec(d.Z))
	w.MulVec(a, &x)
	w.ScaleVec(alpha, &w)
	w.AddVec(&w, vec(d.W))

	blas.Gemver(alpha, beta, d)
	if err := compareMatrix("A", a, d.A, Tol, nil); err != nil {
		return err
	}
	if err := compare("x", vecData(&x), d.X.Data(), Tol); err != nil {
		return err
	}
	return compare("w", vecData(&w), d.W.Data(), Tol)
}

func checkGesummv() error {
	const n = 30
	pa, pb, px := poly.Uninit2D[float64](n, n), poly.Uninit2D[float64](n, n), poly.Uninit1D[float64](n)
	alpha, beta := blas.InitGesummv(pa, pb, px)
	a, b, x := pa.AssumeInit(), pb.AssumeInit(), px.AssumeInit()

	var ax, bx mat.VecDense
	ax.MulVec(dense(a), vec(x))
	bx.MulVec(dense(b), vec(x))
	ax.ScaleVec(alpha, &ax)
	ax.AddScaledVec(&ax, beta, &bx)

	tmp, y := poly.Scratch1D[float64](n), poly.Scratch1D[float64](n)
	blas.Gesummv(alpha, beta, a, b, tmp, x, y)
	return compare("y", vecData(&ax), y.Data(), Tol)
}

func checkSymm() error {
	const m, n = 20, 30
	pc, pa, pb := poly.Uninit2D[float64](m, n), poly.Uninit2D[float64](m, m), poly.Uninit2D[float64](m, n)
	alpha, beta := blas.InitSymm(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()

	// Only the lower triangle of A is meaningful.
	sym := mat.NewSymDense(m, nil)
	for i := range m {
		for j := 0; j <= i; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}
	var want, bc mat.Dense
	want.Mul(sym, dense(b))
	want.Scale(alpha, &want)
	bc.Scale(beta, dense(c))
	want.Add(&want, &bc)

	blas.Symm(alpha, beta, c, a, b)
	return compareMatrix("C", &want, c, Tol, nil)
}

func checkSyrk() error {
	const m, n = 30, 20
	pc, pa := poly.Uninit2D[float64](m, m), poly.Uninit2D[float64](m, n)
	alpha, beta := blas.InitSyrk(pc, pa)
	c, a := pc.AssumeInit(), pa.AssumeInit()

	var want, bc mat.Dense
	ad := dense(a)
	want.Mul(ad, ad.T())
	want.Scale(alpha, &want)
	bc.Scale(beta, dense(c))
	want.Add(&want, &bc)

	blas.Syrk(alpha, beta, c, a)
	return compareMatrix("C", &want, c, Tol, lower)
}

func checkSyr2k() error {
	const m, n = 30, 20
	pc, pa, pb := poly.Uninit2D[float64](m, m), poly.Uninit2D[float64](m, n), poly.Uninit2D[float64](m, n)
	alpha, beta := blas.InitSyr2k(pc, pa, pb)
	c, a, b := pc.AssumeInit(), pa.AssumeInit(), pb.AssumeInit()

	var want, bat, bc mat.Dense
	ad, bd := dense(a), dense(b)
	want.Mul(ad, bd.T())
	bat.Mul(bd, ad.T())
	want.Add(&want, &bat)
	want.Scale(alpha, &want)
	bc.Scale(beta, dense(c))
	want.Add(&want, &bc)

	blas.Syr2k(alpha, beta, c, a, b)
	return compareMatrix("C", &want, c, Tol, lower)
}

func checkTrmm() error {
	const m, n = 20, 30
	a, pb := poly.Zeroed2D[float64](m, m), poly.Uninit2D[float64](m, n)
	alpha := blas.InitTrmm(a, pb)
	b := pb.AssumeInit()

	// B := alpha * Aᵀ * B with A unit lower triangular.
	tri := mat.NewTriDense(m, mat.Lower, nil)
	for i := range m {
		for j := 0; j <= i; j++ {
			tri.SetTri(i, j, a.At(i, j))
		}
	}
	var want mat.Dense
	want.Mul(tri.T(), dense(b))
	want.Scale(alpha, &want)

	blas.Trmm(alpha, a, b)
	return compareMatrix("B", &want, b, Tol, nil)
}

func check2mm() error {
	const ni, nj, nk, nl = 16, 18, 22, 24
	pa, pb := poly.Uninit2D[float64](ni, nk), poly.Uninit2D[float64](nk, nj)
	pc, pd := poly.Uninit2D[float64](nj, nl), poly.Uninit2D[float64](ni, nl)
	alpha, beta := linalg.Init2mm(pa, pb, pc, pd)
	a, b, c, d := pa.AssumeInit(), pb.AssumeInit(), pc.AssumeInit(), pd.AssumeInit()

	var ab, want, bd mat.Dense
	ab.Mul(dense(a), dense(b))
	want.Mul(&ab, dense(c))
	want.Scale(alpha, &want)
	bd.Scale(beta, dense(d))
	want.Add(&want, &bd)

	linalg.Kernel2mm(alpha, beta, poly.Scratch2D[float64](ni, nj), a, b, c, d)
	return compareMatrix("D", &want, d, Tol, nil)
}

func check3mm() error {
	const ni, nj, nk, nl, nm = 16, 18, 20, 22, 24
	pa, pb := poly.Uninit2D[float64](ni, nk), poly.Uninit2D[float64](nk, nj)
	pc, pd := poly.Uninit2D[float64](nj, nm), poly.Uninit2D[float64](nm, nl)
	linalg.Init3mm(pa, pb, pc, pd)
	a, b, c, d := pa.AssumeInit(), pb.AssumeInit(), pc.AssumeInit(), pd.AssumeInit()

	var e, f, want mat.Dense
	e.Mul(dense(a), dense(b))
	f.Mul(dense(c), dense(d))
	want.Mul(&e, &f)

	g := poly.Scratch2D[float64](ni, nl)
	linalg.Kernel3mm(poly.Scratch2D[float64](ni, nj), a, b, poly.Scratch2D[float64](nj, nl), c, d, g)
	return compareMatrix("G", &want, g, Tol, nil)
}

func checkAtax() error {
	const m, n = 38, 42
	pa, px := poly.Uninit2D[float64](m, n), poly.Uninit1D[float64](n)
	linalg.InitAtax(pa, px)
	a, x := pa.AssumeInit(), px.AssumeInit()

	// y[j] is the column sum of A plus the sum of tmp = A·x.
	var ax, want mat.VecDense
	ad := dense(a)
	ax.MulVec(ad, vec(x))
	want.MulVec(ad.T(), mat.NewVecDense(m, constant(m, 1)))
	want.AddVec(&want, mat.NewVecDense(n, constant(n, mat.Sum(&ax))))

	y := poly.Scratch1D[float64](n)
	linalg.Atax(a, x, y, poly.Scratch1D[float64](m))
	return compare("y", vecData(&want), y.Data(), Tol)
}

func checkBicg() error {
	const m, n = 42, 38
	pa, pr, pp := poly.Uninit2D[float64](m, n), poly.Uninit1D[float64](m), poly.Uninit1D[float64](n)
	linalg.InitBicg(pa, pr, pp)
	a, r, p := pa.AssumeInit(), pr.AssumeInit(), pp.AssumeInit()

	var s, q mat.VecDense
	ad := dense(a)
	s.MulVec(ad.T(), vec(r))
	q.MulVec(ad, vec(p))

	gs, gq := poly.Scratch1D[float64](n), poly.Scratch1D[float64](m)
	linalg.Bicg(a, gs, gq, p, r)
	if err := compare("s", vecData(&s), gs.Data(), Tol); err != nil {
		return err
	}
	return compare("q", vecData(&q), gq.Data(), Tol)
}

func checkMvt() error {
	const n = 40
	px1, px2 := poly.Uninit1D[float64](n), poly.Uninit1D[float64](n)
	py1, py2 := poly.Uninit1D[float64](n), poly.Uninit1D[float64](n)
	pa := poly.Uninit2D[float64](n, n)
	linalg.InitMvt(px1, px2, py1, py2, pa)
	x1, x2, y1, y2, a := px1.AssumeInit(), px2.AssumeInit(), py1.AssumeInit(), py2.AssumeInit(), pa.AssumeInit()

	var w1, w2 mat.VecDense
	ad := dense(a)
	w1.MulVec(ad, vec(y1))
	w1.AddVec(&w1, vec(x1))
	w2.MulVec(ad.T(), vec(y2))
	w2.AddVec(&w2, vec(x2))

	linalg.Mvt(x1, x2, y1, y2, a)
	if err := compare("x1", vecData(&w1), x1.Data(), Tol); err != nil {
		return err
	}
	return compare("x2", vecData(&w2), x2.Data(), Tol)
}

func checkCholesky() error {
	const n = 40
	a := solvers.InitCholesky(poly.Uninit2D[float64](n, n))

	var chol mat.Cholesky
	if !chol.Factorize(mat.NewSymDense(n, dense(a).RawMatrix().Data)) {
		return fmt.Errorf("verify: cholesky input is not positive definite")
	}
	var l mat.TriDense
	chol.LTo(&l)

	solvers.Cholesky(a)
	return compareMatrix("L", &l, a, solverTol, lower)
}

// checkDurbin solves the Yule-Walker system T·y = -r directly, where T is
// the symmetric Toeplitz matrix with unit diagonal and r[k-1] on the k-th
// off-diagonals.
func checkDurbin() error {
	const n = 40
	pr := poly.Uninit1D[float64](n)
	solvers.InitDurbin(pr)
	r := pr.AssumeInit()

	toeplitz := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := range n {
		rhs.SetVec(i, -r.At(i))
		for j := range n {
			if k := i - j; k == 0 {
				toeplitz.Set(i, j, 1)
			} else {
				toeplitz.Set(i, j, r.At(abs(k)-1))
			}
		}
	}
	var want mat.VecDense
	if err := want.SolveVec(toeplitz, rhs); err != nil {
		return fmt.Errorf("verify: durbin reference solve: %w", err)
	}

	y := poly.Scratch1D[float64](n)
	solvers.Durbin(r, y, poly.Scratch1D[float64](n))
	return compare("y", vecData(&want), y.Data(), solverTol)
}

func checkGramschmidt() error {
	// A prime row count keeps the generated columns independent.
	const m, n = 31, 15
	pa, pr, pq := poly.Uninit2D[float64](m, n), poly.Uninit2D[float64](n, n), poly.Uninit2D[float64](m, n)
	solvers.InitGramschmidt(pa, pr, pq)
	a, r, q := pa.AssumeInit(), pr.AssumeInit(), pq.AssumeInit()
	orig := dense(a)

	solvers.Gramschmidt(a, r, q)
	var qr mat.Dense
	qr.Mul(dense(q), dense(r))
	if err := compareMatrix("QR", orig, denseArray(&qr), solverTol, nil); err != nil {
		return err
	}
	qd := dense(q)
	norms := make([]float64, n)
	ones := make([]float64, n)
	for j := range n {
		norms[j] = mat.Norm(qd.ColView(j), 2)
		ones[j] = 1
	}
	return compare("|Q[:, j]|", ones, norms, solverTol)
}

func checkLU() error {
	const n = 40
	a := solvers.InitLU(poly.Uninit2D[float64](n, n))
	orig := dense(a)

	solvers.LU(a)
	l, u := mat.NewDense(n, n, nil), mat.NewDense(n, n, nil)
	for i := range n {
		for j := range n {
			switch {
			case j < i:
				l.Set(i, j, a.At(i, j))
			case j == i:
				l.Set(i, j, 1)
				u.Set(i, j, a.At(i, j))
			default:
				u.Set(i, j, a.At(i, j))
			}
		}
	}
	var lu mat.Dense
	lu.Mul(l, u)
	return compareMatrix("LU", orig, denseArray(&lu), solverTol, nil)
}

func checkLudcmp() error {
	const n = 40
	pb, px, py := poly.Uninit1D[float64](n), poly.Uninit1D[float64](n), poly.Uninit1D[float64](n)
	a := solvers.InitLudcmp(poly.Uninit2D[float64](n, n), pb, px, py)
	b, x, y := pb.AssumeInit(), px.AssumeInit(), py.AssumeInit()

	var want mat.VecDense
	if err := want.SolveVec(dense(a), vec(b)); err != nil {
		return fmt.Errorf("verify: ludcmp reference solve: %w", err)
	}
	solvers.Ludcmp(a, b, x, y)
	return compare("x", vecData(&want), x.Data(), solverTol)
}

func checkTrisolv() error {
	const n = 40
	l, px, pb := poly.Zeroed2D[float64](n, n), poly.Uninit1D[float64](n), poly.Uninit1D[float64](n)
	solvers.InitTrisolv(l, px, pb)
	x, b := px.AssumeInit(), pb.AssumeInit()

	tri := mat.NewTriDense(n, mat.Lower, dense(l).RawMatrix().Data)
	var want mat.VecDense
	if err := want.SolveVec(tri, vec(b)); err != nil {
		return fmt.Errorf("verify: trisolv reference solve: %w", err)
	}
	solvers.Trisolv(l, x, b)
	return compare("x", vecData(&want), x.Data(), solverTol)
}

func checkFloydWarshall() error {
	const n = 30
	pp := poly.Uninit2D[float64](n, n)
	medley.InitFloydWarshall(pp)
	p := pp.AssumeInit()

	// NoEdge is an ordinary heavy edge, so the graph is complete.
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := range n {
		g.AddNode(simple.Node(i))
	}
	for i := range n {
		for j := range n {
			if i != j {
				g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: p.At(i, j)})
			}
		}
	}
	paths, ok := path.FloydWarshall(g)
	if !ok {
		return fmt.Errorf("verify: floyd-warshall reference found a negative cycle")
	}
	want := mat.NewDense(n, n, nil)
	for i := range n {
		for j := range n {
			want.Set(i, j, paths.Weight(int64(i), int64(j)))
		}
	}

	medley.FloydWarshall(p)
	// The diagonal keeps its initial self-loop weight in the kernel.
	return compareMatrix("path", want, p, 0, func(i, j int) bool { return i != j })
}

func constant(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func abs(k int) int {
	if k < 0 {
		return -k
	}
	return k
}

// denseArray copies a gonum matrix into a poly array for compareMatrix.
func denseArray(m mat.Matrix) *poly.Array2D[float64] {
	r, c := m.Dims()
	p := poly.Uninit2D[float64](r, c)
	p.Fill(m.At)
	return p.AssumeInit()
}
