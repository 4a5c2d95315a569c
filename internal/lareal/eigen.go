// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lareal

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/quantumlib-go/csd/internal/cmat"
)

const selectTol = 1e-9

type candidate struct {
	val complex128
	vec []complex128
}

// selectEigenspace runs the +i-eigenspace projection over every column of
// a 2n×2n real eigendecomposition and Gram-Schmidt-selects n independent
// survivors, handling degenerate eigenvalues whose eigenvectors gonum
// returns as an arbitrary orthonormal basis of the shared eigenspace.
func selectEigenspace(n int, vals []complex128, cols [][]complex128) ([]complex128, *cmat.Dense, error) {
	kept := make([]candidate, 0, n)
	for j, v := range cols {
		proj := projectPlusI(v)
		nrm := vecNorm(proj)
		if nrm < selectTol {
			continue
		}
		q := make([]complex128, n)
		copy(q, proj[n:])
		scaleVec(q, 1/vecNorm(proj))
		q = orthogonalizeAgainst(q, kept)
		after := vecNorm(q)
		if after < selectTol {
			continue
		}
		scaleVec(q, 1/after)
		kept = append(kept, candidate{val: vals[j], vec: q})
		if len(kept) == n {
			break
		}
	}
	if len(kept) != n {
		return nil, nil, fmt.Errorf("%w: found %d of %d", ErrRankMismatch, len(kept), n)
	}
	values := make([]complex128, n)
	vecs := cmat.NewDense(n, n, nil)
	for j, k := range kept {
		values[j] = k.val
		canonicalPhase(k.vec)
		vecs.SetCol(j, k.vec)
	}
	return values, vecs, nil
}

func scaleVec(v []complex128, f float64) {
	for i := range v {
		v[i] *= complex(f, 0)
	}
}

func innerProduct(a, b []complex128) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}
	return s
}

// orthogonalizeAgainst removes from v its projection onto every vector
// already kept, i.e. one pass of (modified) Gram-Schmidt.
func orthogonalizeAgainst(v []complex128, kept []candidate) []complex128 {
	out := make([]complex128, len(v))
	copy(out, v)
	for _, k := range kept {
		coef := innerProduct(k.vec, out)
		for i := range out {
			out[i] -= coef * k.vec[i]
		}
	}
	return out
}

// canonicalPhase rotates v so that its largest-magnitude entry is real and
// positive, matching the normalization gonum's mat.Eigen documents for its
// own eigenvectors and keeping our output independent of the arbitrary
// phase the eigensolver returns.
func canonicalPhase(v []complex128) {
	best := 0
	for i := 1; i < len(v); i++ {
		if cmplx.Abs(v[i]) > cmplx.Abs(v[best]) {
			best = i
		}
	}
	if cmplx.Abs(v[best]) == 0 {
		return
	}
	phase := v[best] / complex(cmplx.Abs(v[best]), 0)
	for i := range v {
		v[i] /= phase
	}
}

// HermitianEigen returns the eigenvalues (descending, as a typical SVD
// singular-value ordering) and eigenvectors of the Hermitian matrix h, via
// the real-embedding reduction documented in doc.go.
func HermitianEigen(h *cmat.Dense) ([]float64, *cmat.Dense, error) {
	n, _ := h.Dims()
	sym := embedHermitian(h)

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, ErrNoConverge
	}
	rawVals := es.Values(nil)
	var rawVecs mat.Dense
	rawVecs.EigenvectorsSym(&es)

	cvals := make([]complex128, len(rawVals))
	cols := make([][]complex128, len(rawVals))
	for j := range rawVals {
		cvals[j] = complex(rawVals[j], 0)
		col := make([]complex128, 2*n)
		for i := 0; i < 2*n; i++ {
			col[i] = complex(rawVecs.At(i, j), 0)
		}
		cols[j] = col
	}

	values, vecs, err := selectEigenspace(n, cvals, cols)
	if err != nil {
		return nil, nil, err
	}
	realVals := make([]float64, n)
	for i, v := range values {
		realVals[i] = real(v)
	}
	sortDescending(realVals, vecs)
	return realVals, vecs, nil
}

// GeneralEigen returns the eigenvalues and (right) eigenvectors of the
// square complex matrix a, in the order gonum's underlying QR algorithm
// produces them, via the real-embedding reduction documented in doc.go.
func GeneralEigen(a *cmat.Dense) ([]complex128, *cmat.Dense, error) {
	n, _ := a.Dims()
	r := embedGeneral(a)

	var eig mat.Eigen
	if ok := eig.Factorize(r, false, true); !ok {
		return nil, nil, ErrNoConverge
	}
	rawVals := eig.Values(nil)
	rawVecs := eig.VectorsTo(nil)

	cols := make([][]complex128, len(rawVals))
	for j := range rawVals {
		col := make([]complex128, 2*n)
		for i := 0; i < 2*n; i++ {
			col[i] = rawVecs.At(i, j)
		}
		cols[j] = col
	}
	return selectEigenspace(n, rawVals, cols)
}

// sortDescending reorders values and the matching columns of vecs so that
// values is sorted from largest to smallest.
func sortDescending(values []float64, vecs *cmat.Dense) {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && values[order[j]] > values[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	sortedVals := make([]float64, n)
	sortedVecs := cmat.NewDense(n, n, nil)
	for newIdx, oldIdx := range order {
		sortedVals[newIdx] = values[oldIdx]
		sortedVecs.SetCol(newIdx, vecs.Col(oldIdx))
	}
	copy(values, sortedVals)
	for j := 0; j < n; j++ {
		vecs.SetCol(j, sortedVecs.Col(j))
	}
}
