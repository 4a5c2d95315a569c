// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csd

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/quantumlib-go/csd/internal/cmat"
	"github.com/quantumlib-go/csd/internal/lareal"
)

// thinSVD computes a thin singular value decomposition q = u*diag(sv)*v*
// of the square p×p matrix q, via the Hermitian eigendecomposition of its
// Gram matrix q*·q (q's singular values are the non-negative square roots
// of the Gram matrix's eigenvalues, and v is the Gram matrix's
// eigenvector basis). Columns of u corresponding to a near-zero singular
// value are completed to an orthonormal basis by Gram-Schmidt against the
// columns already recovered, since q*v does not determine those columns.
func thinSVD(q *cmat.Dense) (u, v *cmat.Dense, sv []float64, err error) {
	p, _ := q.Dims()
	if p == 1 {
		x := q.At(0, 0)
		mag := cmplx.Abs(x)
		vv := cmat.NewDense(1, 1, nil)
		uu := cmat.NewDense(1, 1, nil)
		uu.Set(0, 0, 1)
		if mag == 0 {
			vv.Set(0, 0, 1)
		} else {
			vv.Set(0, 0, cmplx.Conj(x)/complex(mag, 0))
		}
		return uu, vv, []float64{mag}, nil
	}

	gram := cmat.Product(q.H(), q)
	lambda, vecs, serr := lareal.HermitianEigen(gram)
	if serr != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrLinAlg, serr)
	}

	sv = make([]float64, p)
	for i, l := range lambda {
		if l < 0 {
			l = 0
		}
		sv[i] = math.Sqrt(l)
	}

	u = cmat.NewDense(p, p, nil)
	qv := cmat.Product(q, vecs)
	const tol = 1e-10
	for j := 0; j < p; j++ {
		if sv[j] > tol {
			col := qv.Col(j)
			for i := range col {
				col[i] /= complex(sv[j], 0)
			}
			u.SetCol(j, col)
			continue
		}
		col := gramSchmidtComplete(u, j)
		u.SetCol(j, col)
	}
	return u, vecs, sv, nil
}

// gramSchmidtComplete returns a unit vector orthogonal to columns
// 0..j-1 of u, used to complete the orthonormal basis when q is rank
// deficient. It seeds from the j-th standard basis vector, falling back
// through later ones if that seed lies (nearly) in the existing span.
func gramSchmidtComplete(u *cmat.Dense, j int) []complex128 {
	n, _ := u.Dims()
	for seed := 0; seed < n; seed++ {
		v := make([]complex128, n)
		v[seed] = 1
		for k := 0; k < j; k++ {
			col := u.Col(k)
			var dot complex128
			for i := range col {
				dot += cmplx.Conj(col[i]) * v[i]
			}
			for i := range v {
				v[i] -= dot * col[i]
			}
		}
		nrm := 0.0
		for _, x := range v {
			nrm += real(x)*real(x) + imag(x)*imag(x)
		}
		nrm = math.Sqrt(nrm)
		if nrm > 1e-9 {
			for i := range v {
				v[i] /= complex(nrm, 0)
			}
			return v
		}
	}
	v := make([]complex128, n)
	v[0] = 1
	return v
}
