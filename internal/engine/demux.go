// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"math/cmplx"

	"github.com/quantumlib-go/csd/internal/cmat"
	"github.com/quantumlib-go/csd/internal/grayk"
	"github.com/quantumlib-go/csd/internal/lareal"
	"github.com/quantumlib-go/csd/internal/qconfig"
	"github.com/quantumlib-go/csd/internal/zyz"
)

// demultiplex implements §4.4: given two size-2^k unitaries u1 and u2, it
// appends the angles for U1 = V·D·W and U2 = V·D⁻¹·W to s.
func demultiplex(s *Stream, u1, u2 *cmat.Dense, k int, tol qconfig.Tolerances) error {
	if cmat.EqualApprox(u1, u2, tol.Equality) {
		size, _ := u1.Dims()
		if size == 2 {
			a := zyz.Decompose(u1)
			inst := a.Instructions()
			s.Append(inst[0], inst[1], inst[2])
			s.Append(0, 0, 0, 0, 0)
			return nil
		}
		return ErrNotImplemented
	}

	prod := cmat.Product(u1, u2.H())
	d, v, err := lareal.GeneralEigen(prod)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLinAlgFailure, err)
	}
	d, v = reverseEigenOrder(d, v)

	n := len(d)
	dMat := cmat.NewDense(n, n, nil)
	for i, lambda := range d {
		dMat.Set(i, i, cmplx.Sqrt(lambda))
	}

	w := cmat.Product(dMat, cmat.Product(v.H(), u2))
	if err := decompFunction(s, w, k, tol); err != nil {
		return err
	}

	zAngles, err := grayk.SolveZ(dMat, k)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLinAlgFailure, err)
	}
	s.Append(zAngles...)

	return decompFunction(s, v, k, tol)
}

// reverseEigenOrder reverses the order of the eigenvalues and the matching
// columns of the eigenvector matrix v, per the "reverse both" step of
// §4.4.
func reverseEigenOrder(d []complex128, v *cmat.Dense) ([]complex128, *cmat.Dense) {
	n := len(d)
	rd := make([]complex128, n)
	for i := 0; i < n; i++ {
		rd[i] = d[n-1-i]
	}
	z := cmat.AntiDiagonal(n)
	return rd, cmat.Product(v, z)
}
