// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cqr

import (
	"math"
	"math/cmplx"

	"github.com/quantumlib-go/csd/internal/cmat"
)

// Decompose factors the m×n complex matrix a (m ≥ n) as a = Q·R, with Q an
// m×m unitary matrix and R an m×n upper-trapezoidal matrix. It panics if
// m < n, mirroring gonum mat.QR.Factorize's own precondition.
func Decompose(a *cmat.Dense) (q, r *cmat.Dense) {
	m, n := a.Dims()
	if m < n {
		panic(cmat.ErrShape)
	}
	r = a.Clone()
	q = cmat.Identity(m)
	k := n
	if m < k {
		k = m
	}

	for col := 0; col < k; col++ {
		ln := m - col
		v := make([]complex128, ln)
		for i := 0; i < ln; i++ {
			v[i] = r.At(col+i, col)
		}
		nrm := vnorm(v)
		if nrm == 0 {
			continue
		}
		alpha := -phase(v[0]) * complex(nrm, 0)
		v[0] -= alpha
		vnsq := vnorm(v)
		vnsq *= vnsq
		if vnsq == 0 {
			continue
		}
		coef := complex(2/vnsq, 0)

		// Apply H = I - coef·v·vᴴ on the left to R's trailing columns.
		for j := col; j < n; j++ {
			var dot complex128
			for i := 0; i < ln; i++ {
				dot += cmplx.Conj(v[i]) * r.At(col+i, j)
			}
			dot *= coef
			for i := 0; i < ln; i++ {
				r.Set(col+i, j, r.At(col+i, j)-dot*v[i])
			}
		}

		// Accumulate Q = Q·H (H is Hermitian and an involution, so the
		// product of all reflectors, applied on the right in order, gives
		// exactly the unitary factor undone by R's left-multiplications).
		for i := 0; i < m; i++ {
			var dot complex128
			for l := 0; l < ln; l++ {
				dot += q.At(i, col+l) * v[l]
			}
			dot *= coef
			for l := 0; l < ln; l++ {
				q.Set(i, col+l, q.At(i, col+l)-dot*cmplx.Conj(v[l]))
			}
		}
	}
	return q, r
}

func vnorm(v []complex128) float64 {
	var sum float64
	for _, x := range v {
		sum += real(x)*real(x) + imag(x)*imag(x)
	}
	return math.Sqrt(sum)
}

// phase returns z/|z|, or 1 if z is zero.
func phase(z complex128) complex128 {
	a := cmplx.Abs(z)
	if a == 0 {
		return 1
	}
	return z / complex(a, 0)
}
