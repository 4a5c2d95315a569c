// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lareal

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/quantumlib-go/csd/internal/cmat"
)

// embedGeneral builds R(A), the 2n×2n real embedding of the n×n complex
// matrix a, as a plain mat.Dense.
func embedGeneral(a *cmat.Dense) *mat.Dense {
	n, c := a.Dims()
	if n != c {
		panic(cmat.ErrSquare)
	}
	r := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			r.Set(i, j, real(v))
			r.Set(i, n+j, -imag(v))
			r.Set(n+i, j, imag(v))
			r.Set(n+i, n+j, real(v))
		}
	}
	return r
}

// embedHermitian builds R(H) as a mat.SymDense. Callers must ensure h is
// Hermitian (R(H) is then provably symmetric; see package doc).
func embedHermitian(h *cmat.Dense) *mat.SymDense {
	n, _ := h.Dims()
	sym := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j)
			sym.SetSym(i, j, real(v))
			sym.SetSym(i, n+j, -imag(v))
			sym.SetSym(n+i, j, imag(v))
			sym.SetSym(n+i, n+j, real(v))
		}
	}
	return sym
}

// jApply computes J·v for v ∈ C^2n, where J swaps the halves of v and
// negates the (originally) top half: J(p;q) = (-q;p).
func jApply(v []complex128) []complex128 {
	n := len(v) / 2
	out := make([]complex128, len(v))
	for i := 0; i < n; i++ {
		out[i] = -v[n+i]
		out[n+i] = v[i]
	}
	return out
}

// projectPlusI returns w = (v - i*J v)/2, the projection of v onto the
// +i-eigenspace of J. When v is an eigenvector of R(A), w is either zero
// (v belongs to the conjugate copy of A's spectrum) or a (possibly scaled)
// eigenvector of R(A) lying entirely in the +i-eigenspace, whose bottom
// half is then a genuine eigenvector of A for the same eigenvalue.
func projectPlusI(v []complex128) []complex128 {
	jv := jApply(v)
	out := make([]complex128, len(v))
	for i := range v {
		out[i] = (v[i] - complex(0, 1)*jv[i]) / 2
	}
	return out
}

func vecNorm(v []complex128) float64 {
	var sum float64
	for _, x := range v {
		sum += real(x)*real(x) + imag(x)*imag(x)
	}
	return math.Sqrt(sum)
}
