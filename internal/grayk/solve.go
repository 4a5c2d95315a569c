// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grayk

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/quantumlib-go/csd/internal/cmat"
)

// solveMk solves Mk·t = v for t, where Mk is the 2^k×2^k Gray-code sign
// matrix and v has length 2^k.
func solveMk(k int, v []float64) ([]float64, error) {
	n := 1 << uint(k)
	rows := Build(k)
	flat := make([]float64, n*n)
	for i, row := range rows {
		copy(flat[i*n:(i+1)*n], row)
	}
	a := mat.NewDense(n, n, flat)

	var qr mat.QR
	qr.Factorize(a)

	b := mat.NewVecDense(n, v)
	var x mat.VecDense
	if err := qr.SolveVec(&x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}

// SolveY returns the 2^k uniformly-controlled Ry rotation angles for the
// diagonal sine block s (a 2^k×2^k real diagonal matrix
// stored as a complex cmat.Dense), i.e. the solution t of Mk·t = v with
// v = 2·arcsin(Re(diag s)).
func SolveY(s *cmat.Dense, k int) ([]float64, error) {
	diag := s.RealDiag()
	v := make([]float64, len(diag))
	for i, d := range diag {
		v[i] = 2 * math.Asin(clamp(d))
	}
	return solveMk(k, v)
}

// SolveZ returns the 2^k uniformly-controlled Rz rotation angles for the
// diagonal unitary d (unit-modulus entries), i.e. the solution t of
// Mk·t = v with v = Re(2·log(diag d)/i).
func SolveZ(d *cmat.Dense, k int) ([]float64, error) {
	n, _ := d.Dims()
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		lg := cmplx.Log(d.At(i, i))
		v[i] = real(2 * lg / complex(0, 1))
	}
	return solveMk(k, v)
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
