// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zyz

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantumlib-go/csd/internal/cmat"
)

func rz(theta float64) *cmat.Dense {
	m := cmat.NewDense(2, 2, nil)
	m.Set(0, 0, cmplx.Exp(complex(0, -theta/2)))
	m.Set(1, 1, cmplx.Exp(complex(0, theta/2)))
	return m
}

func ry(theta float64) *cmat.Dense {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	m := cmat.NewDense(2, 2, nil)
	m.Set(0, 0, c)
	m.Set(0, 1, -s)
	m.Set(1, 0, s)
	m.Set(1, 1, c)
	return m
}

// reconstruct builds e^{i delta} Rz(-alpha) Ry(-beta) Rz(-gamma).
func reconstruct(a Angles) *cmat.Dense {
	phase := cmplx.Exp(complex(0, a.Delta))
	m := cmat.Product(rz(-a.Alpha), cmat.Product(ry(-a.Beta), rz(-a.Gamma)))
	return cmat.Scale(phase, m)
}

func TestDecomposeIdentity(t *testing.T) {
	id := cmat.Identity(2)
	a := Decompose(id)
	got := reconstruct(a)
	assert.Truef(t, cmat.EqualApprox(got, id, 1e-9), "reconstruction mismatch for identity:\n%s", got)
}

func TestDecomposeHadamard(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	h := cmat.NewDense(2, 2, []complex128{s, s, s, -s})
	a := Decompose(h)
	got := reconstruct(a)
	assert.Truef(t, cmat.EqualApprox(got, h, 1e-9), "reconstruction mismatch for Hadamard:\n%s", got)
}

func TestDecomposePauliX(t *testing.T) {
	x := cmat.NewDense(2, 2, []complex128{0, 1, 1, 0})
	a := Decompose(x)
	got := reconstruct(a)
	assert.Truef(t, cmat.EqualApprox(got, x, 1e-9), "reconstruction mismatch for X:\n%s", got)
}

func TestDecomposeArbitraryUnitary(t *testing.T) {
	// A fixed unitary built from known angles, reconstructed and
	// re-decomposed to check round-trip stability rather than exact angle
	// equality (Euler angles are not unique at this matrix).
	want := Angles{Alpha: 0.7, Beta: 1.1, Gamma: -0.4, Delta: 0.2}
	u := reconstruct(want)
	got := Decompose(u)
	back := reconstruct(got)
	assert.Truef(t, cmat.EqualApprox(back, u, 1e-9), "round-trip mismatch:\nwant %s\ngot  %s", u, back)
}

func TestInstructionsOrder(t *testing.T) {
	a := Angles{Alpha: 1, Beta: 2, Gamma: 3, Delta: 4}
	assert.Equal(t, [3]float64{-3, -2, -1}, a.Instructions())
}
