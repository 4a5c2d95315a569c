// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmat

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Dense is a dense, row-major complex matrix. It is the complex counterpart
// of gonum.org/v1/gonum/mat.Dense used throughout this module, kept
// deliberately small: just enough surface for the decomposition engine.
type Dense struct {
	rows, cols int
	data       []complex128
}

// NewDense creates an r×c matrix. If data is nil, a new zeroed slice is
// allocated. If data is non-nil its length must equal r*c and it is used
// directly as backing storage, row-major (the (i*c+j)-th element is the
// (i,j)-th entry).
func NewDense(r, c int, data []complex128) *Dense {
	if r <= 0 || c <= 0 {
		panic(ErrShape)
	}
	if data == nil {
		data = make([]complex128, r*c)
	} else if len(data) != r*c {
		panic(ErrShape)
	}
	return &Dense{rows: r, cols: c, data: data}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	m := NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Dims returns the matrix dimensions.
func (m *Dense) Dims() (r, c int) { return m.rows, m.cols }

// At returns the (i,j)-th element.
func (m *Dense) At(i, j int) complex128 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	return m.data[i*m.cols+j]
}

// Set assigns the (i,j)-th element.
func (m *Dense) Set(i, j int, v complex128) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	m.data[i*m.cols+j] = v
}

// Clone returns an independent copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) []complex128 {
	out := make([]complex128, m.rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}

// SetCol overwrites column j.
func (m *Dense) SetCol(j int, v []complex128) {
	if len(v) != m.rows {
		panic(ErrShape)
	}
	for i, x := range v {
		m.Set(i, j, x)
	}
}

// ScaleCol multiplies column j by f in place.
func (m *Dense) ScaleCol(j int, f complex128) {
	for i := 0; i < m.rows; i++ {
		m.Set(i, j, m.At(i, j)*f)
	}
}

// Block extracts the sub-matrix spanning rows [r0,r1) and columns [c0,c1).
func (m *Dense) Block(r0, r1, c0, c1 int) *Dense {
	if r0 < 0 || c0 < 0 || r1 > m.rows || c1 > m.cols || r0 >= r1 || c0 >= c1 {
		panic(ErrIndex)
	}
	out := NewDense(r1-r0, c1-c0, nil)
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			out.Set(i-r0, j-c0, m.At(i, j))
		}
	}
	return out
}

// SetBlock writes src into m starting at (r0, c0).
func (m *Dense) SetBlock(r0, c0 int, src *Dense) {
	sr, sc := src.Dims()
	if r0 < 0 || c0 < 0 || r0+sr > m.rows || c0+sc > m.cols {
		panic(ErrIndex)
	}
	for i := 0; i < sr; i++ {
		for j := 0; j < sc; j++ {
			m.Set(r0+i, c0+j, src.At(i, j))
		}
	}
}

// H returns the conjugate transpose of m (a new matrix; no implicit view,
// unlike gonum's Conjugate wrapper, since every caller here immediately
// consumes the result numerically).
func (m *Dense) H() *Dense {
	out := NewDense(m.cols, m.rows, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}

// Mul sets m = a*b. a and b must have conforming dimensions.
func (m *Dense) Mul(a, b *Dense) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(ErrShape)
	}
	out := make([]complex128, ar*bc)
	for i := 0; i < ar; i++ {
		for k := 0; k < ac; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < bc; j++ {
				out[i*bc+j] += aik * b.At(k, j)
			}
		}
	}
	m.rows, m.cols, m.data = ar, bc, out
}

// Product returns a new matrix holding a*b.
func Product(a, b *Dense) *Dense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := NewDense(ar, bc, nil)
	out.Mul(a, b)
	return out
}

// Scale returns a new matrix holding f*a.
func Scale(f complex128, a *Dense) *Dense {
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= f
	}
	return out
}

// IsZeroBlock reports whether every entry of m has absolute value at most
// tol (used for the structural "already block-diagonal" shortcut).
func (m *Dense) IsZeroBlock(tol float64) bool {
	for _, v := range m.data {
		if cmplx.Abs(v) > tol {
			return false
		}
	}
	return true
}

// EqualApprox reports whether a and b have the same shape and are
// element-wise equal within tol.
func EqualApprox(a, b *Dense, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// UnitarityResidual returns ‖M·M* − I‖_∞, the infinity norm used by
// unitary.Decompose to validate its input before recursing.
func UnitarityResidual(m *Dense) float64 {
	n, c := m.Dims()
	if n != c {
		panic(ErrSquare)
	}
	prod := Product(m, m.H())
	var max float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if d := cmplx.Abs(prod.At(i, j) - want); d > max {
				max = d
			}
		}
	}
	return max
}

// Transpose returns the plain (non-conjugating) transpose of m.
func (m *Dense) Transpose() *Dense {
	out := NewDense(m.cols, m.rows, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// String renders m for diagnostic error messages.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		parts := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			v := m.At(i, j)
			parts[j] = fmt.Sprintf("%6.3f%+6.3fi", real(v), imag(v))
		}
		fmt.Fprintf(&b, "[%s]\n", strings.Join(parts, ", "))
	}
	return b.String()
}

// AntiDiagonal returns the n×n anti-diagonal permutation matrix z used by
// thin CSD to reverse singular-value order.
func AntiDiagonal(n int) *Dense {
	z := NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		z.Set(i, n-1-i, 1)
	}
	return z
}

// AbsDiag returns the absolute values of the diagonal of a square matrix.
func (m *Dense) AbsDiag() []float64 {
	n, c := m.Dims()
	if n != c {
		panic(ErrSquare)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = cmplx.Abs(m.At(i, i))
	}
	return out
}

// RealDiag returns the real parts of the diagonal of a square matrix.
func (m *Dense) RealDiag() []float64 {
	n, c := m.Dims()
	if n != c {
		panic(ErrSquare)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = real(m.At(i, i))
	}
	return out
}

// NaNGuard panics if m contains a NaN or infinite entry; used defensively
// after numerically sensitive steps, mirroring lvlath's ErrNaNInf policy
// but kept as an internal invariant check since it signals a bug in this
// package rather than bad caller input.
func (m *Dense) NaNGuard() {
	for _, v := range m.data {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) || math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
			panic("cmat: NaN or Inf produced")
		}
	}
}
