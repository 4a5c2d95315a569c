// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zyz

import (
	"math"
	"math/cmplx"

	"github.com/quantumlib-go/csd/internal/cmat"
)

// Angles holds the Euler decomposition of a 2×2 unitary U as
//
//	U = e^{iDelta} · Rz(-Alpha) · Ry(-Beta) · Rz(-Gamma),
//
// with Rz(θ) = diag(e^{-iθ/2}, e^{iθ/2}) and Ry(θ) = [cos θ/2, -sin θ/2;
// sin θ/2, cos θ/2]. Equivalently, the Instructions triple applied in order
// as Rz, Ry, Rz gates reproduces U up to the global phase.
//
// Delta carries the global phase, which the recursion driver discards: it
// is recorded here only for diagnostics.
type Angles struct {
	Alpha, Beta, Gamma, Delta float64
}

// Decompose computes the ZYZ Euler angles of the 2×2 matrix u, following
// the matrix overload of the reference implementation (delta = atan2(...)
// / rows(), i.e. divided by 2, not by matrix.size() as the unused
// vector-taking overload does — see DESIGN.md's Open Question entry).
func Decompose(u *cmat.Dense) Angles {
	u00, u01 := u.At(0, 0), u.At(0, 1)
	u10, u11 := u.At(1, 0), u.At(1, 1)

	det := u00*u11 - u10*u01
	delta := math.Atan2(imag(det), real(det)) / 2

	phase := cmplx.Exp(complex(0, -delta))
	a := phase * u00
	b := phase * u01

	sw := math.Sqrt(imag(b)*imag(b) + real(b)*real(b) + imag(a)*imag(a))
	var wx, wy, wz float64
	if sw > 0 {
		wx = imag(b) / sw
		wy = real(b) / sw
		wz = imag(a) / sw
	}

	t1 := math.Atan2(imag(a), real(a))
	t2 := math.Atan2(imag(b), real(b))
	alpha := t1 + t2
	gamma := t1 - t2
	beta := 2 * math.Atan2(sw*math.Hypot(wx, wy), math.Hypot(real(a), wz*sw))

	return Angles{Alpha: alpha, Beta: beta, Gamma: gamma, Delta: delta}
}

// Instructions returns the three angles in the order the recursion driver
// appends them to the instruction stream: (-gamma, -beta, -alpha).
func (a Angles) Instructions() [3]float64 {
	return [3]float64{-a.Gamma, -a.Beta, -a.Alpha}
}
