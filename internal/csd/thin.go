// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csd

import (
	"fmt"

	"github.com/quantumlib-go/csd/internal/cmat"
	"github.com/quantumlib-go/csd/internal/cqr"
)

// ThinCSD factors the even-dimension n×n unitary u into
//
//	u = [u1 0 ] [ c s] [v1  0]
//	    [0  u2] [-s c] [0  v2]
//
// with c real non-negative diagonal, s real non-positive diagonal (s is
// negated after sign normalization), c²+s² = I, and u1, u2, v1, v2 unitary
// of size n/2. stabilize is the cosine cutoff (qconfig.Default's Stabilize
// field, normally 1/√2): columns whose cosine lies above it are routed
// through the re-stabilization branch.
func ThinCSD(u *cmat.Dense, stabilize float64) (u1, u2, v1, v2, c, s *cmat.Dense, err error) {
	n, _ := u.Dims()
	p := n / 2

	q1 := u.Block(0, p, 0, p)
	q2 := u.Block(p, n, 0, p)

	u1raw, v1raw, sv, err := thinSVD(q1)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	c = diagMatrix(sv)

	z := cmat.AntiDiagonal(p)
	u1 = cmat.Product(u1raw, z)
	v1 = cmat.Product(v1raw, z)
	c = cmat.Product(z, cmat.Product(c, z))

	q2p := cmat.Product(q2, v1)

	k := 0
	for j := 1; j < p; j++ {
		if real(c.At(j, j)) <= stabilize {
			k = j
		}
	}

	b := q2p.Block(0, p, 0, k+1)
	qq, _ := cqr.Decompose(b)
	u2 = qq
	s = cmat.Product(u2.H(), q2p)

	if k < p-1 {
		k = k + 1
		sub := s.Block(k, p, k, p)
		subU, subV, subSv, serr := thinSVD(sub)
		if serr != nil {
			return nil, nil, nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrLinAlg, serr)
		}
		s.SetBlock(k, k, diagMatrix(subSv))

		cBlock := c.Block(0, p, k, p)
		c.SetBlock(0, k, cmat.Product(cBlock, subV))

		u2Block := u2.Block(0, p, k, p)
		u2.SetBlock(0, k, cmat.Product(u2Block, subU))

		v1Block := v1.Block(0, p, k, p)
		v1.SetBlock(0, k, cmat.Product(v1Block, subV))

		cSub := c.Block(k, p, k, p)
		qrQ, qrR := cqr.Decompose(cSub)
		c.SetBlock(k, k, qrR)

		u1Block := u1.Block(0, p, k, p)
		u1.SetBlock(0, k, cmat.Product(u1Block, qrQ))
	}

	for j := 0; j < p; j++ {
		if real(c.At(j, j)) < 0 {
			c.Set(j, j, -c.At(j, j))
			u1.ScaleCol(j, -1)
		}
		if real(s.At(j, j)) < 0 {
			s.Set(j, j, -s.At(j, j))
			u2.ScaleCol(j, -1)
		}
	}

	v1 = v1.H()
	s = cmat.Scale(-1, s)

	v2 = cmat.NewDense(p, p, nil)
	u01 := u.Block(0, p, p, n)
	u11 := u.Block(p, n, p, n)
	sAbs, cAbs := s.AbsDiag(), c.AbsDiag()
	for i := 0; i < p; i++ {
		if sAbs[i] > cAbs[i] {
			tmp := cmat.Product(u1.H(), u01)
			setRowScaled(v2, i, tmp, i, 1/s.At(i, i))
		} else {
			tmp := cmat.Product(u2.H(), u11)
			setRowScaled(v2, i, tmp, i, 1/c.At(i, i))
		}
	}

	for _, m := range []*cmat.Dense{u1, u2, v1, v2, c, s} {
		m.NaNGuard()
	}

	return u1, u2, v1, v2, c, s, nil
}

// diagMatrix builds a real diagonal complex matrix from sv.
func diagMatrix(sv []float64) *cmat.Dense {
	n := len(sv)
	m := cmat.NewDense(n, n, nil)
	for i, v := range sv {
		m.Set(i, i, complex(v, 0))
	}
	return m
}

// setRowScaled writes dst[dstRow, :] = src[srcRow, :] * factor.
func setRowScaled(dst *cmat.Dense, dstRow int, src *cmat.Dense, srcRow int, factor complex128) {
	_, cols := src.Dims()
	for j := 0; j < cols; j++ {
		dst.Set(dstRow, j, src.At(srcRow, j)*factor)
	}
}
