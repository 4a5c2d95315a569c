// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/quantumlib-go/csd/internal/cmat"
	"github.com/quantumlib-go/csd/internal/csd"
	"github.com/quantumlib-go/csd/internal/grayk"
	"github.com/quantumlib-go/csd/internal/qconfig"
	"github.com/quantumlib-go/csd/internal/qlog"
	"github.com/quantumlib-go/csd/internal/zyz"
)

// Decompose checks that m is unitary within tol, then recursively
// decomposes it, appending the resulting angle stream to s. Callers build m
// from a column-major flat array via cmat.NewDense, whose backing store is
// row-major; that mismatch already gives m the transpose the recursion
// requires, so no further transpose happens here.
func Decompose(s *Stream, m *cmat.Dense, tol qconfig.Tolerances) error {
	rows, _ := m.Dims()
	if residual := cmat.UnitarityResidual(m); residual > tol.Unitarity {
		return fmt.Errorf("%w (residual %.3g):\n%s", ErrNonUnitary, residual, m)
	}
	numberOfBits := bits.Len(uint(rows)) - 1
	qlog.Log.Debug().Int("qubits", numberOfBits).Msg("starting decomposition")
	return decompFunction(s, m, numberOfBits, tol)
}

// decompFunction implements the recursion of §4.1: the ZYZ base case at
// n==1, the structural block-diagonal shortcut, and the general
// CSD-driven recursive descent.
func decompFunction(s *Stream, m *cmat.Dense, n int, tol qconfig.Tolerances) error {
	if n == 1 {
		a := zyz.Decompose(m)
		inst := a.Instructions()
		s.Append(inst[0], inst[1], inst[2])
		return nil
	}

	size, _ := m.Dims()
	half := size / 2
	topRight := m.Block(0, half, half, size)
	botLeft := m.Block(half, size, 0, half)
	if topRight.IsZeroBlock(tol.ZeroBlock) && botLeft.IsZeroBlock(tol.ZeroBlock) {
		qlog.Log.Debug().Int("n", n).Msg("structural block-diagonal shortcut")
		top := m.Block(0, half, 0, half)
		bot := m.Block(half, size, half, size)
		if err := demultiplex(s, top, bot, n-1, tol); err != nil {
			return err
		}
		s.Append(make([]float64, gatesSaved(n))...)
		return nil
	}

	u1, u2, v1, v2, _, sBlock, err := csd.ThinCSD(m, tol.Stabilize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLinAlgFailure, err)
	}

	if err := demultiplex(s, v1, v2, n-1, tol); err != nil {
		return err
	}
	yAngles, err := grayk.SolveY(sBlock, n-1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLinAlgFailure, err)
	}
	s.Append(yAngles...)
	if err := demultiplex(s, u1, u2, n-1, tol); err != nil {
		return err
	}
	return nil
}

// gatesSaved counts the rotation-gate placeholders skipped by taking the
// structural block-diagonal shortcut at recursion depth n instead of a
// full CSD descent.
func gatesSaved(n int) int {
	nf := float64(n)
	full := 3*math.Pow(2, nf-1)*(math.Pow(2, nf)-1)
	split := 2*3*math.Pow(2, nf-2)*(math.Pow(2, nf-1)-1) + math.Pow(2, nf-2)*(math.Pow(2, nf)-2)
	return int(math.Round(full - split))
}
