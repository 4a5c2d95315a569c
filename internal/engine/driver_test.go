// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumlib-go/csd/internal/cmat"
	"github.com/quantumlib-go/csd/internal/qconfig"
)

func TestDecomposeIdentity4(t *testing.T) {
	s := NewStream()
	require.NoError(t, Decompose(s, cmat.Identity(4), qconfig.Default))
	assert.NotZero(t, s.Len())
}

func TestDecomposeBlockDiagonalTakesShortcut(t *testing.T) {
	x := cmat.NewDense(2, 2, []complex128{0, 1, 1, 0})
	y := cmat.NewDense(2, 2, []complex128{0, complex(0, -1), complex(0, 1), 0})
	blk := cmat.NewDense(4, 4, nil)
	blk.SetBlock(0, 0, x)
	blk.SetBlock(2, 2, y)

	s := NewStream()
	require.NoError(t, Decompose(s, blk, qconfig.Default))
	assert.Equal(t, make([]float64, gatesSaved(2)), s.Values()[s.Len()-gatesSaved(2):])
}

func TestDecomposeHadamardTensor(t *testing.T) {
	sv := complex(1/math.Sqrt2, 0)
	h := cmat.NewDense(2, 2, []complex128{sv, sv, sv, -sv})
	hh := cmat.NewDense(4, 4, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for a := 0; a < 2; a++ {
				for b := 0; b < 2; b++ {
					hh.Set(2*i+a, 2*j+b, h.At(i, j)*h.At(a, b))
				}
			}
		}
	}
	s := NewStream()
	require.NoError(t, Decompose(s, hh, qconfig.Default))
	assert.NotZero(t, s.Len())
}

func TestDecomposeRejectsNonUnitary(t *testing.T) {
	m := cmat.NewDense(2, 2, []complex128{2, 0, 0, 2})
	s := NewStream()
	err := Decompose(s, m, qconfig.Default)
	assert.ErrorIs(t, err, ErrNonUnitary)
}

func TestDecomposeDeterministic(t *testing.T) {
	x := cmat.NewDense(2, 2, []complex128{0, 1, 1, 0})
	y := cmat.NewDense(2, 2, []complex128{0, complex(0, -1), complex(0, 1), 0})
	blk := cmat.NewDense(4, 4, nil)
	blk.SetBlock(0, 0, x)
	blk.SetBlock(2, 2, y)

	s1, s2 := NewStream(), NewStream()
	require.NoError(t, Decompose(s1, blk.Clone(), qconfig.Default))
	require.NoError(t, Decompose(s2, blk.Clone(), qconfig.Default))

	if diff := cmp.Diff(s1.Values(), s2.Values()); diff != "" {
		t.Errorf("instruction stream not deterministic (-run1 +run2):\n%s", diff)
	}
}
