// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unitary

import (
	"math"
	"math/bits"

	"github.com/quantumlib-go/csd/internal/cmat"
	"github.com/quantumlib-go/csd/internal/engine"
	"github.com/quantumlib-go/csd/internal/qconfig"
)

// Unitary is a handle on a single decomposition run: construct it with
// New, call Decompose exactly once, then read the result with
// Instructions.
type Unitary struct {
	name         string
	input        []complex128
	nQubits      int
	instructions *engine.Stream
	decomposed   bool
}

// New constructs a Unitary from a flat, column-major sequence of complex
// entries. len(data) must be N², with N a power of two and N ≥ 2;
// otherwise New returns ErrBadShape. data is copied; the caller retains
// ownership of its own slice.
func New(name string, data []complex128) (*Unitary, error) {
	total := len(data)
	if total == 0 {
		return nil, ErrBadShape
	}
	n := int(math.Round(math.Sqrt(float64(total))))
	if n*n != total || n < 2 || n&(n-1) != 0 {
		return nil, ErrBadShape
	}
	cp := make([]complex128, total)
	copy(cp, data)
	return &Unitary{
		name:    name,
		input:   cp,
		nQubits: bits.Len(uint(n)) - 1,
	}, nil
}

// Decompose synthesizes u's matrix into an angle stream, readable
// afterwards via Instructions. It is single-shot: a second call returns
// ErrAlreadyDecomposed and leaves u unchanged.
func (u *Unitary) Decompose() error {
	if u.decomposed {
		return ErrAlreadyDecomposed
	}
	n := 1 << uint(u.nQubits)
	data := make([]complex128, len(u.input))
	copy(data, u.input)
	m := cmat.NewDense(n, n, data)

	stream := engine.NewStream()
	if err := engine.Decompose(stream, m, qconfig.Default); err != nil {
		return err
	}
	u.instructions = stream
	u.decomposed = true
	return nil
}

// Size returns the length of the input array, matching the reference
// implementation's double-returning size accessor.
func (u *Unitary) Size() float64 {
	return float64(len(u.input))
}

// Instructions returns a copy of the accumulated angle stream. It is nil
// until Decompose has succeeded.
func (u *Unitary) Instructions() []float64 {
	if u.instructions == nil {
		return nil
	}
	return u.instructions.Values()
}

// IsDecomposed reports whether Decompose has already succeeded on u.
func (u *Unitary) IsDecomposed() bool {
	return u.decomposed
}

// Name returns the diagnostic identifier u was constructed with.
func (u *Unitary) Name() string {
	return u.name
}
