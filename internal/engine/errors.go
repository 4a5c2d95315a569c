// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "errors"

// ErrNonUnitary is returned by Decompose when the input matrix fails the
// configured unitarity tolerance. unitary.ErrNonUnitary aliases this
// value so callers of the public API can match it with errors.Is without
// this package importing unitary (which would create an import cycle).
var ErrNonUnitary = errors.New("engine: matrix is not unitary within tolerance")

// ErrNotImplemented is returned by demultiplex when it encounters two
// structurally equal blocks of size greater than 2, a case the reference
// algorithm leaves unhandled.
var ErrNotImplemented = errors.New("engine: demultiplexing equal blocks of size > 2 is not implemented")

// ErrLinAlgFailure wraps a failure from internal/csd, internal/lareal, or
// internal/grayk encountered during recursion.
var ErrLinAlgFailure = errors.New("engine: linear algebra step failed")
