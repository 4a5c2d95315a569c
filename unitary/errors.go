// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unitary

import (
	"errors"

	"github.com/quantumlib-go/csd/internal/engine"
)

// ErrBadShape is returned by New when the input length is not a perfect
// square, or its square root is not a power of two.
var ErrBadShape = errors.New("unitary: input length must be the square of a power of two")

// ErrAlreadyDecomposed is returned by Decompose when called a second time
// on the same handle.
var ErrAlreadyDecomposed = errors.New("unitary: Decompose already called")

// ErrNonUnitary, ErrNotImplemented, and ErrLinAlgFailure alias the
// internal/engine sentinels so callers can match them with errors.Is
// without reaching into an internal package.
var (
	ErrNonUnitary     = engine.ErrNonUnitary
	ErrNotImplemented = engine.ErrNotImplemented
	ErrLinAlgFailure  = engine.ErrLinAlgFailure
)
