// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmat

// ErrShape and ErrSquare mark programmer errors: a caller asked for an
// operation on operands whose dimensions cannot possibly agree. These are
// panics, not returned errors, mirroring mat.Dense's own panic(ErrShape)
// convention: a dimension mismatch at this layer means a bug upstream, not
// bad user input, which is instead reported as unitary.ErrBadShape.
const (
	ErrShape  = constErr("cmat: dimension mismatch")
	ErrSquare = constErr("cmat: expect square matrix")
	ErrIndex  = constErr("cmat: index out of range")
)

type constErr string

func (e constErr) Error() string { return string(e) }
