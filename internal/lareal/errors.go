// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lareal

import "errors"

// ErrNoConverge is returned when the underlying gonum eigensolver fails to
// converge on the real-embedded matrix.
var ErrNoConverge = errors.New("lareal: eigensolver did not converge")

// ErrRankMismatch is returned when the +i-eigenspace projection did not
// recover exactly the expected number of independent eigenvectors — a
// numerical-stability failure rather than bad input, since the embedding
// construction guarantees the space has the right dimension in exact
// arithmetic.
var ErrRankMismatch = errors.New("lareal: could not separate eigenspaces")
