// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csd

import "errors"

// ErrLinAlg is returned when the Hermitian eigendecomposition behind
// ThinCSD's singular-value step fails; the underlying internal/lareal
// error's text is appended to the message.
var ErrLinAlg = errors.New("csd: linear algebra step failed")
