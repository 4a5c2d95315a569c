// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grayk

import "errors"

// ErrSingular is returned when the Mk solve fails to find a solution,
// which would indicate a malformed Mk rather than bad input (Mk is
// always full rank by construction).
var ErrSingular = errors.New("grayk: Mk solve failed")
