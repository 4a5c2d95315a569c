// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !qlogverbose

package qlog

import "github.com/rs/zerolog"

// Log is the package-level diagnostic logger for the decomposition
// recursion. Without the qlogverbose build tag it is silenced, discarding
// every event at zero cost beyond the level check.
var Log = zerolog.Nop()
