// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zyz decomposes a 2×2 special-unitary (up to global phase) matrix
// into Euler angles about Z, Y, Z.
package zyz
