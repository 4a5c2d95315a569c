// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cqr implements the complex Householder QR factorization used by
// internal/csd's thin CSD re-stabilization step. gonum.org/v1/gonum/mat
// has no complex QR, so this reproduces the classical reflector
// construction (Golub & Van Loan, Algorithm 5.1.1) directly in complex
// arithmetic, following the same accumulate-as-you-go structure as
// katalvlaran/lvlath's matrix/ops/qr.go and the historical mat64 QR in the
// corpus, adapted column by column for complex128 entries.
package cqr
