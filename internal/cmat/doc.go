// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmat provides a minimal dense complex matrix type and the block
// operations the decomposition engine needs: adjoint, sub-block extraction
// and assignment, products, and approximate structural equality.
//
// gonum.org/v1/gonum/mat ships mat.CDense for complex storage but no
// complex factorizations (SVD, QR, eigendecomposition); those live in
// internal/lareal and internal/cqr, built on top of the type defined here.
package cmat
