// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csd implements the thin Cosine-Sine Decomposition of an
// even-dimensioned unitary matrix, partitioned into equal quadrants:
//
//	U = [ Q1  U01 ] = [ u1      ] [ c  s] [ v1* 0  ]
//	    [ Q2  U11 ]   [     u2  ] [-s  c] [ 0  v2* ]
//
// gonum.org/v1/gonum/mat has no complex SVD, so the thin SVD of Q1 needed
// by step one is obtained from internal/lareal.HermitianEigen applied to
// the Gram matrix Q1*·Q1, and the QR-based re-stabilization steps use
// internal/cqr. The algorithm follows the structure of the reference
// CSD routine in the original source (thinCSD via Eigen::BDCSVD and
// Eigen::HouseholderQR), adapted to the primitives available here.
package csd
