// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lareal solves complex eigenproblems by reduction to the real
// eigenproblems gonum.org/v1/gonum/mat already solves robustly.
//
// For a complex matrix A = X + iY, define the real embedding
//
//	R(A) = [ X  -Y ]
//	       [ Y   X ]
//
// R is a faithful C-algebra homomorphism (R(AB) = R(A)R(B), R(I) = I) and
// satisfies R(A*) = R(A)^T. Consequently R(H) is real symmetric whenever H
// is Hermitian, and R(U) is real orthogonal whenever U is unitary — both
// cases gonum's mat.EigenSym and mat.Eigen handle well.
//
// R(A) commutes with J = R(iI) = [[0,-I],[I,0]], so C^2n splits into the
// ±i eigenspaces of J, each carrying a copy of A's spectrum (the +i
// eigenspace) or its conjugate (the -i eigenspace) — see eigen.go for the
// projector used to separate the two and recover A's own eigenpairs from
// R(A)'s 2n-dimensional real eigendecomposition.
package lareal
