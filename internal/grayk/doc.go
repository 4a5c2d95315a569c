// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grayk builds the 2^k×2^k Gray-code sign matrix Mk and solves
// Mk·t = v for the uniformly-controlled rotation angles t, using
// gonum.org/v1/gonum/mat's QR solver. Mk's entries are computed from the
// parity of popcount(i AND gray(j)), not from pow(-1, i*gray(j)): the two
// differ (for i=3, gray(j)=2 the first gives -1, the second 1), and only
// the parity form yields a full-rank Mk.
package grayk
