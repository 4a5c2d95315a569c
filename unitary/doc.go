// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unitary is the public entry point for the decomposition engine.
// A Unitary is constructed from a flat, column-major complex matrix of a
// power-of-two dimension; Decompose synthesizes it into an ordered stream
// of single-qubit and uniformly-controlled rotation angles, read back via
// Instructions.
package unitary
