// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine drives the recursive decomposition: it checks the input
// is unitary, dispatches to internal/zyz at the recursion base, to
// internal/csd and internal/grayk in the general case, and demultiplexes
// block-diagonal unitaries via internal/lareal's general eigensolver.
// Results are appended to a Stream, an explicit accumulator threaded
// through every recursive call in place of the mutable member-vector side
// effect the original algorithm uses.
package engine
