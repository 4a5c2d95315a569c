// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Stream is an append-only sequence of output angles, threaded explicitly
// through decompFunction and demultiplex so that the recursion's ordering
// depends only on the input matrix, never on shared mutable state.
type Stream struct {
	values []float64
}

// NewStream returns an empty Stream.
func NewStream() *Stream {
	return &Stream{}
}

// Append adds v, in order, to the end of the stream.
func (s *Stream) Append(v ...float64) {
	s.values = append(s.values, v...)
}

// Values returns a copy of the accumulated angles, in append order.
func (s *Stream) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of angles accumulated so far.
func (s *Stream) Len() int {
	return len(s.values)
}
