// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grayk

import "math/bits"

// Build returns the 2^k×2^k Gray-code sign matrix Mk, with
// Mk[i][j] = (-1)^popcount(i & gray(j)), gray(j) = j XOR (j>>1), stored
// row-major.
func Build(k int) [][]float64 {
	n := 1 << uint(k)
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			g := j ^ (j >> 1)
			if bits.OnesCount(uint(i&g))%2 == 0 {
				row[j] = 1
			} else {
				row[j] = -1
			}
		}
		m[i] = row
	}
	return m
}
