// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qconfig

import "gopkg.in/yaml.v3"

// Tolerances groups the numerical thresholds that decide when a matrix is
// "unitary enough", when a block counts as structurally zero, when two
// blocks count as equal, and the CSD singular-value re-stabilization
// cutoff.
type Tolerances struct {
	// Unitarity bounds ‖M·M* − I‖_∞ at the entry point of Decompose.
	Unitarity float64 `yaml:"unitarity"`
	// ZeroBlock bounds the max-abs entry of a block treated as zero for
	// the structural block-diagonal shortcut.
	ZeroBlock float64 `yaml:"zero_block"`
	// Equality bounds the max-abs difference between two blocks treated
	// as structurally equal by the demultiplexer.
	Equality float64 `yaml:"equality"`
	// Stabilize is the CSD cosine threshold (1/√2): ThinCSD re-stabilizes
	// the columns whose cosine lies above it.
	Stabilize float64 `yaml:"stabilize"`
}

// Default holds the production tolerance values.
var Default = Tolerances{
	Unitarity: 1e-5,
	ZeroBlock: 1e-14,
	Equality:  1e-9,
	Stabilize: 1 / 1.4142135623730951,
}

// FromYAML parses doc as a YAML document overriding Default's fields,
// returning Default unchanged for any field the document omits. This is a
// pure in-memory value transform: the engine never reads configuration
// from disk or the environment on its own.
func FromYAML(doc []byte) (Tolerances, error) {
	t := Default
	if err := yaml.Unmarshal(doc, &t); err != nil {
		return Tolerances{}, err
	}
	return t, nil
}
