// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qconfig holds the numerical tolerances used throughout the
// decomposition engine. Defaults are production values; FromYAML allows
// overriding them from an in-memory YAML document, following
// itohio/EasyRobot's use of gopkg.in/yaml.v3 for its own configuration
// types.
package qconfig
