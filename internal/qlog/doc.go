// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qlog exposes a package-level zerolog.Logger, Log, used by
// internal/engine to trace recursion depth and structural shortcuts. By
// default it discards every event; building with the qlogverbose tag
// switches it to a console writer on os.Stderr with caller information,
// mirroring
// itohio/EasyRobot's pkg/logger build-tag split.
package qlog
