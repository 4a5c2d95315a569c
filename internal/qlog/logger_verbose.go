// Copyright ©2024 The csd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build qlogverbose

package qlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level diagnostic logger for the decomposition
// recursion. Built with the qlogverbose tag, it renders console-formatted
// output with caller information to os.Stderr.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
