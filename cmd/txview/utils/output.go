// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"io"
	"os"

	"github.com/mitchellh/colorstring"
	"golang.org/x/term"
)

// IsTerminal reports whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Colorize returns a colorstring colorizer that only emits escape codes when
// w is a terminal.
func Colorize(w io.Writer) *colorstring.Colorize {
	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !IsTerminal(w),
		Reset:   true,
	}
}
