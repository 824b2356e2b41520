// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"strings"
)

type Example struct {
	Comment string
	Line    string
}

// CombineExamples formats examples for cobra.Command.Example
func CombineExamples(sl []Example) string {
	lines := make([]string, len(sl))
	for i, ex := range sl {
		lines[i] = "  # " + ex.Comment + "\n  " + ex.Line
	}
	return strings.Join(lines, "\n\n")
}
