// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeNonTerminal(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	assert.False(t, IsTerminal(buf))
	assert.Equal(t, "wrote 3 transactions", Colorize(buf).Color("[green]wrote [bold]3[reset] transactions"))
}

func TestCombineExamples(t *testing.T) {
	assert.Equal(t, "  # first\n  txview list\n\n  # second\n  txview gen -n 5", CombineExamples([]Example{
		{Comment: "first", Line: "txview list"},
		{Comment: "second", Line: "txview gen -n 5"},
	}))
}
