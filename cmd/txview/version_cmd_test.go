// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	cmd := RootCmd()
	cmd.SetArgs([]string{"version"})
	assertCmdOutput(t, cmd, "txview v"+strings.TrimSpace(version)+"\n")
}
