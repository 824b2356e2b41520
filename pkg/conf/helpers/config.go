// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package confhelpers

import (
	"testing"

	"github.com/wrgl/txview/pkg/testutils"
)

// MockGlobalConf points the global config at a temporary directory, either
// through XDG_CONFIG_HOME or through HOME, and returns that directory.
func MockGlobalConf(t *testing.T, setXDGConfigHome bool) string {
	t.Helper()
	dir := testutils.TempDir(t, "test_txview_config")
	if setXDGConfigHome {
		t.Setenv("XDG_CONFIG_HOME", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", dir)
	}
	return dir
}

// MockSystemConf moves the system config into a temporary directory
func MockSystemConf(t *testing.T) string {
	t.Helper()
	dir := testutils.TempDir(t, "test_txview_config")
	t.Setenv("TXVIEW_SYSTEM_CONFIG_DIR", dir)
	return dir
}
