// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDir creates a directory that is removed when the test ends. On Github
// Actions the directory is placed under $RUNNER_TEMP.
func TempDir(t *testing.T, pattern string) string {
	t.Helper()
	dir, err := os.MkdirTemp(os.Getenv("RUNNER_TEMP"), pattern)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// TempFile writes content to a new file with the given name and returns its
// path.
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	fp := filepath.Join(TempDir(t, "txview"), name)
	require.NoError(t, os.WriteFile(fp, content, 0644))
	return fp
}

// ChTempDir changes the working directory to a new temporary directory until
// the test ends
func ChTempDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := TempDir(t, "")
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
	return dir
}
