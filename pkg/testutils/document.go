// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package testutils

import (
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/ledger/fake"
)

// FakeDocument generates a document with n transactions. The same seed always
// gives the same document.
func FakeDocument(seed int64, n int) *ledger.Document {
	return fake.Document(gofakeit.New(seed), n)
}

// WriteDocument writes doc into a new temporary directory under the given
// name and returns its path.
func WriteDocument(t *testing.T, name string, doc *ledger.Document) string {
	t.Helper()
	path := filepath.Join(TempDir(t, "txview"), name)
	require.NoError(t, ledger.WriteFile(path, doc))
	return path
}
