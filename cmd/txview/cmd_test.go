// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	confhelpers "github.com/wrgl/txview/pkg/conf/helpers"
	"github.com/wrgl/txview/pkg/errors"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/testutils"
)

func assertCmdOutput(t *testing.T, cmd *cobra.Command, output string) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	err := cmd.Execute()
	assert.Equal(t, output, buf.String())
	require.NoError(t, err)
}

func assertCmdFailed(t *testing.T, cmd *cobra.Command, output string, err error) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	exErr := cmd.Execute()
	assert.True(t, errors.Contains(exErr, err), "expecting error %v to contain error %v", exErr, err)
	assert.Equal(t, output, buf.String())
}

func cmdOutput(t *testing.T, args ...string) string {
	t.Helper()
	cmd := RootCmd()
	cmd.SetArgs(args)
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

// isolateConfig keeps the config files of the machine running the tests out
// of the way.
func isolateConfig(t *testing.T) (dir string) {
	t.Helper()
	confhelpers.MockGlobalConf(t, true)
	confhelpers.MockSystemConf(t)
	t.Setenv("TXVIEW_DATA", "")
	t.Setenv("TXVIEW_CONFIG", "")
	return testutils.ChTempDir(t)
}

func testDocument() *ledger.Document {
	return &ledger.Document{
		Transactions: []ledger.Transaction{
			{Company: "Adatum, Inc.", Reference: "TXN-1", Date: "2024-01-10T10:00:00", SubTotal: ledger.AmountFromFloat(1000), Surcharge: ledger.AmountFromFloat(20), Amount: ledger.AmountFromFloat(1020), Status: 2},
			{Company: "Coho", Reference: "TXN-2", Date: "2024-02-05T14:30:00", SubTotal: ledger.AmountFromFloat(50), Surcharge: ledger.AmountFromFloat(1), Amount: ledger.AmountFromFloat(51), Status: 1},
		},
		Statuses: []ledger.Status{
			{Key: 1, Name: "Pending"},
			{Key: 2, Name: "Settled"},
			{Key: 4, Name: "Voided"},
		},
	}
}
