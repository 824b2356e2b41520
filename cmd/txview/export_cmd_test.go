// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/txview/pkg/export"
	"github.com/wrgl/txview/pkg/testutils"
)

func TestExportCmdStdout(t *testing.T) {
	isolateConfig(t)
	fp := testutils.WriteDocument(t, "transactions.json", testDocument())

	cmd := RootCmd()
	cmd.SetArgs([]string{"export", "-", "--data", fp, "--delimiter", ";", "--sort", "company", "--desc"})
	assertCmdOutput(t, cmd, strings.Join([]string{
		"Company;Reference;Date;Subtotal;Surcharge;Total Amount;Status",
		"Coho;TXN-2;Feb 5, 2024 2:30 PM;$50.00;$1.00;$51.00;Pending",
		"Adatum, Inc.;TXN-1;Jan 10, 2024 10:00 AM;$1,000.00;$20.00;$1,020.00;Settled",
		"",
	}, "\n"))

	cmd = RootCmd()
	cmd.SetArgs([]string{"export", "-", "--data", fp, "--delimiter", ";;"})
	assertCmdFailed(t, cmd, "", fmt.Errorf(`delimiter must be a single character, got ";;"`))
}

func TestExportCmdFile(t *testing.T) {
	dir := isolateConfig(t)
	fp := testutils.WriteDocument(t, "transactions.json", testDocument())
	out := filepath.Join(dir, "out.csv")

	cmd := RootCmd()
	cmd.SetArgs([]string{"export", out, "--data", fp, "--company", "adatum*"})
	assertCmdOutput(t, cmd, fmt.Sprintf("Exported 1 transactions to %s\n", out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		export.Header(),
		{"Adatum, Inc.", "TXN-1", "Jan 10, 2024 10:00 AM", "$1,000.00", "$20.00", "$1,020.00", "Settled"},
	}, records)

	cmd = RootCmd()
	cmd.SetArgs([]string{"export", filepath.Join(dir, "out.pdf"), "--data", fp})
	assertCmdFailed(t, cmd, "", export.ErrUnsupportedFormat)
}
