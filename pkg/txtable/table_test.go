// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txtable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/sorter"
	"github.com/wrgl/txview/pkg/status"
	"github.com/wrgl/txview/pkg/void"
)

func testDocument() *ledger.Document {
	return &ledger.Document{
		Transactions: []ledger.Transaction{
			{Company: "Acme", Reference: "A", Date: "2024-03-01T09:15:00", Amount: ledger.AmountFromFloat(10), Status: 1},
			{Company: "Beta", Reference: "B", Date: "2024-02-01T16:05:00", Amount: ledger.AmountFromFloat(5), Status: 1},
			{Company: "Coho", Reference: "C", Date: "nope", Status: 99},
		},
		Statuses: []ledger.Status{{Key: 1, Name: "Pending"}, {Key: 4, Name: "Voided"}},
	}
}

func refs(txs []ledger.Transaction) []string {
	sl := make([]string, len(txs))
	for i, t := range txs {
		sl[i] = t.Reference
	}
	return sl
}

func TestNew(t *testing.T) {
	tbl := New(nil)
	assert.Empty(t, tbl.Displayed())
	assert.NotNil(t, tbl.Transactions())
	assert.NotNil(t, tbl.Statuses())
	assert.False(t, tbl.AllSelected())
	assert.Equal(t, "0 total transactions", tbl.TotalSummary())

	doc := testDocument()
	tbl = New(doc, WithLocation(time.UTC))
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, time.UTC, tbl.Location())
	assert.Equal(t, []string{"A", "B", "C"}, refs(tbl.Displayed()))
}

func TestRequestSort(t *testing.T) {
	tbl := New(testDocument(), WithLocation(time.UTC))
	tbl.RequestSort(ledger.FieldAmount)
	assert.Equal(t, sorter.Config{Key: ledger.FieldAmount}, tbl.SortConfig())
	assert.Equal(t, "ascending", tbl.SortState(ledger.FieldAmount))
	assert.Equal(t, "none", tbl.SortState(ledger.FieldDate))
	assert.Equal(t, "▲", tbl.SortIndicator(ledger.FieldAmount))
	assert.Equal(t, "", tbl.SortIndicator(ledger.FieldDate))
	// C has no amount so it compares as empty text
	assert.Equal(t, []string{"C", "B", "A"}, refs(tbl.Displayed()))

	tbl.RequestSort(ledger.FieldAmount)
	assert.Equal(t, "descending", tbl.SortState(ledger.FieldAmount))
	assert.Equal(t, "▼", tbl.SortIndicator(ledger.FieldAmount))
	assert.Equal(t, []string{"A", "B", "C"}, refs(tbl.Displayed()))

	tbl.RequestSort(ledger.FieldDate)
	assert.Equal(t, sorter.Config{Key: ledger.FieldDate}, tbl.SortConfig())
	assert.Equal(t, []string{"B", "A", "C"}, refs(tbl.Displayed()))
	// source order untouched
	assert.Equal(t, []string{"A", "B", "C"}, refs(tbl.Transactions()))
}

func TestDisplayedIsMemoized(t *testing.T) {
	tbl := New(testDocument())
	tbl.RequestSort(ledger.FieldCompany)
	tbl.Displayed()
	runs := tbl.sortRuns

	tbl.Displayed()
	tbl.ToggleRow("A")
	tbl.AllSelected()
	tbl.Rows()
	assert.Equal(t, runs, tbl.sortRuns)

	tbl.RequestSort(ledger.FieldCompany)
	tbl.Displayed()
	assert.Equal(t, runs+1, tbl.sortRuns)
}

func TestSelection(t *testing.T) {
	tbl := New(testDocument())
	assert.False(t, tbl.CanVoid())

	tbl.ToggleRow("A")
	assert.True(t, tbl.IsSelected("A"))
	assert.False(t, tbl.AllSelected())
	assert.Equal(t, "1 of 3 transactions selected", tbl.SelectionSummary())
	assert.Equal(t, "Void 1 Transaction", tbl.VoidButtonLabel())
	assert.True(t, tbl.CanVoid())

	tbl.ToggleRow("A")
	assert.Equal(t, 0, tbl.SelectedCount())

	tbl.ToggleRow("B")
	tbl.ToggleAll()
	assert.True(t, tbl.AllSelected())
	assert.Equal(t, []string{"A", "B", "C"}, tbl.SelectedReferences())
	assert.Equal(t, "Void 3 Transactions", tbl.VoidButtonLabel())

	// selecting every row one by one also checks the header box
	tbl.ToggleAll()
	assert.Equal(t, 0, tbl.SelectedCount())
	assert.False(t, tbl.AllSelected())
	tbl.ToggleRow("A")
	tbl.ToggleRow("B")
	assert.False(t, tbl.AllSelected())
	tbl.ToggleRow("C")
	assert.True(t, tbl.AllSelected())
}

func TestRows(t *testing.T) {
	tbl := New(testDocument(), WithLocation(time.UTC))
	tbl.ToggleRow("B")
	rows := tbl.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, Row{
		Company:   "Acme",
		Reference: "A",
		Date:      "Mar 1, 2024 9:15 AM",
		SubTotal:  "$0.00",
		Surcharge: "$0.00",
		Amount:    "$10.00",
		Status:    status.Details{Name: "Pending", Class: status.ClassPending},
	}, rows[0])
	assert.True(t, rows[1].Selected)
	assert.Equal(t, "Feb 1, 2024 4:05 PM", rows[1].Cell(ledger.FieldDate))
	assert.Equal(t, "", rows[2].Date)
	assert.Equal(t, status.Details{Name: "Unknown", Class: status.ClassUnknown}, rows[2].Status)
	assert.Equal(t, "Unknown", rows[2].Cell(ledger.FieldStatus))
	assert.Equal(t, rows[2], tbl.Row(2))
}

func TestVoidConfirm(t *testing.T) {
	doc := testDocument()
	tbl := New(doc)
	assert.False(t, tbl.OpenVoid())
	assert.False(t, tbl.VoidDialogOpen())

	tbl.ToggleRow("A")
	tbl.ToggleRow("B")
	require.True(t, tbl.OpenVoid())
	assert.True(t, tbl.VoidDialogOpen())
	assert.Equal(t, "Are you sure you want to void 2 selected transactions?", tbl.ConfirmQuestion())

	n, err := tbl.ConfirmVoid()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 4, tbl.Transactions()[0].Status)
	assert.Equal(t, 4, tbl.Transactions()[1].Status)
	assert.Equal(t, 99, tbl.Transactions()[2].Status)
	assert.Equal(t, 0, tbl.SelectedCount())
	assert.False(t, tbl.VoidDialogOpen())
	assert.Equal(t, status.ClassVoided, tbl.Rows()[0].Status.Class)

	// the loaded document is not modified
	assert.Equal(t, 1, doc.Transactions[0].Status)
}

func TestVoidConfirmReordersSortedStatus(t *testing.T) {
	tbl := New(testDocument())
	tbl.RequestSort(ledger.FieldStatus)
	assert.Equal(t, []string{"A", "B", "C"}, refs(tbl.Displayed()))
	tbl.ToggleRow("A")
	tbl.OpenVoid()
	_, err := tbl.ConfirmVoid()
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, refs(tbl.Displayed()))
}

func TestVoidCancel(t *testing.T) {
	tbl := New(testDocument())
	tbl.ToggleRow("A")
	require.True(t, tbl.OpenVoid())
	tbl.CancelVoid()
	assert.False(t, tbl.VoidDialogOpen())
	assert.Equal(t, 1, tbl.Transactions()[0].Status)
	assert.Equal(t, []string{"A"}, tbl.SelectedReferences())

	// confirming after cancel does nothing
	n, err := tbl.ConfirmVoid()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, tbl.Transactions()[0].Status)
}

func TestVoidWithoutVoidedStatus(t *testing.T) {
	doc := testDocument()
	doc.Statuses = []ledger.Status{{Key: 1, Name: "Pending"}}
	tbl := New(doc)
	tbl.ToggleRow("A")
	require.True(t, tbl.OpenVoid())
	n, err := tbl.ConfirmVoid()
	assert.ErrorIs(t, err, void.ErrNoVoidedStatus)
	assert.Equal(t, 0, n)
	assert.False(t, tbl.VoidDialogOpen())
	assert.Equal(t, []string{"A"}, tbl.SelectedReferences())
	assert.Equal(t, 1, tbl.Transactions()[0].Status)
}
