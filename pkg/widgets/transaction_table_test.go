// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/sorter"
	"github.com/wrgl/txview/pkg/txtable"
)

func testModel() *txtable.Table {
	return txtable.New(&ledger.Document{
		Transactions: []ledger.Transaction{
			{Company: "Coho Winery", Reference: "TXN-3", Date: "2024-03-01T09:15:00", SubTotal: ledger.AmountFromFloat(100), Surcharge: ledger.AmountFromFloat(2), Amount: ledger.AmountFromFloat(102), Status: 1},
			{Company: "Adatum", Reference: "TXN-1", Date: "2024-01-10T10:00:00", SubTotal: ledger.AmountFromFloat(1000), Surcharge: ledger.AmountFromFloat(20), Amount: ledger.AmountFromFloat(1020), Status: 2},
			{Company: "Blue Yonder [EU]", Reference: "TXN-2", Date: "2024-02-05T14:30:00", SubTotal: ledger.AmountFromFloat(50), Surcharge: ledger.AmountFromFloat(1), Amount: ledger.AmountFromFloat(51), Status: 7},
		},
		Statuses: []ledger.Status{
			{Key: 1, Name: "Pending"},
			{Key: 2, Name: "Settled"},
			{Key: 4, Name: "Voided"},
		},
	}, txtable.WithLocation(time.UTC))
}

func pressRune(p tview.Primitive, r rune) {
	p.InputHandler()(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), func(p tview.Primitive) {})
}

func pressKey(p tview.Primitive, k tcell.Key) {
	p.InputHandler()(tcell.NewEventKey(k, 0, tcell.ModNone), func(p tview.Primitive) {})
}

func click(p tview.Primitive, x, y int) bool {
	consumed, _ := p.MouseHandler()(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), func(p tview.Primitive) {})
	return consumed
}

func drawOn(t *testing.T, p tview.Primitive, width, height int) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	p.SetRect(0, 0, width, height)
	p.Draw(screen)
}

func cellTexts(tbl *TransactionTable, row int) []string {
	n := tbl.GetColumnCount()
	sl := make([]string, n)
	for i := 0; i < n; i++ {
		sl[i] = tbl.GetCell(row, i).Text
	}
	return sl
}

func TestTransactionTableCells(t *testing.T) {
	tbl := NewTransactionTable(testModel())
	assert.Equal(t, 4, tbl.GetRowCount())
	assert.Equal(t, 8, tbl.GetColumnCount())
	assert.Equal(t, []string{
		tview.Escape("[ ]"), "Company", "Reference", "Date", "Subtotal", "Surcharge", "Total Amount", "Status",
	}, cellTexts(tbl, 0))
	assert.Equal(t, []string{
		tview.Escape("[ ]"), "Coho Winery", "TXN-3", "Mar 1, 2024 9:15 AM", "$100.00", "$2.00", "$102.00", "Pending",
	}, cellTexts(tbl, 1))
	// brackets are escaped so tview does not read them as color tags
	assert.Equal(t, tview.Escape("Blue Yonder [EU]"), tbl.GetCell(3, 1).Text)
	assert.Equal(t, "Unknown", tbl.GetCell(3, 7).Text)
	assert.Equal(t, tview.AlignRight, tbl.GetCell(1, 6).Align)
	assert.True(t, tbl.GetCell(0, 1).NotSelectable)
	assert.False(t, tbl.GetCell(1, 1).NotSelectable)

	row, _ := tbl.GetSelection()
	assert.Equal(t, 1, row)
}

func TestTransactionTableEmpty(t *testing.T) {
	model := txtable.New(nil)
	tbl := NewTransactionTable(model)
	assert.Equal(t, 1, tbl.GetRowCount())
	assert.Nil(t, tbl.GetCell(0, 0).Clicked)
	pressRune(tbl, 'a')
	assert.False(t, model.AllSelected())
	pressRune(tbl, ' ')
	assert.Equal(t, 0, model.SelectedCount())
}

func TestTransactionTableKeys(t *testing.T) {
	model := testModel()
	changes := 0
	voids := 0
	quits := 0
	tbl := NewTransactionTable(model).
		SetChangedFunc(func() { changes++ }).
		SetVoidRequestedFunc(func() { voids++ }).
		SetQuitFunc(func() { quits++ })

	pressRune(tbl, 'v')
	assert.Equal(t, 0, voids, "void needs a selection")

	pressRune(tbl, ' ')
	assert.True(t, model.IsSelected("TXN-3"))
	assert.Equal(t, tview.Escape("[x]"), tbl.GetCell(1, 0).Text)
	assert.Equal(t, tview.Escape("[-]"), tbl.GetCell(0, 0).Text)

	pressRune(tbl, 'j')
	pressKey(tbl, tcell.KeyEnter)
	assert.Equal(t, []string{"TXN-1", "TXN-3"}, model.SelectedReferences())

	pressRune(tbl, 'a')
	assert.True(t, model.AllSelected())
	assert.Equal(t, tview.Escape("[x]"), tbl.GetCell(0, 0).Text)
	pressRune(tbl, 'a')
	assert.Equal(t, 0, model.SelectedCount())
	assert.Equal(t, tview.Escape("[ ]"), tbl.GetCell(0, 0).Text)

	pressRune(tbl, '2')
	assert.Equal(t, sorter.Config{Key: ledger.FieldReference}, model.SortConfig())
	assert.Equal(t, "Reference ▲", tbl.GetCell(0, 2).Text)
	assert.Equal(t, "TXN-1", tbl.GetCell(1, 2).Text)
	pressRune(tbl, '2')
	assert.Equal(t, "Reference ▼", tbl.GetCell(0, 2).Text)
	assert.Equal(t, "TXN-3", tbl.GetCell(1, 2).Text)
	pressRune(tbl, '7')
	assert.Equal(t, ledger.FieldStatus, model.SortConfig().Key)
	assert.Equal(t, "Reference", tbl.GetCell(0, 2).Text)

	pressRune(tbl, ' ')
	pressRune(tbl, 'v')
	assert.Equal(t, 1, voids)

	pressRune(tbl, 'q')
	pressKey(tbl, tcell.KeyCtrlC)
	assert.Equal(t, 2, quits)
	assert.Equal(t, 8, changes)
}

func TestTransactionTableClickedCells(t *testing.T) {
	model := testModel()
	tbl := NewTransactionTable(model)

	assert.True(t, tbl.GetCell(0, 4).Clicked())
	assert.Equal(t, ledger.FieldSubTotal, model.SortConfig().Key)
	assert.True(t, tbl.GetCell(0, 4).Clicked())
	assert.Equal(t, sorter.Descending, model.SortConfig().Direction)
	assert.Equal(t, "Adatum", tbl.GetCell(1, 1).Text)

	// checkbox toggles once and keeps the cursor where it is
	assert.True(t, tbl.GetCell(2, 0).Clicked())
	assert.Equal(t, []string{"TXN-3"}, model.SelectedReferences())

	// any other cell toggles the row and moves the cursor
	assert.False(t, tbl.GetCell(2, 3).Clicked())
	assert.Equal(t, 0, model.SelectedCount())
	assert.False(t, tbl.GetCell(3, 1).Clicked())
	assert.Equal(t, []string{"TXN-2"}, model.SelectedReferences())

	assert.True(t, tbl.GetCell(0, 0).Clicked())
	assert.True(t, model.AllSelected())
}

func TestTransactionTableMouse(t *testing.T) {
	model := testModel()
	tbl := NewTransactionTable(model)
	drawOn(t, tbl, 120, 10)

	assert.True(t, click(tbl, 1, 0))
	assert.True(t, model.AllSelected())

	assert.True(t, click(tbl, 1, 2))
	assert.Equal(t, []string{"TXN-2", "TXN-3"}, model.SelectedReferences())
	row, _ := tbl.GetSelection()
	assert.Equal(t, 1, row)

	assert.True(t, click(tbl, 6, 3))
	assert.Equal(t, []string{"TXN-3"}, model.SelectedReferences())
	row, _ = tbl.GetSelection()
	assert.Equal(t, 3, row)

	assert.True(t, click(tbl, 6, 0))
	assert.Equal(t, ledger.FieldCompany, model.SortConfig().Key)
	assert.Equal(t, "Company ▲", tbl.GetCell(0, 1).Text)

	assert.False(t, click(tbl, 1, 50))
}
