// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/txtable"
)

const (
	checkboxOn    = "[x]"
	checkboxOff   = "[ ]"
	checkboxMixed = "[-]"
)

// TransactionTable renders a txtable.Table. The first row is the header: a
// select-all checkbox followed by one title per column. Each following row is
// a displayed transaction with its own checkbox in column 0.
type TransactionTable struct {
	*tview.Table

	model *txtable.Table

	// called after the model changes
	changed func()

	// called when the user asks to void the selected transactions
	voidRequested func()

	// called when the user asks to quit
	quit func()
}

func NewTransactionTable(model *txtable.Table) *TransactionTable {
	t := &TransactionTable{
		Table: tview.NewTable().
			SetFixed(1, 0).
			SetSelectable(true, false).
			SetSeparator(' '),
		model: model,
	}
	t.Table.SetSelectedStyle(cellStyle.Background(selectedBg))
	t.Refresh()
	if model.Len() > 0 {
		t.Table.Select(1, 0)
	}
	return t
}

func (t *TransactionTable) SetChangedFunc(handler func()) *TransactionTable {
	t.changed = handler
	return t
}

func (t *TransactionTable) SetVoidRequestedFunc(handler func()) *TransactionTable {
	t.voidRequested = handler
	return t
}

func (t *TransactionTable) SetQuitFunc(handler func()) *TransactionTable {
	t.quit = handler
	return t
}

func (t *TransactionTable) headerCheckbox() string {
	switch {
	case t.model.Len() == 0:
		return checkboxOff
	case t.model.AllSelected():
		return checkboxOn
	case t.model.SelectedCount() > 0:
		return checkboxMixed
	}
	return checkboxOff
}

func checkbox(selected bool) string {
	if selected {
		return checkboxOn
	}
	return checkboxOff
}

func columnAlign(f ledger.Field) int {
	switch f {
	case ledger.FieldSubTotal, ledger.FieldSurcharge, ledger.FieldAmount:
		return tview.AlignRight
	}
	return tview.AlignLeft
}

// HeaderTitle is the header text of a column including its sort arrow
func (t *TransactionTable) HeaderTitle(f ledger.Field) string {
	if ind := t.model.SortIndicator(f); ind != "" {
		return fmt.Sprintf("%s %s", f.Title(), ind)
	}
	return f.Title()
}

// Refresh rebuilds every cell from the model
func (t *TransactionTable) Refresh() {
	t.Table.Clear()

	box := tview.NewTableCell(tview.Escape(t.headerCheckbox())).
		SetSelectable(false).
		SetStyle(headerStyle)
	if t.model.Len() == 0 {
		box.SetStyle(disabledStyle)
	} else {
		box.SetClickedFunc(func() bool {
			t.toggleAll()
			return true
		})
	}
	t.Table.SetCell(0, 0, box)
	for i, f := range ledger.Fields {
		f := f
		t.Table.SetCell(0, i+1, tview.NewTableCell(tview.Escape(t.HeaderTitle(f))).
			SetSelectable(false).
			SetStyle(headerStyle).
			SetAlign(columnAlign(f)).
			SetClickedFunc(func() bool {
				t.sortBy(f)
				return true
			}))
	}

	for r, row := range t.model.Rows() {
		ref := row.Reference
		t.Table.SetCell(r+1, 0, tview.NewTableCell(tview.Escape(checkbox(row.Selected))).
			SetStyle(cellStyle).
			SetClickedFunc(func() bool {
				// the checkbox handles its own click, the row must not toggle again
				t.toggleRow(ref)
				return true
			}))
		for i, f := range ledger.Fields {
			cell := tview.NewTableCell(tview.Escape(row.Cell(f))).
				SetStyle(cellStyle).
				SetAlign(columnAlign(f)).
				SetClickedFunc(func() bool {
					t.toggleRow(ref)
					return false
				})
			if f == ledger.FieldStatus {
				cell.SetStyle(statusStyle(row.Status.Class))
			}
			t.Table.SetCell(r+1, i+1, cell)
		}
	}
}

func (t *TransactionTable) notify() {
	t.Refresh()
	if t.changed != nil {
		t.changed()
	}
}

func (t *TransactionTable) sortBy(f ledger.Field) {
	t.model.RequestSort(f)
	t.notify()
}

func (t *TransactionTable) toggleRow(ref string) {
	t.model.ToggleRow(ref)
	t.notify()
}

func (t *TransactionTable) toggleAll() {
	if t.model.Len() == 0 {
		return
	}
	t.model.ToggleAll()
	t.notify()
}

// toggleCursorRow toggles the transaction under the cursor
func (t *TransactionTable) toggleCursorRow() {
	row, _ := t.Table.GetSelection()
	if row < 1 || row > t.model.Len() {
		return
	}
	t.toggleRow(t.model.Row(row - 1).Reference)
}

// InputHandler returns the handler for this primitive.
func (t *TransactionTable) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return t.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyEnter:
			t.toggleCursorRow()
			return
		case tcell.KeyCtrlC:
			if t.quit != nil {
				t.quit()
			}
			return
		case tcell.KeyRune:
			r := event.Rune()
			switch {
			case r == ' ':
				t.toggleCursorRow()
				return
			case r == 'a':
				t.toggleAll()
				return
			case r == 'v':
				if t.voidRequested != nil && t.model.CanVoid() {
					t.voidRequested()
				}
				return
			case r == 'q':
				if t.quit != nil {
					t.quit()
				}
				return
			case r >= '1' && r < '1'+rune(len(ledger.Fields)):
				t.sortBy(ledger.Fields[r-'1'])
				return
			}
		}
		t.Table.InputHandler()(event, setFocus)
	})
}

// MouseHandler returns the mouse handler for this primitive.
func (t *TransactionTable) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return t.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		return t.Table.MouseHandler()(action, event, func(p tview.Primitive) {
			setFocus(t)
		})
	})
}
