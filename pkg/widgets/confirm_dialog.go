// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	ConfirmDialogTitle = "Confirm Void Action"
	CancelLabel        = "Cancel"
	ConfirmLabel       = "Void Transactions"
	IrreversibleNote   = "This action cannot be undone."

	dialogWidth  = 60
	dialogHeight = 9
)

// ConfirmDialog is a centered box asking to confirm the void action. Clicking
// anywhere outside the box or pressing Escape cancels.
type ConfirmDialog struct {
	*tview.Flex

	content *tview.Flex
	message *tview.TextView
	form    *tview.Form

	confirm func()
	cancel  func()
}

func NewConfirmDialog() *ConfirmDialog {
	d := &ConfirmDialog{
		message: tview.NewTextView().
			SetTextAlign(tview.AlignCenter).
			SetDynamicColors(true).
			SetWrap(true),
		form: tview.NewForm().SetButtonsAlign(tview.AlignCenter),
	}
	d.form.AddButton(CancelLabel, d.doCancel).
		AddButton(ConfirmLabel, d.doConfirm).
		SetCancelFunc(d.doCancel)
	d.content = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.message, 0, 1, false).
		AddItem(d.form, 3, 0, true)
	d.content.SetBorder(true).SetTitle(" " + ConfirmDialogTitle + " ")
	d.Flex = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(d.content, dialogHeight, 0, true).
			AddItem(nil, 0, 1, false), dialogWidth, 0, true).
		AddItem(nil, 0, 1, false)
	return d
}

func (d *ConfirmDialog) SetConfirmFunc(handler func()) *ConfirmDialog {
	d.confirm = handler
	return d
}

func (d *ConfirmDialog) SetCancelFunc(handler func()) *ConfirmDialog {
	d.cancel = handler
	return d
}

// SetQuestion updates the question shown above the irreversible note
func (d *ConfirmDialog) SetQuestion(question string) *ConfirmDialog {
	d.message.SetText(tview.Escape(question) + "\n\n[red]" + IrreversibleNote)
	// focus starts on Cancel every time the dialog opens
	d.form.SetFocus(0)
	return d
}

func (d *ConfirmDialog) Text() string {
	return d.message.GetText(true)
}

func (d *ConfirmDialog) doConfirm() {
	if d.confirm != nil {
		d.confirm()
	}
}

func (d *ConfirmDialog) doCancel() {
	if d.cancel != nil {
		d.cancel()
	}
}

// InputHandler returns the handler for this primitive.
func (d *ConfirmDialog) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return d.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if event.Key() == tcell.KeyEscape {
			d.doCancel()
			return
		}
		d.Flex.InputHandler()(event, setFocus)
	})
}

// MouseHandler returns the mouse handler for this primitive.
func (d *ConfirmDialog) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return d.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !d.InRect(event.Position()) {
			return false, nil
		}
		if action == tview.MouseLeftClick && !d.content.InRect(event.Position()) {
			d.doCancel()
			return true, nil
		}
		return d.Flex.MouseHandler()(action, event, setFocus)
	})
}
