// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"github.com/wrgl/txview/pkg/txtable"
)

// Footer shows the selection summary and the void button
type Footer struct {
	*tview.Flex

	model   *txtable.Table
	summary *tview.TextView
	button  *tview.Button

	voidRequested func()
}

func NewFooter(model *txtable.Table) *Footer {
	f := &Footer{
		model:   model,
		summary: tview.NewTextView(),
		button:  tview.NewButton(""),
	}
	f.button.SetSelectedFunc(func() {
		if f.model.CanVoid() && f.voidRequested != nil {
			f.voidRequested()
		}
	})
	f.Flex = tview.NewFlex().
		AddItem(f.summary, 0, 1, false).
		AddItem(f.button, 0, 0, false)
	f.Refresh()
	return f
}

func (f *Footer) SetVoidRequestedFunc(handler func()) *Footer {
	f.voidRequested = handler
	return f
}

// Refresh updates the summary text and the button label and state
func (f *Footer) Refresh() {
	f.summary.SetText(f.model.SelectionSummary())
	label := f.model.VoidButtonLabel()
	f.button.SetLabel(label)
	if f.model.CanVoid() {
		f.button.SetLabelColor(tcell.ColorWhite).
			SetBackgroundColor(tcell.ColorDarkRed)
	} else {
		f.button.SetLabelColor(tcell.ColorSlateGray).
			SetBackgroundColor(tcell.ColorBlack)
	}
	f.Flex.ResizeItem(f.button, runewidth.StringWidth(label)+4, 0)
}

func (f *Footer) Summary() string {
	return f.summary.GetText(true)
}

func (f *Footer) ButtonLabel() string {
	return f.button.GetLabel()
}

func (f *Footer) Button() *tview.Button {
	return f.button
}
