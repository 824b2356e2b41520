// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/rivo/tview"
	"github.com/wrgl/txview/pkg/txtable"
)

const (
	mainPage   = "main"
	dialogPage = "confirm-void"
)

// TableApp puts the title bar, transaction table, footer, usage bar and void
// confirmation dialog together.
type TableApp struct {
	model    *txtable.Table
	logger   logr.Logger
	Pages    *tview.Pages
	Flex     *tview.Flex
	Table    *TransactionTable
	Footer   *Footer
	Dialog   *ConfirmDialog
	titleBar *tview.TextView
	usageBar *UsageBar
	setFocus func(p tview.Primitive)
	quit     func()
}

func NewTableApp(model *txtable.Table, logger logr.Logger) *TableApp {
	a := &TableApp{
		model:    model,
		logger:   logger,
		titleBar: tview.NewTextView().SetDynamicColors(true),
		usageBar: NewUsageBar(TableUsage, 2),
		Dialog:   NewConfirmDialog(),
	}
	a.Table = NewTransactionTable(model).
		SetChangedFunc(a.refresh).
		SetVoidRequestedFunc(a.openVoid).
		SetQuitFunc(a.doQuit)
	a.Footer = NewFooter(model).SetVoidRequestedFunc(a.openVoid)
	a.Dialog.SetConfirmFunc(a.confirmVoid).SetCancelFunc(a.cancelVoid)
	a.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.titleBar, 1, 0, false).
		AddItem(a.Table, 0, 1, true).
		AddItem(a.Footer, 1, 0, false).
		AddItem(a.usageBar, 1, 0, false)
	a.Pages = tview.NewPages().
		AddPage(mainPage, a.Flex, true, true).
		AddPage(dialogPage, a.Dialog, true, false)
	a.refresh()
	return a
}

// SetFocusFunc sets the function used to move keyboard focus, usually
// (*tview.Application).SetFocus.
func (a *TableApp) SetFocusFunc(setFocus func(p tview.Primitive)) *TableApp {
	a.setFocus = setFocus
	return a
}

func (a *TableApp) SetQuitFunc(handler func()) *TableApp {
	a.quit = handler
	return a
}

func (a *TableApp) Title() string {
	return a.titleBar.GetText(true)
}

func (a *TableApp) refresh() {
	a.titleBar.SetText("[::b]Transactions[::-] (" + a.model.TotalSummary() + ")")
	a.Footer.Refresh()
}

func (a *TableApp) focus(p tview.Primitive) {
	if a.setFocus != nil {
		a.setFocus(p)
	}
}

func (a *TableApp) doQuit() {
	if a.quit != nil {
		a.quit()
	}
}

// DialogVisible reports whether the confirm dialog is showing
func (a *TableApp) DialogVisible() bool {
	name, _ := a.Pages.GetFrontPage()
	return name == dialogPage
}

func (a *TableApp) openVoid() {
	if !a.model.OpenVoid() {
		a.focus(a.Table)
		return
	}
	a.Dialog.SetQuestion(a.model.ConfirmQuestion())
	a.Pages.ShowPage(dialogPage)
	a.focus(a.Dialog)
	a.logger.V(1).Info("void dialog opened", "selected", a.model.SelectedCount())
}

func (a *TableApp) closeDialog() {
	a.Pages.HidePage(dialogPage)
	a.focus(a.Table)
}

func (a *TableApp) cancelVoid() {
	a.model.CancelVoid()
	a.closeDialog()
	a.logger.V(1).Info("void dialog cancelled")
}

func (a *TableApp) confirmVoid() {
	n, err := a.model.ConfirmVoid()
	a.logger.V(1).Info("void dialog confirmed", "voided", n, "error", err)
	a.closeDialog()
	a.Table.Refresh()
	a.refresh()
}

func (a *TableApp) BeforeDraw(screen tcell.Screen) {
	a.usageBar.BeforeDraw(screen, a.Flex)
}
