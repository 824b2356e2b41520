// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/widgets"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive transaction table.",
		Long: "Open the interactive transaction table. Click a column header or press 1-7 to sort, " +
			"click a row or press space to select it, then press v to void the selected transactions. " +
			"Voided statuses only live in memory and are never written back to the document.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "browse the bundled transactions",
				Line:    "txview view",
			},
			{
				Comment: "log sort and void events to a file",
				Line:    "txview view --log-file txview.log --log-verbosity 1",
			},
		}),
		Args: cobra.NoArgs,
		RunE: runView,
	}
	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	c, err := utils.OpenConfig()
	if err != nil {
		return err
	}
	cleanup, err := utils.SetupLogger(cmd, c, true)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}
	logger := utils.GetLogger(cmd).WithValues("session", uuid.New().String())
	tbl, err := utils.LoadTable(c, logger, nil)
	if err != nil {
		return err
	}

	app := tview.NewApplication().EnableMouse(c.MouseEnabled())
	tableApp := widgets.NewTableApp(tbl, logger).
		SetFocusFunc(func(p tview.Primitive) {
			app.SetFocus(p)
		}).
		SetQuitFunc(app.Stop)
	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		tableApp.BeforeDraw(screen)
		return false
	})
	logger.Info("view started")
	defer logger.Info("view stopped")
	return app.SetRoot(tableApp.Pages, true).SetFocus(tableApp.Table).Run()
}
