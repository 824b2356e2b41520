// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/status"
	"github.com/wrgl/txview/pkg/txtable"
)

var statusColors = map[status.Class]color.Attribute{
	status.ClassPending: color.FgYellow,
	status.ClassSettled: color.FgGreen,
	status.ClassFailed:  color.FgRed,
	status.ClassVoided:  color.FgHiBlack,
	status.ClassUnknown: color.FgWhite,
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print transactions as a plain table.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "print transactions with the largest total first",
				Line:    "txview list --sort amount --desc",
			},
			{
				Comment: "only print transactions of companies starting with \"Coho\"",
				Line:    "txview list --company 'coho*'",
			},
		}),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, err := cmd.Flags().GetBool("no-color")
			if err != nil {
				return err
			}
			c, err := utils.OpenConfig()
			if err != nil {
				return err
			}
			cleanup, err := utils.SetupLogger(cmd, c, false)
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}
			tbl, err := utils.FilteredTable(cmd, c, utils.GetLogger(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTable(out, tbl, !noColor && utils.IsTerminal(out))
			return nil
		},
	}
	utils.AddTableFlags(cmd.Flags())
	cmd.Flags().Bool("no-color", false, "do not color the status column")
	return cmd
}

func rightAligned(f ledger.Field) bool {
	return f == ledger.FieldSubTotal || f == ledger.FieldSurcharge || f == ledger.FieldAmount
}

func columnTitle(tbl *txtable.Table, f ledger.Field) string {
	if s := tbl.SortIndicator(f); s != "" {
		return f.Title() + " " + s
	}
	return f.Title()
}

// printTable writes displayed rows of tbl with columns padded to the widest
// cell, followed by a summary line.
func printTable(w io.Writer, tbl *txtable.Table, colored bool) {
	rows := tbl.Rows()
	widths := make([]int, len(ledger.Fields))
	for i, f := range ledger.Fields {
		widths[i] = runewidth.StringWidth(columnTitle(tbl, f))
		for _, row := range rows {
			if n := runewidth.StringWidth(row.Cell(f)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	pad := func(f ledger.Field, i int, s string) string {
		if rightAligned(f) {
			return runewidth.FillLeft(s, widths[i])
		}
		if i == len(ledger.Fields)-1 {
			return s
		}
		return runewidth.FillRight(s, widths[i])
	}

	cells := make([]string, len(ledger.Fields))
	for i, f := range ledger.Fields {
		cells[i] = pad(f, i, columnTitle(tbl, f))
	}
	header := color.New(color.Bold)
	if !colored {
		header.DisableColor()
	}
	header.Fprintln(w, strings.Join(cells, "  "))
	for _, row := range rows {
		for i, f := range ledger.Fields {
			cells[i] = pad(f, i, row.Cell(f))
		}
		if colored {
			last := len(cells) - 1
			cells[last] = color.New(statusColors[row.Status.Class]).Sprint(cells[last])
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
	fmt.Fprintf(w, "\n%s\n", tbl.TotalSummary())
}
