// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/export"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write displayed transactions to a CSV or XLSX file.",
		Long: "Write displayed transactions to a file, formatted the way the table shows them. " +
			"The format is picked from the file extension: \".csv\", \".csv.gz\" or \".xlsx\". " +
			"Use \"-\" to write CSV to stdout.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "export every transaction sorted by date",
				Line:    "txview export transactions.xlsx --sort date",
			},
			{
				Comment: "print semicolon-separated CSV",
				Line:    "txview export - --delimiter ';'",
			},
		}),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delimiter, err := cmd.Flags().GetString("delimiter")
			if err != nil {
				return err
			}
			opts := export.Options{}
			if delimiter != "" {
				r, size := utf8.DecodeRuneInString(delimiter)
				if size != len(delimiter) {
					return fmt.Errorf("delimiter must be a single character, got %q", delimiter)
				}
				opts.Delimiter = r
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
			rows := tbl.Rows()
			if args[0] == "-" {
				return export.WriteCSV(cmd.OutOrStdout(), rows, opts)
			}
			if err = export.WriteFile(args[0], rows, opts); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, utils.Colorize(out).Color(fmt.Sprintf(
				"[green]Exported [bold]%d[reset] transactions to [cyan]%s", len(rows), args[0],
			)))
			return nil
		},
	}
	utils.AddTableFlags(cmd.Flags())
	cmd.Flags().String("delimiter", "", "CSV delimiter, defaults to comma")
	return cmd
}
