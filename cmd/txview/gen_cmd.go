// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/ledger/fake"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random transactions document.",
		Long: "Generate a random transactions document with the statuses Pending, Settled, Failed " +
			"and Voided. Without --output the document is printed to stdout.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "generate 1000 transactions and open them",
				Line:    "txview gen -n 1000 -o big.json.gz && txview --data big.json.gz",
			},
			{
				Comment: "print the same YAML document every time",
				Line:    "txview gen --format yaml --seed 42",
			},
		}),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("count must not be negative")
			}
			seed, err := cmd.Flags().GetInt64("seed")
			if err != nil {
				return err
			}
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			formatName, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			doc := fake.Document(gofakeit.New(seed), n)
			if output == "" || output == "-" {
				var format ledger.Format
				switch formatName {
				case "json":
					format = ledger.FormatJSON
				case "yaml":
					format = ledger.FormatYAML
				default:
					return fmt.Errorf("unknown format %q, valid options are \"json\" and \"yaml\"", formatName)
				}
				return ledger.Encode(cmd.OutOrStdout(), doc, format)
			}
			if cmd.Flags().Changed("format") {
				return fmt.Errorf("--format only applies to stdout, the output format is picked from the file extension")
			}
			if err = ledger.WriteFile(output, doc); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, utils.Colorize(out).Color(fmt.Sprintf(
				"[green]Generated [bold]%d[reset] transactions in [cyan]%s", n, output,
			)))
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 20, "number of transactions")
	cmd.Flags().Int64("seed", 0, "random seed, 0 picks one at random. The same seed always generates the same document")
	cmd.Flags().StringP("output", "o", "", "write to this file instead of stdout. JSON unless the name ends with \".yaml\" or \".yml\", gzipped if it ends with \".gz\"")
	cmd.Flags().String("format", "json", `stdout format, either "json" or "yaml"`)
	return cmd
}
