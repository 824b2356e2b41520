// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrgl/txview/cmd/txview/config"
	"github.com/wrgl/txview/cmd/txview/utils"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "txview",
		Short: "Browse, sort and void transactions in the terminal",
		Long: "Browse, sort and void transactions in the terminal. Without a subcommand, " +
			"txview opens the interactive table (same as \"txview view\").",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "open the bundled transactions",
				Line:    "txview",
			},
			{
				Comment: "open a gzipped YAML document",
				Line:    "txview --data transactions.yaml.gz",
			},
		}),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runView,
	}
	viper.SetEnvPrefix("")
	rootCmd.PersistentFlags().String("data", "", "transactions document (JSON or YAML, optionally gzipped). Defaults to data.file from config, then to the bundled document")
	viper.BindEnv("txview_data")
	viper.BindPFlag("txview_data", rootCmd.PersistentFlags().Lookup("data"))
	rootCmd.PersistentFlags().String("config", "", "read config from this file instead of the system, global and local config files")
	viper.BindEnv("txview_config")
	viper.BindPFlag("txview_config", rootCmd.PersistentFlags().Lookup("config"))
	utils.AddLoggerFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(config.RootCmd())
	return rootCmd
}
