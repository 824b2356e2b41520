// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package config

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/dotno"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the whole config as YAML.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "print the config every command uses",
				Line:    "txview config show",
			},
			{
				Comment: "print the global config only",
				Line:    "txview config show --global",
			},
		}),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readableConfigStore(cmd)
			if err != nil {
				return err
			}
			c, err := s.Open()
			if err != nil {
				return err
			}
			return dotno.OutputValue(cmd, c)
		},
	}
	return cmd
}
