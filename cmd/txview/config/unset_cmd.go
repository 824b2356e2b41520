// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package config

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/dotno"
)

func unsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset NAME",
		Short: "Remove a value.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "go back to the bundled document",
				Line:    "txview config unset data.file",
			},
			{
				Comment: "remove the whole display section of the global config",
				Line:    "txview config unset display --global",
			},
		}),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := writeableConfigStore(cmd)
			if err != nil {
				return err
			}
			c, err := s.Open()
			if err != nil {
				return err
			}
			if err = dotno.UnsetField(c, args[0]); err != nil {
				return err
			}
			return s.Save(c)
		},
	}
	return cmd
}
