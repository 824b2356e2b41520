// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package config

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/dotno"
	"github.com/wrgl/txview/pkg/errors"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Set value for a field.",
		Long:  "Set value for a field. For boolean fields, only \"true\" or \"false\" value can be set.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "alter setting in the local config",
				Line:    "txview config set data.file transactions.yaml",
			},
			{
				Comment: "alter global config",
				Line:    "txview config set display.timezone Europe/Berlin --global",
			},
			{
				Comment: "turn off mouse support for everyone",
				Line:    "txview config set display.mouse false --system",
			},
		}),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := writeableConfigStore(cmd)
			if err != nil {
				return err
			}
			c, err := s.Open()
			if err != nil {
				return err
			}
			v, err := dotno.GetFieldValue(c, args[0], true)
			if err != nil {
				return err
			}
			if err = dotno.SetValue(v, args[1]); err != nil {
				return err
			}
			if _, err = c.Location(); err != nil {
				return errors.Wrap("invalid display.timezone", err)
			}
			return s.Save(c)
		},
	}
	return cmd
}
