// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wrgl/txview/cmd/txview/utils"
	"github.com/wrgl/txview/pkg/dotno"
)

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Get value of a field.",
		Long:  "Get value of a field. Sections are printed as YAML. Returns error code 1 if the key was not found.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "get the display time zone",
				Line:    "txview config get display.timezone",
			},
			{
				Comment: "print the whole display section",
				Line:    "txview config get display",
			},
		}),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readableConfigStore(cmd)
			if err != nil {
				return err
			}
			c, err := s.Open()
			if err != nil {
				return err
			}
			v, err := dotno.GetFieldValue(c, args[0], false)
			if err != nil || v.IsZero() {
				return fmt.Errorf("key %q is not set", args[0])
			}
			return dotno.OutputValue(cmd, v.Interface())
		},
	}
	return cmd
}
