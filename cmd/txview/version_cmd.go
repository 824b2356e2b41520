// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txview

import (
	_ "embed"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed VERSION
var version string

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Shows version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("txview v%s\n", strings.TrimSpace(version))
		},
	}
	return cmd
}
