// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package config

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrgl/txview/cmd/txview/utils"
	conffs "github.com/wrgl/txview/pkg/conf/fs"
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write config.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	cmd.PersistentFlags().Bool("system", false, "for writing commands: write to system-wide /usr/local/etc/txview/config.yaml rather than ./.txview.yaml. For reading commands: read only from the system-wide file rather than from all available files.")
	cmd.PersistentFlags().Bool("global", false, "for writing commands: write to global $XDG_CONFIG_HOME/txview/config.yaml rather than ./.txview.yaml. For reading commands: read only from the global file rather than from all available files.")
	cmd.PersistentFlags().Bool("local", false, "for writing commands: write to ./.txview.yaml. This is the default behavior. For reading commands: read only from ./.txview.yaml rather than from all available files.")
	cmd.PersistentFlags().StringP("file", "f", "", "use the given config file instead of ./.txview.yaml")
	cmd.AddCommand(showCmd())
	cmd.AddCommand(getCmd())
	cmd.AddCommand(setCmd())
	cmd.AddCommand(unsetCmd())
	return cmd
}

func fileOptions(cmd *cobra.Command) (file string, system, global, local bool, err error) {
	file, err = cmd.Flags().GetString("file")
	if err != nil {
		return
	}
	system, err = cmd.Flags().GetBool("system")
	if err != nil {
		return
	}
	global, err = cmd.Flags().GetBool("global")
	if err != nil {
		return
	}
	local, err = cmd.Flags().GetBool("local")
	return
}

func readableConfigStore(cmd *cobra.Command) (*conffs.Store, error) {
	file, system, global, local, err := fileOptions(cmd)
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	switch {
	case system:
		return conffs.NewStore(wd, conffs.SystemSource, ""), nil
	case global:
		return conffs.NewStore(wd, conffs.GlobalSource, ""), nil
	case local:
		return conffs.NewStore(wd, conffs.LocalSource, ""), nil
	case file != "":
		return conffs.NewStore(wd, conffs.FileSource, file), nil
	}
	return utils.ConfigStore()
}

func writeableConfigStore(cmd *cobra.Command) (*conffs.Store, error) {
	file, system, global, _, err := fileOptions(cmd)
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if file == "" {
		file = viper.GetString("txview_config")
	}
	switch {
	case system:
		return conffs.NewStore(wd, conffs.SystemSource, ""), nil
	case global:
		return conffs.NewStore(wd, conffs.GlobalSource, ""), nil
	case file != "":
		return conffs.NewStore(wd, conffs.FileSource, file), nil
	}
	return conffs.NewStore(wd, conffs.LocalSource, ""), nil
}
