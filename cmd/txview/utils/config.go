// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"os"

	"github.com/spf13/viper"
	"github.com/wrgl/txview/pkg/conf"
	conffs "github.com/wrgl/txview/pkg/conf/fs"
)

// ConfigStore returns the store read by every command: the file given with
// --config (or $TXVIEW_CONFIG), otherwise system, global and local config
// merged together.
func ConfigStore() (*conffs.Store, error) {
	if fp := viper.GetString("txview_config"); fp != "" {
		return conffs.NewStore("", conffs.FileSource, fp), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return conffs.NewStore(wd, conffs.AggregateSource, ""), nil
}

func OpenConfig() (*conf.Config, error) {
	s, err := ConfigStore()
	if err != nil {
		return nil, err
	}
	return s.Open()
}
