// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conffs

import (
	"fmt"
	"os"
	"path/filepath"
)

const LocalFileName = ".txview.yaml"

func systemConfigPath() string {
	if s := os.Getenv("TXVIEW_SYSTEM_CONFIG_DIR"); s != "" {
		return filepath.Join(s, "config.yaml")
	}
	return "/usr/local/etc/txview/config.yaml"
}

func globalConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "txview", "config.yaml"), nil
}

func localPath(rootDir string) string {
	return filepath.Join(rootDir, LocalFileName)
}

// Path returns the file this store reads and writes
func (s *Store) Path() (string, error) {
	switch s.source {
	case SystemSource:
		return systemConfigPath(), nil
	case GlobalSource:
		return globalConfigPath()
	case LocalSource:
		return localPath(s.rootDir), nil
	case FileSource:
		return s.fp, nil
	default:
		return "", fmt.Errorf("unrecognized source: %v", s.source)
	}
}
