// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conffs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wrgl/txview/pkg/conf"
	"github.com/wrgl/txview/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Source int

const (
	UnspecifiedSource Source = iota
	FileSource
	LocalSource
	GlobalSource
	SystemSource
	AggregateSource
)

var sourceNames = [...]string{"unspecified", "file", "local", "global", "system", "aggregate"}

func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return sourceNames[UnspecifiedSource]
	}
	return sourceNames[s]
}

// Store reads and writes one config source. AggregateSource is read-only.
type Store struct {
	rootDir string
	source  Source
	fp      string
}

var _ conf.Store = (*Store)(nil)

// NewStore returns a config store. rootDir is where the local config file
// lives. A non-empty fp always selects FileSource.
func NewStore(rootDir string, source Source, fp string) *Store {
	if fp != "" {
		source = FileSource
	}
	return &Store{
		rootDir: rootDir,
		source:  source,
		fp:      fp,
	}
}

func (s *Store) Source() Source {
	return s.source
}

// readConfig parses the file at fp. A missing file reads as an empty config.
func readConfig(fp string) (*conf.Config, error) {
	c := &conf.Config{}
	b, err := os.ReadFile(fp)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(fmt.Sprintf("error parsing config file %q", fp), err)
	}
	return c, nil
}

func (s *Store) Open() (*conf.Config, error) {
	if s.source == AggregateSource {
		return s.aggregateConfig()
	}
	fp, err := s.Path()
	if err != nil {
		return nil, err
	}
	return readConfig(fp)
}

// Save writes c to the store's file, creating parent directories as needed
func (s *Store) Save(c *conf.Config) error {
	if s.source == AggregateSource {
		return fmt.Errorf("attempt to save aggregated config")
	}
	fp, err := s.Path()
	if err != nil {
		return err
	}
	if fp == "" {
		return fmt.Errorf("empty config path")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0644)
}
