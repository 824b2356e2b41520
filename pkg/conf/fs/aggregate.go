// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conffs

import (
	"reflect"

	"github.com/imdario/mergo"
	"github.com/wrgl/txview/pkg/conf"
)

// scalarPtrTransformer makes a *bool or *int that is set in a more specific
// file win, even when it points to false or 0.
type scalarPtrTransformer struct{}

func (scalarPtrTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() != reflect.Ptr || typ.Elem().Kind() == reflect.Struct {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}

// aggregatePaths lists config files from lowest to highest precedence
func (s *Store) aggregatePaths() ([]string, error) {
	global, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	return []string{systemConfigPath(), global, localPath(s.rootDir)}, nil
}

// aggregateConfig merges system, global and local config. Values set in a
// later file override earlier ones.
func (s *Store) aggregateConfig() (*conf.Config, error) {
	paths, err := s.aggregatePaths()
	if err != nil {
		return nil, err
	}
	res := &conf.Config{}
	for _, fp := range paths {
		c, err := readConfig(fp)
		if err != nil {
			return nil, err
		}
		if err = mergo.Merge(res, c, mergo.WithOverride, mergo.WithTransformers(scalarPtrTransformer{})); err != nil {
			return nil, err
		}
	}
	return res, nil
}
