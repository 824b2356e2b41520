// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package dotno

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func marshalText(v reflect.Value) (s string, err error) {
	t := v.Type()
	if t.Kind() == reflect.Ptr && !v.IsNil() {
		switch t.Elem().Kind() {
		case reflect.Bool, reflect.Int, reflect.String:
			return marshalText(v.Elem())
		}
	}
	switch t.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool, reflect.Int:
		return fmt.Sprintf("%v", v.Interface()), nil
	}
	if t.Implements(reflect.TypeOf((*fmt.Stringer)(nil)).Elem()) {
		return v.Interface().(fmt.Stringer).String(), nil
	}
	if t.Implements(reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()) {
		b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := yaml.Marshal(v.Interface())
	if err != nil {
		return
	}
	return string(b), nil
}

// OutputValue prints a scalar on one line, or a section as YAML
func OutputValue(cmd *cobra.Command, val interface{}) error {
	s, err := marshalText(reflect.ValueOf(val))
	if err != nil {
		return err
	}
	if len(s) > 0 && s[len(s)-1] == '\n' {
		cmd.Print(s)
	} else {
		cmd.Println(s)
	}
	return nil
}
