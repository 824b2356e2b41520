// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package dotno

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// fieldName turns a dotted path segment such as "timezone" into the Go
// field name "Timezone"
func fieldName(p string) string {
	if p == "" {
		return p
	}
	return strings.ToUpper(p[:1]) + p[1:]
}

func indirect(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Ptr {
		return v.Elem()
	}
	return v
}

// structField returns the field of struct v named by segment p
func structField(v reflect.Value, p string, createIfZero bool) (reflect.Value, error) {
	name := fieldName(p)
	if _, ok := v.Type().FieldByName(name); !ok {
		return reflect.Value{}, fmt.Errorf(`field "%s" not found`, name)
	}
	f := v.FieldByName(name)
	if !f.IsZero() {
		return f, nil
	}
	if !createIfZero {
		return reflect.Value{}, fmt.Errorf(`field "%s" is zero`, name)
	}
	switch f.Kind() {
	case reflect.Ptr:
		f.Set(reflect.New(f.Type().Elem()))
	case reflect.Map:
		f.Set(reflect.MakeMap(f.Type()))
	}
	return f, nil
}

// mapEntry returns the value of map v under key p
func mapEntry(v reflect.Value, p string, createIfZero bool) (reflect.Value, error) {
	if v.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, fmt.Errorf("map key must be a string")
	}
	key := reflect.ValueOf(p)
	if e := v.MapIndex(key); e.IsValid() {
		return e, nil
	}
	if !createIfZero {
		return reflect.Value{}, fmt.Errorf("key not found: %q", p)
	}
	t := v.Type().Elem()
	var e reflect.Value
	if t.Kind() == reflect.Ptr {
		e = reflect.New(t.Elem())
	} else {
		e = reflect.New(t).Elem()
	}
	v.SetMapIndex(key, e)
	return e, nil
}

// GetFieldValue walks s following a dot-separated property path such as
// "display.timezone". When createIfZero is true, nil pointers and maps along
// the way are allocated so the returned value can be set.
func GetFieldValue(s interface{}, prop string, createIfZero bool) (v reflect.Value, err error) {
	v = reflect.ValueOf(s)
	if prop == "" {
		return v, nil
	}
	for _, p := range strings.Split(prop, ".") {
		v = indirect(v)
		switch v.Kind() {
		case reflect.Struct:
			v, err = structField(v, p, createIfZero)
		case reflect.Map:
			v, err = mapEntry(v, p, createIfZero)
		default:
			err = fmt.Errorf("unhandled kind %v", v.Kind())
		}
		if err != nil {
			return reflect.Value{}, err
		}
	}
	return v, nil
}

// GetParentField returns the value holding the last segment of prop, and
// that segment
func GetParentField(s interface{}, prop string) (parent reflect.Value, name string, err error) {
	var parentProp string
	if i := strings.LastIndex(prop, "."); i >= 0 {
		parentProp, name = prop[:i], prop[i+1:]
	} else {
		name = prop
	}
	parent, err = GetFieldValue(s, parentProp, false)
	return
}

// UnsetField resets the field at prop to its zero value, or deletes the map
// entry at prop.
func UnsetField(s interface{}, prop string) error {
	parent, name, err := GetParentField(s, prop)
	if err != nil {
		return err
	}
	parent = indirect(parent)
	switch parent.Kind() {
	case reflect.Struct:
		field := parent.FieldByName(fieldName(name))
		if !field.IsValid() {
			return fmt.Errorf(`field "%s" not found`, fieldName(name))
		}
		field.Set(reflect.Zero(field.Type()))
	case reflect.Map:
		parent.SetMapIndex(reflect.ValueOf(name), reflect.Value{})
	default:
		return fmt.Errorf("unhandled kind %v", parent.Kind())
	}
	return nil
}

func parseScalar(t reflect.Type, val string) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(val).Convert(t), nil
	case reflect.Int:
		i, err := strconv.Atoi(val)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("bad value: %q, expect an integer", val)
		}
		return reflect.ValueOf(i).Convert(t), nil
	case reflect.Bool:
		switch strings.ToLower(val) {
		case "true":
			return reflect.ValueOf(true).Convert(t), nil
		case "false":
			return reflect.ValueOf(false).Convert(t), nil
		}
		return reflect.Value{}, fmt.Errorf("bad value: %q, only accept %q or %q", val, "true", "false")
	}
	return reflect.Value{}, fmt.Errorf("setValue: unhandled type %v", t)
}

// SetValue parses val according to the type of v and stores it in v. A
// pointer to a scalar is replaced with a pointer to the new value.
func SetValue(v reflect.Value, val string) error {
	t := v.Type()
	if t.Kind() != reflect.Ptr {
		x, err := parseScalar(t, val)
		if err != nil {
			return err
		}
		v.Set(x)
		return nil
	}
	switch t.Elem().Kind() {
	case reflect.Bool, reflect.Int:
		x, err := parseScalar(t.Elem(), val)
		if err != nil {
			return err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(x)
		v.Set(p)
		return nil
	}
	return fmt.Errorf("setValue: unhandled pointer of type %v", t.Elem())
}
