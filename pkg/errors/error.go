// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package errors

import (
	"errors"
	"strings"
)

// Error describes what was being attempted when Err happened
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap prefixes err with op. Wrapping a nil error returns nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func New(msg string) error {
	return errors.New(msg)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Contains reports whether err matches target, which is either a string or
// an error. A string matches when the message of err contains it. An error
// matches through errors.Is, or when its message is part of the message of
// err.
func Contains(err error, target interface{}) bool {
	if err == nil || target == nil {
		return err == nil && target == nil
	}
	switch t := target.(type) {
	case string:
		return strings.Contains(err.Error(), t)
	case error:
		return errors.Is(err, t) || strings.Contains(err.Error(), t.Error())
	}
	return false
}
