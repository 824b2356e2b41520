// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package status

import (
	"strings"

	"github.com/wrgl/txview/pkg/ledger"
)

type Class string

const (
	ClassPending Class = "status-pending"
	ClassSettled Class = "status-settled"
	ClassFailed  Class = "status-failed"
	ClassVoided  Class = "status-voided"
	ClassUnknown Class = "status-unknown"
)

const UnknownName = "Unknown"

// Details is what the status column shows for a transaction
type Details struct {
	Name  string
	Class Class
}

var classes = map[string]Class{
	"pending": ClassPending,
	"settled": ClassSettled,
	"failed":  ClassFailed,
	"voided":  ClassVoided,
}

func find(code int, statuses []ledger.Status) (ledger.Status, bool) {
	for _, s := range statuses {
		if s.Key == code {
			return s, true
		}
	}
	return ledger.Status{}, false
}

// Resolve maps a status code to its display name and class. Unknown codes
// resolve to "Unknown", unrecognized names keep their name with the unknown
// class.
func Resolve(code int, statuses []ledger.Status) Details {
	s, ok := find(code, statuses)
	if !ok {
		return Details{Name: UnknownName, Class: ClassUnknown}
	}
	if c, ok := classes[strings.ToLower(s.Name)]; ok {
		return Details{Name: s.Name, Class: c}
	}
	return Details{Name: s.Name, Class: ClassUnknown}
}

// VoidedKey returns the key of the first status named "voided", ignoring case
func VoidedKey(statuses []ledger.Status) (int, bool) {
	for _, s := range statuses {
		if strings.EqualFold(s.Name, "voided") {
			return s.Key, true
		}
	}
	return 0, false
}
