// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package format

import (
	"strings"
	"time"
)

// DisplayLayout is used for every date shown in the table
const DisplayLayout = "Jan 2, 2006 3:04 PM"

var (
	zonedLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
	dateOnlyLayout = "2006-01-02"
)

// ParseDate parses s the way browsers parse ISO-like date strings: a value
// with a zone offset is absolute, a date-time without offset is in loc and a
// bare date is midnight UTC. Fractional seconds are accepted.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, s, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Date renders s as e.g. "Mar 1, 2024 9:15 AM" in loc. Empty or unparsable
// values render as "".
func Date(s string, loc *time.Location) string {
	t, ok := ParseDate(s, loc)
	if !ok {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}
