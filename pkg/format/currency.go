// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package format

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/wrgl/txview/pkg/ledger"
)

const zeroDollars = "$0.00"

// Currency renders a as US dollars with exactly two decimal places, e.g.
// "$1,234.50" or "-$12.00". Invalid amounts render as "$0.00".
func Currency(a ledger.Amount) string {
	if !a.Valid() {
		return zeroDollars
	}
	d := a.Decimal().Round(2)
	sb := &strings.Builder{}
	if d.IsNegative() {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	intPart, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		sb.WriteString(humanize.Comma(n))
	} else {
		sb.WriteString(groupDigits(intPart))
	}
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}

// groupDigits inserts thousands separators into a string of digits too long
// for int64.
func groupDigits(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	sb := &strings.Builder{}
	first := n % 3
	if first == 0 {
		first = 3
	}
	sb.WriteString(s[:first])
	for i := first; i < n; i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
