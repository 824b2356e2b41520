// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wrgl/txview/pkg/ledger"
)

func TestCurrency(t *testing.T) {
	for _, c := range []struct {
		amount ledger.Amount
		text   string
	}{
		{ledger.Amount{}, "$0.00"},
		{ledger.ParseAmount("abc"), "$0.00"},
		{ledger.ParseAmount("0"), "$0.00"},
		{ledger.ParseAmount("10"), "$10.00"},
		{ledger.ParseAmount("12.5"), "$12.50"},
		{ledger.ParseAmount("1234.567"), "$1,234.57"},
		{ledger.ParseAmount("1234.565"), "$1,234.57"},
		{ledger.ParseAmount("-1234.5"), "-$1,234.50"},
		{ledger.ParseAmount("999999.999"), "$1,000,000.00"},
		{ledger.ParseAmount("123456789012345678901234"), "$123,456,789,012,345,678,901,234.00"},
		{ledger.AmountFromFloat(0.1), "$0.10"},
	} {
		assert.Equal(t, c.text, Currency(c.amount), "amount %q", c.amount.String())
	}
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1", groupDigits("1"))
	assert.Equal(t, "123", groupDigits("123"))
	assert.Equal(t, "1,234", groupDigits("1234"))
	assert.Equal(t, "123,456", groupDigits("123456"))
	assert.Equal(t, "1,234,567", groupDigits("1234567"))
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	for _, c := range []struct {
		in  string
		out time.Time
		ok  bool
	}{
		{"", time.Time{}, false},
		{"not a date", time.Time{}, false},
		{"2024-13-01", time.Time{}, false},
		{"2024-03-01T09:15:00Z", time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC), true},
		{"2024-03-01T09:15:00.250+02:00", time.Date(2024, 3, 1, 7, 15, 0, 250000000, time.UTC), true},
		{"2024-03-01T09:15:00", time.Date(2024, 3, 1, 9, 15, 0, 0, loc), true},
		{"2024-03-01T09:15", time.Date(2024, 3, 1, 9, 15, 0, 0, loc), true},
		{"2024-03-01 21:05:09", time.Date(2024, 3, 1, 21, 5, 9, 0, loc), true},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
	} {
		tm, ok := ParseDate(c.in, loc)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.True(t, c.out.Equal(tm), "input %q: expected %v, got %v", c.in, c.out, tm)
		}
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "", Date("", time.UTC))
	assert.Equal(t, "", Date("yesterday", time.UTC))
	assert.Equal(t, "Mar 1, 2024 9:15 AM", Date("2024-03-01T09:15:00", time.UTC))
	assert.Equal(t, "Mar 1, 2024 9:05 PM", Date("2024-03-01T21:05:00", time.UTC))
	assert.Equal(t, "Mar 1, 2024 12:00 AM", Date("2024-03-01", time.UTC))
	assert.Equal(t, "Feb 29, 2024 7:00 PM", Date("2024-03-01", time.FixedZone("EST", -5*3600)))
	assert.Equal(t, "Mar 1, 2024 4:15 PM", Date("2024-03-01T09:15:00Z", time.FixedZone("UTC+7", 7*3600)))
}

func TestTexts(t *testing.T) {
	assert.Equal(t, "Void 0 Transactions", VoidButtonLabel(0))
	assert.Equal(t, "Void 1 Transaction", VoidButtonLabel(1))
	assert.Equal(t, "Void 3 Transactions", VoidButtonLabel(3))
	assert.Equal(t, "2 of 12 transactions selected", SelectionSummary(2, 12))
	assert.Equal(t, "12 total transactions", TotalSummary(12))
	assert.Equal(t, "Are you sure you want to void 1 selected transaction?", ConfirmQuestion(1))
	assert.Equal(t, "Are you sure you want to void 2 selected transactions?", ConfirmQuestion(2))
}
