// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package ledger

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a currency amount that may be absent. An amount that is missing
// from the document, or is not a number, is invalid.
type Amount struct {
	d decimal.NullDecimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{d: decimal.NullDecimal{Decimal: d, Valid: true}}
}

func AmountFromFloat(f float64) Amount {
	return NewAmount(decimal.NewFromFloat(f))
}

// ParseAmount parses s as a decimal number. It returns an invalid amount if
// s is not a number.
func ParseAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

func (a Amount) Valid() bool {
	return a.d.Valid
}

// Decimal returns the amount, or zero if it is invalid.
func (a Amount) Decimal() decimal.Decimal {
	if !a.d.Valid {
		return decimal.Zero
	}
	return a.d.Decimal
}

func (a Amount) String() string {
	if !a.d.Valid {
		return ""
	}
	return a.d.Decimal.String()
}

// Equal reports whether both amounts are invalid or hold the same value.
func (a Amount) Equal(b Amount) bool {
	if a.d.Valid != b.d.Valid {
		return false
	}
	return !a.d.Valid || a.d.Decimal.Equal(b.d.Decimal)
}

// MarshalJSON writes the amount as a bare number, or null when invalid.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.d.Valid {
		return []byte("null"), nil
	}
	return []byte(a.d.Decimal.String()), nil
}

func (a Amount) MarshalYAML() (interface{}, error) {
	if !a.d.Valid {
		return nil, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: a.d.Decimal.String()}, nil
}
