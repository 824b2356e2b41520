// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names a sortable transaction field. The value is the field's key in
// the data document.
type Field string

const (
	FieldCompany   Field = "Company"
	FieldReference Field = "Reference"
	FieldDate      Field = "Date"
	FieldSubTotal  Field = "SubTotal"
	FieldSurcharge Field = "Surcharge"
	FieldAmount    Field = "Amount"
	FieldStatus    Field = "Status"
)

// Fields lists every sortable field in column order.
var Fields = []Field{
	FieldCompany, FieldReference, FieldDate, FieldSubTotal, FieldSurcharge, FieldAmount, FieldStatus,
}

// Title returns the column header shown for a field.
func (f Field) Title() string {
	switch f {
	case FieldSubTotal:
		return "Subtotal"
	case FieldAmount:
		return "Total Amount"
	}
	return string(f)
}

type Transaction struct {
	Company   string `json:"Company" yaml:"Company"`
	Reference string `json:"Reference" yaml:"Reference"`

	// Date is kept as written in the document. Parsing happens on demand.
	Date string `json:"Date" yaml:"Date"`

	SubTotal  Amount `json:"SubTotal" yaml:"SubTotal"`
	Surcharge Amount `json:"Surcharge" yaml:"Surcharge"`
	Amount    Amount `json:"Amount" yaml:"Amount"`

	// Status is a key into Document.Statuses
	Status int `json:"Status" yaml:"Status"`
}

type Status struct {
	Key  int    `json:"Key" yaml:"Key"`
	Name string `json:"Name" yaml:"Name"`
}

// Document is the static data set rendered by the table.
type Document struct {
	Transactions []Transaction `json:"Transactions" yaml:"Transactions"`
	Statuses     []Status      `json:"Statuses" yaml:"Statuses"`
}

// Value is a single field of a transaction as seen by comparators.
type Value struct {
	Text    string
	Number  decimal.Decimal
	Numeric bool
}

func amountValue(a Amount) Value {
	if !a.Valid() {
		return Value{}
	}
	return Value{Text: a.String(), Number: a.Decimal(), Numeric: true}
}

// Value returns the content of field f. Invalid amounts are not numeric and
// have empty text.
func (t *Transaction) Value(f Field) Value {
	switch f {
	case FieldCompany:
		return Value{Text: t.Company}
	case FieldReference:
		return Value{Text: t.Reference}
	case FieldDate:
		return Value{Text: t.Date}
	case FieldSubTotal:
		return amountValue(t.SubTotal)
	case FieldSurcharge:
		return amountValue(t.Surcharge)
	case FieldAmount:
		return amountValue(t.Amount)
	case FieldStatus:
		return Value{
			Text:    fmt.Sprint(t.Status),
			Number:  decimal.NewFromInt(int64(t.Status)),
			Numeric: true,
		}
	}
	return Value{}
}
