// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txtable

import (
	"github.com/wrgl/txview/pkg/format"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/sorter"
	"github.com/wrgl/txview/pkg/status"
)

// Row is a displayed transaction with every cell already formatted
type Row struct {
	Selected  bool
	Company   string
	Reference string
	Date      string
	SubTotal  string
	Surcharge string
	Amount    string
	Status    status.Details
}

// Cell returns the text shown in the column of field f
func (r Row) Cell(f ledger.Field) string {
	switch f {
	case ledger.FieldCompany:
		return r.Company
	case ledger.FieldReference:
		return r.Reference
	case ledger.FieldDate:
		return r.Date
	case ledger.FieldSubTotal:
		return r.SubTotal
	case ledger.FieldSurcharge:
		return r.Surcharge
	case ledger.FieldAmount:
		return r.Amount
	case ledger.FieldStatus:
		return r.Status.Name
	}
	return ""
}

// Rows formats every displayed transaction
func (t *Table) Rows() []Row {
	displayed := t.Displayed()
	rows := make([]Row, len(displayed))
	for i := range displayed {
		rows[i] = t.row(&displayed[i])
	}
	return rows
}

// Row formats the i-th displayed transaction
func (t *Table) Row(i int) Row {
	return t.row(&t.Displayed()[i])
}

func (t *Table) row(tx *ledger.Transaction) Row {
	return Row{
		Selected:  t.selected.Has(tx.Reference),
		Company:   tx.Company,
		Reference: tx.Reference,
		Date:      format.Date(tx.Date, t.loc),
		SubTotal:  format.Currency(tx.SubTotal),
		Surcharge: format.Currency(tx.Surcharge),
		Amount:    format.Currency(tx.Amount),
		Status:    t.Status(tx),
	}
}

// SortState returns "ascending" or "descending" for the sorted column and
// "none" for every other column.
func (t *Table) SortState(f ledger.Field) string {
	if t.sortCfg.Key != f {
		return "none"
	}
	return t.sortCfg.Direction.String()
}

// SortIndicator is the arrow drawn next to the sorted column title
func (t *Table) SortIndicator(f ledger.Field) string {
	if t.sortCfg.Key != f {
		return ""
	}
	if t.sortCfg.Direction == sorter.Descending {
		return "▼"
	}
	return "▲"
}

func (t *Table) TotalSummary() string {
	return format.TotalSummary(len(t.Displayed()))
}

func (t *Table) SelectionSummary() string {
	return format.SelectionSummary(t.selected.Len(), len(t.Displayed()))
}

func (t *Table) VoidButtonLabel() string {
	return format.VoidButtonLabel(t.selected.Len())
}

func (t *Table) ConfirmQuestion() string {
	return format.ConfirmQuestion(t.selected.Len())
}
