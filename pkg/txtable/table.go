// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txtable

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/selection"
	"github.com/wrgl/txview/pkg/sorter"
	"github.com/wrgl/txview/pkg/status"
	"github.com/wrgl/txview/pkg/void"
)

// Table holds every piece of state behind the transaction table: the loaded
// data, sort config, selection and void dialog. Derived values (the displayed
// list and the select-all flag) are recomputed lazily when their inputs change.
type Table struct {
	transactions []ledger.Transaction
	statuses     []ledger.Status
	sorter       *sorter.Sorter
	sortCfg      sorter.Config
	selected     *selection.Set
	voidFlow     void.Workflow
	loc          *time.Location
	logger       logr.Logger

	// revisions of the inputs to derived values
	dataRev, sortRev, selRev uint64

	displayed         []ledger.Transaction
	displayedRevs     [2]uint64
	displayedComputed bool

	allSelected         bool
	allSelectedRevs     [3]uint64
	allSelectedComputed bool

	// number of times the displayed list was recomputed
	sortRuns int
}

type Option func(t *Table)

// WithLocation sets the time zone used to parse and display dates
func WithLocation(loc *time.Location) Option {
	return func(t *Table) {
		t.loc = loc
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(t *Table) {
		t.logger = logger
	}
}

// New loads doc into a new table. The table works on its own copy of the
// transactions so doc is never modified.
func New(doc *ledger.Document, opts ...Option) *Table {
	t := &Table{
		selected: selection.New(),
		loc:      time.Local,
		logger:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if doc != nil {
		t.transactions = append([]ledger.Transaction{}, doc.Transactions...)
		t.statuses = append([]ledger.Status{}, doc.Statuses...)
	}
	if t.transactions == nil {
		t.transactions = []ledger.Transaction{}
	}
	if t.statuses == nil {
		t.statuses = []ledger.Status{}
	}
	t.sorter = sorter.New(t.loc)
	t.logger.V(1).Info("table loaded", "transactions", len(t.transactions), "statuses", len(t.statuses))
	return t
}

func (t *Table) Location() *time.Location {
	return t.loc
}

// Transactions returns the transactions in their original order
func (t *Table) Transactions() []ledger.Transaction {
	return t.transactions
}

func (t *Table) Statuses() []ledger.Status {
	return t.statuses
}

func (t *Table) SortConfig() sorter.Config {
	return t.sortCfg
}

// RequestSort sorts by key ascending, or flips the direction if the table
// is already sorted by key.
func (t *Table) RequestSort(key ledger.Field) {
	t.sortCfg = sorter.Toggle(t.sortCfg, key)
	t.sortRev++
	t.logger.V(1).Info("sort", "key", string(key), "direction", t.sortCfg.Direction.String())
}

// Displayed returns the transactions in display order.
func (t *Table) Displayed() []ledger.Transaction {
	revs := [2]uint64{t.dataRev, t.sortRev}
	if !t.displayedComputed || t.displayedRevs != revs {
		t.displayed = t.sorter.Sort(t.transactions, t.sortCfg)
		t.displayedRevs = revs
		t.displayedComputed = true
		t.sortRuns++
	}
	return t.displayed
}

func (t *Table) Len() int {
	return len(t.transactions)
}

// Status resolves the status shown for tx
func (t *Table) Status(tx *ledger.Transaction) status.Details {
	return status.Resolve(tx.Status, t.statuses)
}
