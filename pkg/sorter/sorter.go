// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package sorter

import (
	"sort"
	"strings"
	"time"

	"github.com/wrgl/txview/pkg/format"
	"github.com/wrgl/txview/pkg/ledger"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Config is the sort state of the table. An empty Key means the original
// order is kept.
type Config struct {
	Key       ledger.Field
	Direction Direction
}

// Toggle returns the config after the user picks key: a new key always
// starts ascending, picking the current key flips the direction.
func Toggle(cfg Config, key ledger.Field) Config {
	if cfg.Key == key && cfg.Direction == Ascending {
		return Config{Key: key, Direction: Descending}
	}
	return Config{Key: key, Direction: Ascending}
}

// Sorter orders transactions. Zoneless dates are interpreted in Location.
type Sorter struct {
	Location *time.Location
}

func New(loc *time.Location) *Sorter {
	if loc == nil {
		loc = time.Local
	}
	return &Sorter{Location: loc}
}

// Sort returns a sorted copy of txs. The input is never modified and ties
// keep their original order.
func (s *Sorter) Sort(txs []ledger.Transaction, cfg Config) []ledger.Transaction {
	res := make([]ledger.Transaction, len(txs))
	copy(res, txs)
	if cfg.Key == "" {
		return res
	}
	sort.SliceStable(res, func(i, j int) bool {
		return s.Compare(&res[i], &res[j], cfg) < 0
	})
	return res
}

// Compare returns -1, 0 or 1 depending on how a orders against b under cfg.
func (s *Sorter) Compare(a, b *ledger.Transaction, cfg Config) int {
	c := s.compare(a, b, cfg.Key)
	if cfg.Direction == Descending {
		return -c
	}
	return c
}

func (s *Sorter) compare(a, b *ledger.Transaction, key ledger.Field) int {
	va, vb := a.Value(key), b.Value(key)
	switch {
	case va.Numeric && vb.Numeric:
		return va.Number.Cmp(vb.Number)
	case key == ledger.FieldDate:
		return s.compareDates(va.Text, vb.Text)
	}
	return strings.Compare(strings.ToLower(va.Text), strings.ToLower(vb.Text))
}

// compareDates orders unparsable dates after every valid date.
func (s *Sorter) compareDates(a, b string) int {
	ta, okA := format.ParseDate(a, s.Location)
	tb, okB := format.ParseDate(b, s.Location)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return ta.Compare(tb)
}

// Sort orders txs with zoneless dates in the local time zone
func Sort(txs []ledger.Transaction, cfg Config) []ledger.Transaction {
	return New(time.Local).Sort(txs, cfg)
}
