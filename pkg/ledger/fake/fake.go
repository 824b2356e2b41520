// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package fake generates random but plausible transaction documents.
package fake

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/wrgl/txview/pkg/ledger"
)

// Statuses returns the four statuses every generated document carries
func Statuses() []ledger.Status {
	return []ledger.Status{
		{Key: 1, Name: "Pending"},
		{Key: 2, Name: "Settled"},
		{Key: 3, Name: "Failed"},
		{Key: 4, Name: "Voided"},
	}
}

// Transaction generates a transaction with the given reference. Amount is
// always SubTotal + Surcharge.
func Transaction(f *gofakeit.Faker, reference string, statuses []ledger.Status) ledger.Transaction {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	subTotal := decimal.NewFromFloat(f.Price(1, 5000)).Round(2)
	surcharge := subTotal.Mul(decimal.NewFromFloat(0.02)).Round(2)
	t := ledger.Transaction{
		Company:   f.Company(),
		Reference: reference,
		Date:      f.DateRange(start, end).Format("2006-01-02T15:04:05"),
		SubTotal:  ledger.NewAmount(subTotal),
		Surcharge: ledger.NewAmount(surcharge),
		Amount:    ledger.NewAmount(subTotal.Add(surcharge)),
	}
	if len(statuses) > 0 {
		t.Status = statuses[f.Number(0, len(statuses)-1)].Key
	}
	return t
}

// Document generates n transactions with unique references.
func Document(f *gofakeit.Faker, n int) *ledger.Document {
	doc := &ledger.Document{
		Transactions: make([]ledger.Transaction, 0, n),
		Statuses:     Statuses(),
	}
	base := f.Number(1000, 9000) * 1000
	for i := 0; i < n; i++ {
		doc.Transactions = append(doc.Transactions, Transaction(f, fmt.Sprintf("TXN-%d", base+i), doc.Statuses))
	}
	return doc
}
