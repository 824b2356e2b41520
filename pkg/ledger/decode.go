// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package ledger

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/shopspring/decimal"
	"github.com/wrgl/txview/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed assets/transactions_data.json
var bundled []byte

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath guesses document format from file extension. A trailing
// ".gz" marks the file as gzip-compressed.
func FormatFromPath(path string) (format Format, compressed bool) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".gz") {
		compressed = true
		name = strings.TrimSuffix(name, ".gz")
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		format = FormatJSON
	}
	return
}

// Load returns the document bundled with the binary.
func Load() *Document {
	return parse(bundled, FormatJSON)
}

// Decode reads a document from r. Only read errors are returned: content that
// cannot be parsed, or lacks the expected fields, yields empty collections.
func Decode(r io.Reader, format Format) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(b, format), nil
}

// ReadFile decodes the document at path, decompressing it first if the name
// ends with ".gz".
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	format, compressed := FormatFromPath(path)
	var r io.Reader = f
	if compressed {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(fmt.Sprintf("error decompressing %q", path), err)
		}
		defer gr.Close()
		r = gr
	}
	doc, err := Decode(r, format)
	if err != nil {
		return nil, errors.Wrap(fmt.Sprintf("error reading %q", path), err)
	}
	return doc, nil
}

func parse(b []byte, format Format) *Document {
	raw := map[string]interface{}{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return &Document{}
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return &Document{}
		}
	}
	doc := &Document{
		Transactions: []Transaction{},
		Statuses:     []Status{},
	}
	for _, obj := range objects(raw["Transactions"]) {
		doc.Transactions = append(doc.Transactions, Transaction{
			Company:   textOf(obj["Company"]),
			Reference: textOf(obj["Reference"]),
			Date:      textOf(obj["Date"]),
			SubTotal:  amountOf(obj["SubTotal"]),
			Surcharge: amountOf(obj["Surcharge"]),
			Amount:    amountOf(obj["Amount"]),
			Status:    intOf(obj["Status"]),
		})
	}
	for _, obj := range objects(raw["Statuses"]) {
		doc.Statuses = append(doc.Statuses, Status{
			Key:  intOf(obj["Key"]),
			Name: textOf(obj["Name"]),
		})
	}
	return doc
}

// objects returns the elements of v that are objects, skipping anything else.
func objects(v interface{}) []map[string]interface{} {
	sl, ok := v.([]interface{})
	if !ok {
		return nil
	}
	res := make([]map[string]interface{}, 0, len(sl))
	for _, item := range sl {
		if m, ok := item.(map[string]interface{}); ok {
			res = append(res, m)
		}
	}
	return res
}

func textOf(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case json.Number:
		return t.String()
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t)
	}
	return ""
}

func amountOf(v interface{}) Amount {
	switch t := v.(type) {
	case json.Number:
		return ParseAmount(t.String())
	case int:
		return NewAmount(decimal.NewFromInt(int64(t)))
	case int64:
		return NewAmount(decimal.NewFromInt(t))
	case uint64:
		return ParseAmount(fmt.Sprint(t))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Amount{}
		}
		return AmountFromFloat(t)
	}
	return Amount{}
}

func intOf(v interface{}) int {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil && f == math.Trunc(f) {
			return int(f)
		}
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return int(t)
		}
	}
	return 0
}
