// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/wrgl/txview/pkg/errors"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/txtable"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

type Format int

const (
	FormatCSV Format = iota
	FormatCSVGzip
	FormatXLSX
)

func (f Format) String() string {
	switch f {
	case FormatCSVGzip:
		return "csv.gz"
	case FormatXLSX:
		return "xlsx"
	}
	return "csv"
}

// FormatFromPath picks the format from the file extension. "-" means CSV
// written to stdout.
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case path == "-", strings.HasSuffix(lower, ".csv"):
		return FormatCSV, nil
	case strings.HasSuffix(lower, ".csv.gz"):
		return FormatCSVGzip, nil
	case strings.HasSuffix(lower, ".xlsx"):
		return FormatXLSX, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Header returns the exported column titles
func Header() []string {
	sl := make([]string, len(ledger.Fields))
	for i, f := range ledger.Fields {
		sl[i] = f.Title()
	}
	return sl
}

// Record returns the cells of row in column order
func Record(row txtable.Row) []string {
	sl := make([]string, len(ledger.Fields))
	for i, f := range ledger.Fields {
		sl[i] = row.Cell(f)
	}
	return sl
}

type Options struct {
	// CSV delimiter, defaults to comma
	Delimiter rune
}

func WriteCSV(w io.Writer, rows []txtable.Row, opts Options) error {
	writer := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}
	if err := writer.Write(Header()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(Record(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteCSVGzip(w io.Writer, rows []txtable.Row, opts Options) error {
	gw := gzip.NewWriter(w)
	if err := WriteCSV(gw, rows, opts); err != nil {
		return err
	}
	return gw.Close()
}

const sheetName = "Transactions"

func WriteXLSX(w io.Writer, rows []txtable.Row) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	if err = setRow(f, 1, Header()); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err = f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return err
	}
	for i, row := range rows {
		if err = setRow(f, i+2, Record(row)); err != nil {
			return err
		}
	}
	if err = f.SetColWidth(sheetName, "A", "G", 20); err != nil {
		return err
	}
	return f.Write(w)
}

func setRow(f *excelize.File, n int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, s := range cells {
		values[i] = s
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

// Write writes rows to w in the given format
func Write(w io.Writer, format Format, rows []txtable.Row, opts Options) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rows, opts)
	case FormatCSVGzip:
		return WriteCSVGzip(w, rows, opts)
	case FormatXLSX:
		return WriteXLSX(w, rows)
	}
	return ErrUnsupportedFormat
}

// WriteFile creates path and writes rows in the format named by its extension
func WriteFile(path string, rows []txtable.Row, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap("error creating export file", err)
	}
	if err = Write(f, format, rows, opts); err != nil {
		f.Close()
		return errors.Wrap("error writing export file", err)
	}
	return f.Close()
}
