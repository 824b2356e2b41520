// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wrgl/txview/pkg/conf"
	"github.com/wrgl/txview/pkg/errors"
	"github.com/wrgl/txview/pkg/ledger"
	"github.com/wrgl/txview/pkg/sorter"
	"github.com/wrgl/txview/pkg/txtable"
)

const bundledSource = "bundled"

// DataFile returns the document path given with --data (or $TXVIEW_DATA),
// falling back to data.file from config. Empty means the bundled document.
func DataFile(c *conf.Config) string {
	if s := viper.GetString("txview_data"); s != "" {
		return s
	}
	return c.DataFile()
}

// LoadDocument reads the data document and returns it with a description of
// where it came from.
func LoadDocument(c *conf.Config) (doc *ledger.Document, source string, err error) {
	fp := DataFile(c)
	if fp == "" {
		return ledger.Load(), bundledSource, nil
	}
	doc, err = ledger.ReadFile(fp)
	if err != nil {
		return nil, "", errors.Wrap("error loading data", err)
	}
	return doc, fp, nil
}

// LoadTable loads the data document into a table using the time zone from
// config. filter, if given, can drop transactions before the table is built.
func LoadTable(c *conf.Config, logger logr.Logger, filter func(doc *ledger.Document) error) (*txtable.Table, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, errors.Wrap("error loading display.timezone", err)
	}
	doc, source, err := LoadDocument(c)
	if err != nil {
		return nil, err
	}
	logger.Info("document loaded", "source", source, "transactions", len(doc.Transactions), "statuses", len(doc.Statuses))
	if filter != nil {
		if err = filter(doc); err != nil {
			return nil, err
		}
	}
	return txtable.New(doc, txtable.WithLocation(loc), txtable.WithLogger(logger)), nil
}

func AddTableFlags(flags *pflag.FlagSet) {
	flags.StringP("sort", "s", "", `sort by column, e.g. "company", "date" or "total amount"`)
	flags.Bool("desc", false, "sort in descending order, requires --sort")
	flags.String("company", "", `only show transactions whose company matches this glob pattern, e.g. "coho*"`)
}

// FilteredTable is like LoadTable but also applies the --company, --sort and
// --desc flags of cmd.
func FilteredTable(cmd *cobra.Command, c *conf.Config, logger logr.Logger) (*txtable.Table, error) {
	company, err := cmd.Flags().GetString("company")
	if err != nil {
		return nil, err
	}
	sortBy, err := cmd.Flags().GetString("sort")
	if err != nil {
		return nil, err
	}
	desc, err := cmd.Flags().GetBool("desc")
	if err != nil {
		return nil, err
	}
	var key ledger.Field
	if sortBy != "" {
		key, err = sorter.ParseField(sortBy)
		if err != nil {
			return nil, err
		}
	} else if desc {
		return nil, fmt.Errorf("--desc requires --sort")
	}
	tbl, err := LoadTable(c, logger, func(doc *ledger.Document) (err error) {
		doc.Transactions, err = ledger.FilterCompany(doc.Transactions, company)
		if err != nil {
			return errors.Wrap(fmt.Sprintf("bad company pattern %q", company), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if key != "" {
		tbl.RequestSort(key)
		if desc {
			tbl.RequestSort(key)
		}
	}
	return tbl, nil
}
