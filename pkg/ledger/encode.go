// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/wrgl/txview/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Encode writes doc in the given format. The output can be read back with
// Decode.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
}

// WriteFile encodes doc into path using the format named by its extension,
// gzip-compressed if the name ends with ".gz".
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	format, compressed := FormatFromPath(path)
	var w io.Writer = f
	var gw *gzip.Writer
	if compressed {
		gw = gzip.NewWriter(f)
		w = gw
	}
	if err = Encode(w, doc, format); err == nil && gw != nil {
		err = gw.Close()
	}
	if err != nil {
		f.Close()
		return errors.Wrap(fmt.Sprintf("error writing %q", path), err)
	}
	return f.Close()
}
