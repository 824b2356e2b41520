// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package sorter

import (
	"fmt"
	"strings"

	"github.com/wrgl/txview/pkg/ledger"
)

var ErrUnknownField = fmt.Errorf("unknown field")

// ParseField resolves a field from its document key or column title, ignoring
// case and spaces. So "amount", "Total Amount" and "total-amount" all
// resolve to ledger.FieldAmount.
func ParseField(s string) (ledger.Field, error) {
	norm := func(s string) string {
		s = strings.ToLower(s)
		return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
	}
	n := norm(s)
	for _, f := range ledger.Fields {
		if n == norm(string(f)) || n == norm(f.Title()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownField, s)
}
