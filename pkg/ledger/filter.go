// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package ledger

import (
	"strings"

	"github.com/gobwas/glob"
)

// FilterCompany returns transactions whose company matches glob pattern,
// ignoring case. An empty pattern matches everything.
func FilterCompany(txs []Transaction, pattern string) ([]Transaction, error) {
	if pattern == "" {
		return txs, nil
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, err
	}
	res := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if g.Match(strings.ToLower(t.Company)) {
			res = append(res, t)
		}
	}
	return res, nil
}
