// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package selection

import (
	"sort"

	"github.com/wrgl/txview/pkg/ledger"
)

// Set tracks selected transaction references. References that no longer
// appear in the displayed list are kept until the set is replaced or cleared.
type Set struct {
	refs map[string]struct{}
}

func New() *Set {
	return &Set{refs: map[string]struct{}{}}
}

func (s *Set) Has(ref string) bool {
	_, ok := s.refs[ref]
	return ok
}

func (s *Set) Len() int {
	return len(s.refs)
}

// Toggle flips membership of ref and reports whether it is now selected
func (s *Set) Toggle(ref string) bool {
	if _, ok := s.refs[ref]; ok {
		delete(s.refs, ref)
		return false
	}
	s.refs[ref] = struct{}{}
	return true
}

func (s *Set) Clear() {
	s.refs = map[string]struct{}{}
}

// AllSelected reports whether displayed is non-empty and every displayed
// transaction is selected.
func (s *Set) AllSelected(displayed []ledger.Transaction) bool {
	if len(displayed) == 0 {
		return false
	}
	for i := range displayed {
		if !s.Has(displayed[i].Reference) {
			return false
		}
	}
	return true
}

// ToggleAll selects exactly the displayed transactions unless all of them are
// already selected, in which case the set is cleared. It reports whether
// anything is selected afterward.
func (s *Set) ToggleAll(displayed []ledger.Transaction) bool {
	if s.AllSelected(displayed) {
		s.Clear()
		return false
	}
	s.refs = make(map[string]struct{}, len(displayed))
	for i := range displayed {
		s.refs[displayed[i].Reference] = struct{}{}
	}
	return len(s.refs) > 0
}

// References returns selected references in lexical order
func (s *Set) References() []string {
	sl := make([]string, 0, len(s.refs))
	for ref := range s.refs {
		sl = append(sl, ref)
	}
	sort.Strings(sl)
	return sl
}
