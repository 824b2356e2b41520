// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txtable

func (t *Table) IsSelected(ref string) bool {
	return t.selected.Has(ref)
}

func (t *Table) SelectedCount() int {
	return t.selected.Len()
}

// SelectedReferences returns selected references in lexical order
func (t *Table) SelectedReferences() []string {
	return t.selected.References()
}

// ToggleRow flips selection of the row with reference ref
func (t *Table) ToggleRow(ref string) {
	t.selected.Toggle(ref)
	t.selRev++
}

// ToggleAll selects every displayed row, or clears the selection if they are
// all selected already.
func (t *Table) ToggleAll() {
	t.selected.ToggleAll(t.Displayed())
	t.selRev++
}

// AllSelected reports whether the displayed list is non-empty and entirely
// selected. It drives the header checkbox.
func (t *Table) AllSelected() bool {
	revs := [3]uint64{t.dataRev, t.sortRev, t.selRev}
	if !t.allSelectedComputed || t.allSelectedRevs != revs {
		t.allSelected = t.selected.AllSelected(t.Displayed())
		t.allSelectedRevs = revs
		t.allSelectedComputed = true
	}
	return t.allSelected
}
