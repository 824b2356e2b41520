// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package txtable

import (
	"github.com/wrgl/txview/pkg/status"
	"github.com/wrgl/txview/pkg/void"
)

// CanVoid reports whether the void button is enabled
func (t *Table) CanVoid() bool {
	return void.CanOpen(t.selected.Len())
}

func (t *Table) VoidDialogOpen() bool {
	return t.voidFlow.IsOpen()
}

// OpenVoid opens the confirmation dialog. Returns false if nothing is
// selected.
func (t *Table) OpenVoid() bool {
	return t.voidFlow.Open(t.selected.Len())
}

func (t *Table) CancelVoid() {
	t.voidFlow.Cancel()
}

// ConfirmVoid sets the status of every selected transaction to the "voided"
// status, clears the selection and closes the dialog. It returns the number
// of transactions changed. When no status is named "voided" nothing changes,
// the selection is kept, the dialog still closes and void.ErrNoVoidedStatus
// is returned.
func (t *Table) ConfirmVoid() (n int, err error) {
	refs := t.selected.References()
	err = t.voidFlow.Confirm(func() error {
		key, ok := status.VoidedKey(t.statuses)
		if !ok {
			return void.ErrNoVoidedStatus
		}
		for i := range t.transactions {
			if t.selected.Has(t.transactions[i].Reference) {
				t.transactions[i].Status = key
				n++
			}
		}
		t.selected.Clear()
		t.dataRev++
		t.selRev++
		return nil
	})
	if err != nil {
		t.logger.Info("void skipped", "reason", err.Error(), "selected", len(refs))
		return 0, err
	}
	if n > 0 {
		t.logger.Info("transactions voided", "count", n, "references", refs)
	}
	return n, nil
}
