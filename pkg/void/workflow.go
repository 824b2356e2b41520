// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package void

import (
	"fmt"
)

var ErrNoVoidedStatus = fmt.Errorf("no status named \"voided\"")

type State int

const (
	Idle State = iota
	ConfirmPending
)

func (s State) String() string {
	if s == ConfirmPending {
		return "confirm-pending"
	}
	return "idle"
}

// Workflow is the two step void confirmation: the dialog opens on request
// and closes on cancel or confirm.
type Workflow struct {
	state State
}

func (w *Workflow) State() State {
	return w.state
}

// IsOpen reports whether the confirmation dialog is showing
func (w *Workflow) IsOpen() bool {
	return w.state == ConfirmPending
}

// CanOpen reports whether the void action is enabled
func CanOpen(selected int) bool {
	return selected > 0
}

// Open shows the dialog. It does nothing and returns false when nothing is
// selected.
func (w *Workflow) Open(selected int) bool {
	if !CanOpen(selected) {
		return false
	}
	w.state = ConfirmPending
	return true
}

// Cancel closes the dialog without side effects
func (w *Workflow) Cancel() {
	w.state = Idle
}

// Confirm runs apply if the dialog is open, then closes it whatever apply
// returned. Confirming a closed dialog does nothing.
func (w *Workflow) Confirm(apply func() error) error {
	if w.state != ConfirmPending {
		return nil
	}
	defer func() { w.state = Idle }()
	return apply()
}
