package payrun

import (
	payrunerrors "github.com/shilpmis/saral-payroll/internal/payrun/errors"
)

// EnsureMutable rejects any change to a paid run. It runs against the
// already-loaded record, before the service issues a single write, so a
// paid run is never touched by an update path.
func EnsureMutable(run StaffPayRun) error {
	if run.Status == StatusPaid {
		return payrunerrors.ErrPayRunPaidImmutable
	}
	return nil
}

// GuardTransition validates a requested status change. Besides requiring
// a known status value there is no forward-only state machine: any
// unpaid run may move to any status, including back to draft. Paid is
// terminal and is covered by EnsureMutable.
func GuardTransition(current, next string) error {
	if current == StatusPaid {
		return payrunerrors.ErrPayRunPaidImmutable
	}
	if !ValidStatus(next) {
		return payrunerrors.ErrInvalidStatus
	}
	return nil
}
