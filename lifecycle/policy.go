// Package lifecycle owns bill status changes: payments, generic status
// edits and the overdue sweep.
package lifecycle

import "github.com/satheeshds/aguapago/models"

// standardTransitions lists the status changes the normal billing flow
// produces. Anything else is still applied but reported.
var standardTransitions = map[models.BillStatus][]models.BillStatus{
	models.BillStatusPending: {models.BillStatusPaid, models.BillStatusOverdue, models.BillStatusCancelled},
	models.BillStatusOverdue: {models.BillStatusPaid, models.BillStatusCancelled},
}

// IsStandard reports whether moving a bill from one status to another is
// part of the normal flow. Staying in the same status is always standard.
func IsStandard(from, to models.BillStatus) bool {
	if from == to {
		return true
	}
	for _, s := range standardTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
