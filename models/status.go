package models

import (
	"fmt"
	"strings"
)

// BillStatus is the lifecycle state of a bill.
type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusOverdue   BillStatus = "OVERDUE"
	BillStatusCancelled BillStatus = "CANCELLED"
)

// BillStatuses lists every status in display order.
var BillStatuses = []BillStatus{BillStatusPending, BillStatusPaid, BillStatusOverdue, BillStatusCancelled}

func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue, BillStatusCancelled:
		return true
	}
	return false
}

// ParseBillStatus accepts a status name in any letter case.
func ParseBillStatus(s string) (BillStatus, error) {
	st := BillStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("status must be one of: %s", statusList())
	}
	return st, nil
}

func statusList() string {
	names := make([]string, len(BillStatuses))
	for i, s := range BillStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
