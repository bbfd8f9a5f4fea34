package models

import "time"

// Money is an amount in the smallest currency unit (Colombian pesos carry no minor unit).
type Money int64

// Bill represents a water bill issued to a customer for one billing period.
type Bill struct {
	ID              string     `json:"id"`
	BillNumber      string     `json:"billNumber"`
	ClientID        string     `json:"clientId"`
	Period          string     `json:"period"`
	Amount          Money      `json:"amount"`
	DueDate         time.Time  `json:"dueDate"`
	IssueDate       time.Time  `json:"issueDate"`
	PaymentDate     *time.Time `json:"paymentDate,omitempty"`
	Status          BillStatus `json:"status"`
	ReceiptNumber   *string    `json:"receiptNumber,omitempty"`
	Consumption     *float64   `json:"consumption,omitempty"`
	PreviousReading *float64   `json:"previousReading,omitempty"`
	CurrentReading  *float64   `json:"currentReading,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	// Snapshot of the owning customer, joined on read.
	Customer *Customer `json:"customer,omitempty"`
}

// BillInput is used for creating bills.
type BillInput struct {
	BillNumber      string     `json:"billNumber" yaml:"billNumber" validate:"required"`
	ClientID        string     `json:"clientId" yaml:"clientId" validate:"required"`
	Period          string     `json:"period" yaml:"period" validate:"required"`
	Amount          Money      `json:"amount" yaml:"amount" validate:"required,min=0"`
	DueDate         *Date      `json:"dueDate" yaml:"dueDate" validate:"required"`
	IssueDate       *Date      `json:"issueDate" yaml:"issueDate" validate:"required"`
	Status          BillStatus `json:"status" yaml:"status" validate:"omitempty,billstatus"`
	PaymentDate     *Date      `json:"paymentDate" yaml:"paymentDate"`
	ReceiptNumber   *string    `json:"receiptNumber" yaml:"receiptNumber"`
	Consumption     *float64   `json:"consumption" yaml:"consumption"`
	PreviousReading *float64   `json:"previousReading" yaml:"previousReading"`
	CurrentReading  *float64   `json:"currentReading" yaml:"currentReading"`
}

// Validate checks required fields and fills in the PENDING default when no
// status was supplied.
func (b *BillInput) Validate() string {
	if msg := validationMessage(validate.Struct(b)); msg != "" {
		return msg
	}
	if b.Status == "" {
		b.Status = BillStatusPending
	}
	return ""
}

// BillPatch is a generic partial update. BillNumber and ClientID are immutable.
type BillPatch struct {
	Period          *string     `json:"period" validate:"omitempty,min=1"`
	Amount          *Money      `json:"amount" validate:"omitempty,min=0"`
	Status          *BillStatus `json:"status" validate:"omitempty,billstatus"`
	DueDate         *Date       `json:"dueDate"`
	IssueDate       *Date       `json:"issueDate"`
	PaymentDate     *Date       `json:"paymentDate"`
	ReceiptNumber   *string     `json:"receiptNumber"`
	Consumption     *float64    `json:"consumption"`
	PreviousReading *float64    `json:"previousReading"`
	CurrentReading  *float64    `json:"currentReading"`
}

func (b *BillPatch) Validate() string {
	return validationMessage(validate.Struct(b))
}

// PayInput carries the receipt issued by the payment channel.
type PayInput struct {
	ReceiptNumber string `json:"receiptNumber" validate:"required"`
}

func (p *PayInput) Validate() string {
	if msg := validationMessage(validate.Struct(p)); msg != "" {
		return "Receipt number is required"
	}
	return ""
}

// BillFilter selects bills for the history query. Nil fields do not filter.
type BillFilter struct {
	ClientID  *string
	Status    *BillStatus
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// Offset returns the number of rows skipped before the requested page.
func (f BillFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// BillStats aggregates bill counts and amounts, optionally for one client.
type BillStats struct {
	TotalBills   int   `json:"totalBills"`
	PaidBills    int   `json:"paidBills"`
	PendingBills int   `json:"pendingBills"`
	OverdueBills int   `json:"overdueBills"`
	TotalAmount  Money `json:"totalAmount"`
	PaidAmount   Money `json:"paidAmount"`
	// PendingAmount is TotalAmount minus PaidAmount, so overdue and cancelled
	// amounts are counted here as well.
	PendingAmount Money `json:"pendingAmount"`
}
