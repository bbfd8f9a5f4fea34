// Package events publishes bill lifecycle events.
package events

//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks

import (
	"context"
	"time"

	"github.com/satheeshds/aguapago/models"
)

// Type names a lifecycle event.
type Type string

const (
	BillPaid    Type = "bill.paid"
	BillOverdue Type = "bill.overdue"
)

// Event is the payload written to the event stream.
type Event struct {
	Type          Type              `json:"type"`
	BillNumber    string            `json:"billNumber"`
	ClientID      string            `json:"clientId"`
	Amount        models.Money      `json:"amount"`
	Status        models.BillStatus `json:"status"`
	ReceiptNumber *string           `json:"receiptNumber,omitempty"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

// NewBillEvent builds an event from the bill's current state.
func NewBillEvent(t Type, b *models.Bill, at time.Time) Event {
	return Event{
		Type:          t,
		BillNumber:    b.BillNumber,
		ClientID:      b.ClientID,
		Amount:        b.Amount,
		Status:        b.Status,
		ReceiptNumber: b.ReceiptNumber,
		OccurredAt:    at,
	}
}

// Publisher delivers lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
