package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/satheeshds/aguapago/events"
	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/store"
)

// Service applies status changes to bills and announces them.
type Service struct {
	bills     store.BillStore
	publisher events.Publisher
	loc       *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

type Option func(*Service)

// WithClock overrides time.Now, for tests and scripted sweeps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a Service. loc is the billing time zone that decides
// which calendar day "today" is.
func NewService(bills store.BillStore, publisher events.Publisher, loc *time.Location, opts ...Option) *Service {
	s := &Service{
		bills:     bills,
		publisher: publisher,
		loc:       loc,
		now:       time.Now,
		logger:    slog.Default(),
	}
	if s.publisher == nil {
		s.publisher = events.Nop{}
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MarkPaid records a payment. The bill's prior status is not enforced; a
// non-standard transition such as CANCELLED to PAID is logged and applied.
func (s *Service) MarkPaid(ctx context.Context, billNumber, receiptNumber string) (*models.Bill, error) {
	current, err := s.bills.GetByBillNumber(ctx, billNumber)
	if err != nil {
		return nil, err
	}
	s.checkTransition(current, models.BillStatusPaid)

	paidAt := s.now()
	paid, err := s.bills.MarkPaid(ctx, billNumber, receiptNumber, paidAt)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bill paid", "bill_number", billNumber, "receipt_number", receiptNumber, "amount", paid.Amount)
	s.publish(ctx, events.NewBillEvent(events.BillPaid, paid, paidAt))
	return paid, nil
}

// Update applies a generic patch. Status changes are checked against the
// standard flow for logging only.
func (s *Service) Update(ctx context.Context, id string, patch *models.BillPatch) (*models.Bill, error) {
	if patch.Status != nil {
		current, err := s.bills.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.checkTransition(current, *patch.Status)
	}
	return s.bills.Update(ctx, id, patch)
}

// Sweep marks every pending bill due before today as overdue and returns
// how many bills changed.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	today := Today(s.now(), s.loc)
	numbers, err := s.bills.SweepOverdue(ctx, today)
	if err != nil {
		return 0, err
	}

	for _, n := range numbers {
		b, err := s.bills.GetByBillNumber(ctx, n)
		if err != nil {
			s.logger.Warn("overdue bill not reloaded", "bill_number", n, "error", err)
			continue
		}
		s.publish(ctx, events.NewBillEvent(events.BillOverdue, b, s.now()))
	}

	s.logger.Info("overdue sweep complete", "today", today.Format("2006-01-02"), "updated", len(numbers))
	return len(numbers), nil
}

func (s *Service) checkTransition(b *models.Bill, to models.BillStatus) {
	if !IsStandard(b.Status, to) {
		s.logger.Warn("non-standard bill status transition",
			"bill_number", b.BillNumber, "from", b.Status, "to", to)
	}
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Error("failed to publish event", "type", e.Type, "bill_number", e.BillNumber, "error", err)
	}
}

// Today returns the calendar date of t in loc, as midnight UTC. Bill dates
// are calendar dates stored at midnight UTC, so comparisons stay date-only.
func Today(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
