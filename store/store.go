// Package store persists customers and bills. Two backends satisfy the same
// contract: PostgreSQL through pgx, and an in-memory map used for demos and tests.
package store

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/satheeshds/aguapago/models"
)

var (
	// ErrNotFound is returned when the requested customer or bill does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when a business key (clientId, billNumber) is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCustomerNotFound is returned when a bill references a clientId with no customer.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerNotFoundError reports the clientId a bill referenced. It matches
// ErrCustomerNotFound under errors.Is.
type CustomerNotFoundError struct {
	ClientID string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("Customer with clientId %s not found", e.ClientID)
}

func (e *CustomerNotFoundError) Is(target error) bool {
	return target == ErrCustomerNotFound
}

// CustomerStore persists customers keyed by clientId.
type CustomerStore interface {
	GetByClientID(ctx context.Context, clientID string) (*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Exists(ctx context.Context, clientID string) (bool, error)
	Create(ctx context.Context, in *models.CustomerInput) (*models.Customer, error)
	Update(ctx context.Context, clientID string, patch *models.CustomerPatch) (*models.Customer, error)
	// List returns customers newest first.
	List(ctx context.Context, page, limit int) (*models.Page[models.Customer], error)
}

// BillStore persists bills keyed by id and by billNumber.
type BillStore interface {
	GetByBillNumber(ctx context.Context, billNumber string) (*models.Bill, error)
	GetByID(ctx context.Context, id string) (*models.Bill, error)
	// ListByClientID returns all bills of one client, latest issue date first.
	ListByClientID(ctx context.Context, clientID string) ([]models.Bill, error)
	History(ctx context.Context, f models.BillFilter) (*models.Page[models.Bill], error)
	Create(ctx context.Context, in *models.BillInput) (*models.Bill, error)
	Update(ctx context.Context, id string, patch *models.BillPatch) (*models.Bill, error)
	MarkPaid(ctx context.Context, billNumber, receiptNumber string, paidAt time.Time) (*models.Bill, error)
	Stats(ctx context.Context, clientID string) (*models.BillStats, error)
	// SweepOverdue moves every PENDING bill due before today to OVERDUE and
	// returns the bill numbers it changed.
	SweepOverdue(ctx context.Context, today time.Time) ([]string, error)
}

// Store bundles both repositories with a health check.
type Store struct {
	Customers CustomerStore
	Bills     BillStore

	ping func(ctx context.Context) error
}

// Ping reports whether the backing storage is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func dateOrNil(d *models.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
