package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satheeshds/aguapago/models"
)

// memoryDB holds all state for the in-memory backend.
type memoryDB struct {
	mu sync.RWMutex

	customers map[string]*models.Customer // by clientId
	bills     map[string]*models.Bill     // by id
	billIDs   map[string]string           // billNumber -> id
	// seq orders records created within the same clock tick.
	seq   map[string]int
	next  int
	clock func() time.Time
}

// NewMemory creates an empty in-memory Store. clock stamps createdAt and
// updatedAt; nil means time.Now.
func NewMemory(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	db := &memoryDB{
		customers: make(map[string]*models.Customer),
		bills:     make(map[string]*models.Bill),
		billIDs:   make(map[string]string),
		seq:       make(map[string]int),
		clock:     clock,
	}
	return &Store{
		Customers: &memCustomers{db: db},
		Bills:     &memBills{db: db},
	}
}

func (db *memoryDB) stamp(id string) {
	db.next++
	db.seq[id] = db.next
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCustomer(c *models.Customer) *models.Customer {
	cp := *c
	return &cp
}

// billView copies a stored bill and attaches the customer snapshot.
// Callers must hold db.mu.
func (db *memoryDB) billView(b *models.Bill) models.Bill {
	cp := *b
	if c, ok := db.customers[b.ClientID]; ok {
		cp.Customer = cloneCustomer(c)
	}
	return cp
}

type memCustomers struct {
	db *memoryDB
}

func (r *memCustomers) GetByClientID(_ context.Context, clientID string) (*models.Customer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.customers[clientID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneCustomer(c), nil
}

func (r *memCustomers) GetByID(_ context.Context, id string) (*models.Customer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, c := range r.db.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memCustomers) Exists(_ context.Context, clientID string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	_, ok := r.db.customers[clientID]
	return ok, nil
}

func (r *memCustomers) Create(_ context.Context, in *models.CustomerInput) (*models.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.customers[in.ClientID]; ok {
		return nil, ErrDuplicateKey
	}
	now := r.db.clock()
	c := &models.Customer{
		ID:        uuid.NewString(),
		ClientID:  in.ClientID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     copyPtr(in.Phone),
		Email:     copyPtr(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.db.customers[c.ClientID] = c
	r.db.stamp(c.ID)
	return cloneCustomer(c), nil
}

func (r *memCustomers) Update(_ context.Context, clientID string, patch *models.CustomerPatch) (*models.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.customers[clientID]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Phone != nil {
		c.Phone = copyPtr(patch.Phone)
	}
	if patch.Email != nil {
		c.Email = copyPtr(patch.Email)
	}
	c.UpdatedAt = r.db.clock()
	return cloneCustomer(c), nil
}

func (r *memCustomers) List(_ context.Context, page, limit int) (*models.Page[models.Customer], error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	all := make([]models.Customer, 0, len(r.db.customers))
	for _, c := range r.db.customers {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return r.db.seq[all[i].ID] > r.db.seq[all[j].ID]
	})

	return &models.Page[models.Customer]{
		Items:      paginate(all, page, limit),
		Pagination: models.NewPagination(page, limit, len(all)),
	}, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}
	pages := len(items) / limit
	if len(items)%limit != 0 {
		pages++
	}
	if page > pages {
		return []T{}
	}
	start := (page - 1) * limit
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type memBills struct {
	db *memoryDB
}

// sortedBills returns bill views matching keep, latest issue date first.
// Callers must hold db.mu.
func (r *memBills) sortedBills(keep func(*models.Bill) bool) []models.Bill {
	out := []models.Bill{}
	for _, b := range r.db.bills {
		if keep(b) {
			out = append(out, r.db.billView(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssueDate.Equal(out[j].IssueDate) {
			return out[i].IssueDate.After(out[j].IssueDate)
		}
		return out[i].BillNumber < out[j].BillNumber
	})
	return out
}

func (r *memBills) GetByBillNumber(_ context.Context, billNumber string) (*models.Bill, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	id, ok := r.db.billIDs[billNumber]
	if !ok {
		return nil, ErrNotFound
	}
	b := r.db.billView(r.db.bills[id])
	return &b, nil
}

func (r *memBills) GetByID(_ context.Context, id string) (*models.Bill, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	stored, ok := r.db.bills[id]
	if !ok {
		return nil, ErrNotFound
	}
	b := r.db.billView(stored)
	return &b, nil
}

func (r *memBills) ListByClientID(_ context.Context, clientID string) ([]models.Bill, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.sortedBills(func(b *models.Bill) bool { return b.ClientID == clientID }), nil
}

func (r *memBills) History(_ context.Context, f models.BillFilter) (*models.Page[models.Bill], error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	all := r.sortedBills(func(b *models.Bill) bool {
		switch {
		case f.ClientID != nil && b.ClientID != *f.ClientID:
			return false
		case f.Status != nil && b.Status != *f.Status:
			return false
		case f.StartDate != nil && b.IssueDate.Before(*f.StartDate):
			return false
		case f.EndDate != nil && b.IssueDate.After(*f.EndDate):
			return false
		}
		return true
	})
	return &models.Page[models.Bill]{
		Items:      paginate(all, f.Page, f.Limit),
		Pagination: models.NewPagination(f.Page, f.Limit, len(all)),
	}, nil
}

func (r *memBills) Create(_ context.Context, in *models.BillInput) (*models.Bill, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.customers[in.ClientID]; !ok {
		return nil, &CustomerNotFoundError{ClientID: in.ClientID}
	}
	if _, ok := r.db.billIDs[in.BillNumber]; ok {
		return nil, ErrDuplicateKey
	}

	status := in.Status
	if status == "" {
		status = models.BillStatusPending
	}
	now := r.db.clock()
	b := &models.Bill{
		ID:              uuid.NewString(),
		BillNumber:      in.BillNumber,
		ClientID:        in.ClientID,
		Period:          in.Period,
		Amount:          in.Amount,
		DueDate:         in.DueDate.Time,
		IssueDate:       in.IssueDate.Time,
		PaymentDate:     dateOrNil(in.PaymentDate),
		Status:          status,
		ReceiptNumber:   copyPtr(in.ReceiptNumber),
		Consumption:     copyPtr(in.Consumption),
		PreviousReading: copyPtr(in.PreviousReading),
		CurrentReading:  copyPtr(in.CurrentReading),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.db.bills[b.ID] = b
	r.db.billIDs[b.BillNumber] = b.ID
	r.db.stamp(b.ID)

	view := r.db.billView(b)
	return &view, nil
}

func (r *memBills) Update(_ context.Context, id string, patch *models.BillPatch) (*models.Bill, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.bills[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Period != nil {
		b.Period = *patch.Period
	}
	if patch.Amount != nil {
		b.Amount = *patch.Amount
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.DueDate != nil {
		b.DueDate = patch.DueDate.Time
	}
	if patch.IssueDate != nil {
		b.IssueDate = patch.IssueDate.Time
	}
	if patch.PaymentDate != nil {
		b.PaymentDate = dateOrNil(patch.PaymentDate)
	}
	if patch.ReceiptNumber != nil {
		b.ReceiptNumber = copyPtr(patch.ReceiptNumber)
	}
	if patch.Consumption != nil {
		b.Consumption = copyPtr(patch.Consumption)
	}
	if patch.PreviousReading != nil {
		b.PreviousReading = copyPtr(patch.PreviousReading)
	}
	if patch.CurrentReading != nil {
		b.CurrentReading = copyPtr(patch.CurrentReading)
	}
	b.UpdatedAt = r.db.clock()

	view := r.db.billView(b)
	return &view, nil
}

func (r *memBills) MarkPaid(_ context.Context, billNumber, receiptNumber string, paidAt time.Time) (*models.Bill, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	id, ok := r.db.billIDs[billNumber]
	if !ok {
		return nil, ErrNotFound
	}
	b := r.db.bills[id]
	b.Status = models.BillStatusPaid
	b.PaymentDate = &paidAt
	b.ReceiptNumber = &receiptNumber
	b.UpdatedAt = r.db.clock()

	view := r.db.billView(b)
	return &view, nil
}

func (r *memBills) Stats(_ context.Context, clientID string) (*models.BillStats, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var s models.BillStats
	for _, b := range r.db.bills {
		if clientID != "" && b.ClientID != clientID {
			continue
		}
		s.TotalBills++
		s.TotalAmount += b.Amount
		switch b.Status {
		case models.BillStatusPaid:
			s.PaidBills++
			s.PaidAmount += b.Amount
		case models.BillStatusPending:
			s.PendingBills++
		case models.BillStatusOverdue:
			s.OverdueBills++
		}
	}
	s.PendingAmount = s.TotalAmount - s.PaidAmount
	return &s, nil
}

func (r *memBills) SweepOverdue(_ context.Context, today time.Time) ([]string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	numbers := []string{}
	now := r.db.clock()
	for _, b := range r.db.bills {
		if b.Status == models.BillStatusPending && b.DueDate.Before(today) {
			b.Status = models.BillStatusOverdue
			b.UpdatedAt = now
			numbers = append(numbers, b.BillNumber)
		}
	}
	sort.Strings(numbers)
	return numbers, nil
}
