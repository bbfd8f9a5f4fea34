package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/satheeshds/aguapago/models"
)

const billSelectQuery = `SELECT b.id::text, b.bill_number, b.client_id, b.period, b.amount, b.due_date, b.issue_date,
		b.payment_date, b.status, b.receipt_number, b.consumption, b.previous_reading, b.current_reading,
		b.created_at, b.updated_at,
		c.id::text, c.client_id, c.name, c.address, c.phone, c.email, c.created_at, c.updated_at
		FROM bills b
		JOIN customers c ON c.client_id = b.client_id`

func scanBill(scanner interface{ Scan(...any) error }) (*models.Bill, error) {
	var b models.Bill
	var c models.Customer
	err := scanner.Scan(&b.ID, &b.BillNumber, &b.ClientID, &b.Period, &b.Amount, &b.DueDate, &b.IssueDate,
		&b.PaymentDate, &b.Status, &b.ReceiptNumber, &b.Consumption, &b.PreviousReading, &b.CurrentReading,
		&b.CreatedAt, &b.UpdatedAt,
		&c.ID, &c.ClientID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.Customer = &c
	return &b, nil
}

func collectBills(rows pgx.Rows) ([]models.Bill, error) {
	defer rows.Close()
	bills := []models.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, *b)
	}
	return bills, rows.Err()
}

// billConditions renders the WHERE clause for a history filter. Placeholders
// are numbered from $1 in the order of the returned args.
func billConditions(f models.BillFilter) (string, []any) {
	var conditions []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if f.ClientID != nil {
		add("b.client_id = $%d", *f.ClientID)
	}
	if f.Status != nil {
		add("b.status = $%d", string(*f.Status))
	}
	if f.StartDate != nil {
		add("b.issue_date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("b.issue_date <= $%d", *f.EndDate)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

type pgBills struct {
	db        dbtx
	customers CustomerStore
}

func (r *pgBills) GetByBillNumber(ctx context.Context, billNumber string) (*models.Bill, error) {
	return scanBill(r.db.QueryRow(ctx, billSelectQuery+" WHERE b.bill_number = $1", billNumber))
}

func (r *pgBills) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return scanBill(r.db.QueryRow(ctx, billSelectQuery+" WHERE b.id = $1", uid))
}

func (r *pgBills) ListByClientID(ctx context.Context, clientID string) ([]models.Bill, error) {
	rows, err := r.db.Query(ctx, billSelectQuery+" WHERE b.client_id = $1 ORDER BY b.issue_date DESC", clientID)
	if err != nil {
		return nil, fmt.Errorf("listing bills for %s: %w", clientID, err)
	}
	return collectBills(rows)
}

func (r *pgBills) History(ctx context.Context, f models.BillFilter) (*models.Page[models.Bill], error) {
	where, args := billConditions(f)

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM bills b"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting bills: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY b.issue_date DESC, b.bill_number LIMIT $%d OFFSET $%d",
		billSelectQuery, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("querying bill history: %w", err)
	}
	bills, err := collectBills(rows)
	if err != nil {
		return nil, err
	}

	return &models.Page[models.Bill]{
		Items:      bills,
		Pagination: models.NewPagination(f.Page, f.Limit, total),
	}, nil
}

// Create checks the customer first, as the portal always has; the foreign
// key catches a customer removed in between.
func (r *pgBills) Create(ctx context.Context, in *models.BillInput) (*models.Bill, error) {
	exists, err := r.customers.Exists(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &CustomerNotFoundError{ClientID: in.ClientID}
	}

	status := in.Status
	if status == "" {
		status = models.BillStatusPending
	}
	_, err = r.db.Exec(ctx, `INSERT INTO bills (id, bill_number, client_id, period, amount, due_date, issue_date,
		payment_date, status, receipt_number, consumption, previous_reading, current_reading)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		uuid.New(), in.BillNumber, in.ClientID, in.Period, int64(in.Amount), in.DueDate.Time, in.IssueDate.Time,
		dateOrNil(in.PaymentDate), string(status), in.ReceiptNumber, in.Consumption, in.PreviousReading, in.CurrentReading)
	if err != nil {
		err = classify(err)
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, &CustomerNotFoundError{ClientID: in.ClientID}
		}
		return nil, err
	}
	return r.GetByBillNumber(ctx, in.BillNumber)
}

func (r *pgBills) Update(ctx context.Context, id string, patch *models.BillPatch) (*models.Bill, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var set setClause
	if patch.Period != nil {
		set.add("period", *patch.Period)
	}
	if patch.Amount != nil {
		set.add("amount", int64(*patch.Amount))
	}
	if patch.Status != nil {
		set.add("status", string(*patch.Status))
	}
	if patch.DueDate != nil {
		set.add("due_date", patch.DueDate.Time)
	}
	if patch.IssueDate != nil {
		set.add("issue_date", patch.IssueDate.Time)
	}
	if patch.PaymentDate != nil {
		set.add("payment_date", patch.PaymentDate.Time)
	}
	if patch.ReceiptNumber != nil {
		set.add("receipt_number", *patch.ReceiptNumber)
	}
	if patch.Consumption != nil {
		set.add("consumption", *patch.Consumption)
	}
	if patch.PreviousReading != nil {
		set.add("previous_reading", *patch.PreviousReading)
	}
	if patch.CurrentReading != nil {
		set.add("current_reading", *patch.CurrentReading)
	}

	query, args := set.sql("bills", "id", uid)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *pgBills) MarkPaid(ctx context.Context, billNumber, receiptNumber string, paidAt time.Time) (*models.Bill, error) {
	tag, err := r.db.Exec(ctx, `UPDATE bills SET status = $1, payment_date = $2, receipt_number = $3, updated_at = now()
		WHERE bill_number = $4`,
		string(models.BillStatusPaid), paidAt, receiptNumber, billNumber)
	if err != nil {
		return nil, fmt.Errorf("marking bill %s paid: %w", billNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByBillNumber(ctx, billNumber)
}

func (r *pgBills) Stats(ctx context.Context, clientID string) (*models.BillStats, error) {
	query := `SELECT COUNT(*),
		COUNT(*) FILTER (WHERE status = 'PAID'),
		COUNT(*) FILTER (WHERE status = 'PENDING'),
		COUNT(*) FILTER (WHERE status = 'OVERDUE'),
		COALESCE(SUM(amount), 0)::bigint,
		COALESCE(SUM(amount) FILTER (WHERE status = 'PAID'), 0)::bigint
		FROM bills`
	var args []any
	if clientID != "" {
		query += " WHERE client_id = $1"
		args = append(args, clientID)
	}

	var s models.BillStats
	var total, paid int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&s.TotalBills, &s.PaidBills, &s.PendingBills, &s.OverdueBills, &total, &paid)
	if err != nil {
		return nil, fmt.Errorf("computing bill stats: %w", err)
	}
	s.TotalAmount = models.Money(total)
	s.PaidAmount = models.Money(paid)
	s.PendingAmount = s.TotalAmount - s.PaidAmount
	return &s, nil
}

func (r *pgBills) SweepOverdue(ctx context.Context, today time.Time) ([]string, error) {
	rows, err := r.db.Query(ctx, `UPDATE bills SET status = $1, updated_at = now()
		WHERE status = $2 AND due_date < $3
		RETURNING bill_number`,
		string(models.BillStatusOverdue), string(models.BillStatusPending), today)
	if err != nil {
		return nil, fmt.Errorf("sweeping overdue bills: %w", err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("sweeping overdue bills: %w", err)
	}
	return numbers, nil
}
