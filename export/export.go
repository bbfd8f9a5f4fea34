// Package export writes the bill ledger to Parquet or CSV through an
// in-process DuckDB database.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/satheeshds/aguapago/models"
	"github.com/satheeshds/aguapago/store"
)

// Format is an output file format.
type Format string

const (
	FormatParquet Format = "parquet"
	FormatCSV     Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatParquet, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q: use parquet or csv", s)
}

const createLedger = `CREATE TABLE ledger (
	bill_number VARCHAR NOT NULL,
	client_id VARCHAR NOT NULL,
	customer_name VARCHAR,
	period VARCHAR NOT NULL,
	amount BIGINT NOT NULL,
	status VARCHAR NOT NULL,
	issue_date TIMESTAMP NOT NULL,
	due_date TIMESTAMP NOT NULL,
	payment_date TIMESTAMP,
	receipt_number VARCHAR,
	consumption DOUBLE,
	previous_reading DOUBLE,
	current_reading DOUBLE
)`

const insertLedger = `INSERT INTO ledger VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Exporter reads bills page by page from a BillStore.
type Exporter struct {
	bills    store.BillStore
	pageSize int
}

func NewExporter(bills store.BillStore, pageSize int) *Exporter {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Exporter{bills: bills, pageSize: pageSize}
}

// Export writes every bill matching f to path and returns the row count.
// f.Page and f.Limit are ignored.
func (e *Exporter) Export(ctx context.Context, f models.BillFilter, path string, format Format) (int, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return 0, fmt.Errorf("opening duckdb: %w", err)
	}
	defer db.Close()
	// One connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createLedger); err != nil {
		return 0, fmt.Errorf("creating ledger table: %w", err)
	}

	rows, err := e.load(ctx, db, f)
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, copyStatement(path, format)); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Info("ledger exported", "path", path, "format", format, "rows", rows)
	return rows, nil
}

func (e *Exporter) load(ctx context.Context, db *sql.DB, f models.BillFilter) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertLedger)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	f.Limit = e.pageSize
	for f.Page = 1; ; f.Page++ {
		page, err := e.bills.History(ctx, f)
		if err != nil {
			return 0, fmt.Errorf("reading bills page %d: %w", f.Page, err)
		}
		for _, b := range page.Items {
			if _, err := stmt.ExecContext(ctx, ledgerRow(b)...); err != nil {
				return 0, fmt.Errorf("inserting bill %s: %w", b.BillNumber, err)
			}
			count++
		}
		if f.Page >= page.Pagination.TotalPages {
			break
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

func ledgerRow(b models.Bill) []any {
	var customerName any
	if b.Customer != nil {
		customerName = b.Customer.Name
	}
	return []any{
		b.BillNumber,
		b.ClientID,
		customerName,
		b.Period,
		int64(b.Amount),
		string(b.Status),
		b.IssueDate.UTC(),
		b.DueDate.UTC(),
		nullTime(b.PaymentDate),
		nullable(b.ReceiptNumber),
		nullable(b.Consumption),
		nullable(b.PreviousReading),
		nullable(b.CurrentReading),
	}
}

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func copyStatement(path string, format Format) string {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	if format == FormatCSV {
		return fmt.Sprintf("COPY (SELECT * FROM ledger ORDER BY issue_date DESC, bill_number) TO %s (FORMAT CSV, HEADER)", quoted)
	}
	return fmt.Sprintf("COPY (SELECT * FROM ledger ORDER BY issue_date DESC, bill_number) TO %s (FORMAT PARQUET)", quoted)
}
