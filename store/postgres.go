package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dbtx is the subset of pgxpool.Pool and pgx.Tx the repositories use.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPostgres creates a Store backed by a pgx connection pool.
func NewPostgres(pool *pgxpool.Pool) *Store {
	customers := &pgCustomers{db: pool}
	return &Store{
		Customers: customers,
		Bills:     &pgBills{db: pool, customers: customers},
		ping:      pool.Ping,
	}
}

// classify maps driver errors onto the store's sentinel errors.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return ErrCustomerNotFound
		}
	}
	return err
}

// setClause accumulates "column = $n" assignments for partial updates.
type setClause struct {
	sets []string
	args []any
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.sets = append(s.sets, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// sql renders the UPDATE statement, always touching updated_at. The key
// value is bound as the last placeholder.
func (s *setClause) sql(table, keyColumn string, key any) (string, []any) {
	sets := append(s.sets, "updated_at = now()")
	args := append(s.args, key)
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(sets, ", "), keyColumn, len(args)), args
}
