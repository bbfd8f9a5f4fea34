package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/satheeshds/aguapago/models"
)

const customerSelectQuery = `SELECT id::text, client_id, name, address, phone, email, created_at, updated_at
	FROM customers`

func scanCustomer(scanner interface{ Scan(...any) error }) (*models.Customer, error) {
	var c models.Customer
	err := scanner.Scan(&c.ID, &c.ClientID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

type pgCustomers struct {
	db dbtx
}

func (r *pgCustomers) GetByClientID(ctx context.Context, clientID string) (*models.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx, customerSelectQuery+" WHERE client_id = $1", clientID))
}

func (r *pgCustomers) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return scanCustomer(r.db.QueryRow(ctx, customerSelectQuery+" WHERE id = $1", uid))
}

func (r *pgCustomers) Exists(ctx context.Context, clientID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM customers WHERE client_id = $1)", clientID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking customer %s: %w", clientID, err)
	}
	return exists, nil
}

func (r *pgCustomers) Create(ctx context.Context, in *models.CustomerInput) (*models.Customer, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO customers (id, client_id, name, address, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), in.ClientID, in.Name, in.Address, in.Phone, in.Email)
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByClientID(ctx, in.ClientID)
}

func (r *pgCustomers) Update(ctx context.Context, clientID string, patch *models.CustomerPatch) (*models.Customer, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Address != nil {
		set.add("address", *patch.Address)
	}
	if patch.Phone != nil {
		set.add("phone", *patch.Phone)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}

	query, args := set.sql("customers", "client_id", clientID)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByClientID(ctx, clientID)
}

func (r *pgCustomers) List(ctx context.Context, page, limit int) (*models.Page[models.Customer], error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&total); err != nil {
		return nil, fmt.Errorf("counting customers: %w", err)
	}

	rows, err := r.db.Query(ctx, customerSelectQuery+" ORDER BY created_at DESC, id LIMIT $1 OFFSET $2",
		limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.Page[models.Customer]{
		Items:      customers,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}
