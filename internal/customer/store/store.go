package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectCustomerColumns = `
	id, reference_id, name, phone, email, address, gstin, created_at, updated_at
`

func scanCustomer(s database.Scanner) (*customer.Customer, error) {
	var c customer.Customer

	if err := s.Scan(
		&c.ID, &c.ReferenceID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.GSTIN,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (reference_id, name, phone, email, address, gstin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ReferenceID, c.Name, c.Phone, c.Email, c.Address, c.GSTIN,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if database.IsUniqueViolation(err, "customers_reference_id_key") {
		return &apperr.DuplicateReferenceError{Entity: "customer", Reference: c.ReferenceID}
	}

	if err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("customer", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return c, nil
}

func (s *Store) GetCustomerByReference(ctx context.Context, ref string) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE reference_id = $1`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("customer", ref)
	}

	if err != nil {
		return nil, fmt.Errorf("getting customer by reference: %w", err)
	}

	return c, nil
}

func (s *Store) ListCustomers(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR reference_id ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	query += " ORDER BY seq ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
		argIdx++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)

		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var out []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}

	return out, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, address = $4, gstin = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Phone, c.Email, c.Address, c.GSTIN, c.ID,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("customer", c.ID.String())
	}

	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	return nil
}
