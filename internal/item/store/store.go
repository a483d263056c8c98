package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectItemColumns = `
	id, reference_id, code, name, unit, rate, tax_percent, created_at, updated_at
`

func scanItem(s database.Scanner) (*item.Item, error) {
	var (
		it           item.Item
		rate, taxPct decimal.NullDecimal
	)

	if err := s.Scan(
		&it.ID, &it.ReferenceID, &it.Code, &it.Name, &it.Unit, &rate, &taxPct,
		&it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	it.Rate = database.DecimalPtr(rate)
	it.TaxPercent = database.DecimalPtr(taxPct)

	return &it, nil
}

// constraintError translates unique violations; it returns nil for anything else.
func constraintError(err error, it *item.Item) error {
	switch {
	case database.IsUniqueViolation(err, "items_reference_id_key"):
		return &apperr.DuplicateReferenceError{Entity: "item", Reference: it.ReferenceID}
	case database.IsUniqueViolation(err, "items_code_key"):
		return apperr.Invalid("code", fmt.Sprintf("%s is already used by another item", it.Code))
	}

	return nil
}

func (s *Store) CreateItem(ctx context.Context, it *item.Item) error {
	query := `
		INSERT INTO items (reference_id, code, name, unit, rate, tax_percent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		it.ReferenceID, it.Code, it.Name, it.Unit,
		database.NullDecimal(it.Rate), database.NullDecimal(it.TaxPercent),
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if cerr := constraintError(err, it); cerr != nil {
			return cerr
		}

		return fmt.Errorf("creating item: %w", err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE id = $1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("item", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	return it, nil
}

func (s *Store) GetItemByCode(ctx context.Context, code string) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE code = $1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("item", code)
	}

	if err != nil {
		return nil, fmt.Errorf("getting item by code: %w", err)
	}

	return it, nil
}

func (s *Store) ListItems(ctx context.Context, filter item.ListFilter) ([]*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items`

	var args []any

	if filter.Search != "" {
		query += ` WHERE code ILIKE $1 OR name ILIKE $1`

		args = append(args, "%"+filter.Search+"%")
	}

	query += ` ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var out []*item.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		out = append(out, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return out, nil
}

func (s *Store) UpdateItem(ctx context.Context, it *item.Item) error {
	query := `
		UPDATE items
		SET code = $1, name = $2, unit = $3, rate = $4, tax_percent = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		it.Code, it.Name, it.Unit,
		database.NullDecimal(it.Rate), database.NullDecimal(it.TaxPercent), it.ID,
	).Scan(&it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("item", it.ID.String())
	}

	if err != nil {
		if cerr := constraintError(err, it); cerr != nil {
			return cerr
		}

		return fmt.Errorf("updating item: %w", err)
	}

	return nil
}
