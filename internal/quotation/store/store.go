package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	linestore "github.com/MrJamesThe3rd/liftdesk/internal/lineitem/store"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectQuotationColumns = `
	id, reference_id, customer_id, quote_date, valid_until,
	subtotal, tax_total, total, accepted_at, status,
	created_at, updated_at
`

func scanQuotation(s database.Scanner) (*quotation.Quotation, error) {
	var (
		q                     quotation.Quotation
		quoteDate, validUntil sql.NullTime
		accepted              sql.NullTime
		status                string
	)

	if err := s.Scan(
		&q.ID, &q.ReferenceID, &q.CustomerID, &quoteDate, &validUntil,
		&q.Subtotal, &q.TaxTotal, &q.Total, &accepted, &status,
		&q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}

	q.QuoteDate = database.Date(quoteDate)
	q.ValidUntil = database.Date(validUntil)
	q.Status = derive.QuoteStatus(status)

	if accepted.Valid {
		q.AcceptedAt = &accepted.Time
	}

	return &q, nil
}

func acceptedAt(q *quotation.Quotation) sql.NullTime {
	if q.AcceptedAt == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *q.AcceptedAt, Valid: true}
}

func writeError(err error, q *quotation.Quotation, op string) error {
	switch {
	case database.IsUniqueViolation(err, "quotations_reference_id_key"):
		return &apperr.DuplicateReferenceError{Entity: "quotation", Reference: q.ReferenceID}
	case database.IsForeignKeyViolation(err, "quotations_customer_id_fkey"):
		return apperr.NotFound("customer", q.CustomerID.String())
	}

	return fmt.Errorf("%s quotation: %w", op, err)
}

func (s *Store) CreateQuotation(ctx context.Context, q *quotation.Quotation) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO quotations (
			reference_id, customer_id, quote_date, valid_until,
			subtotal, tax_total, total, accepted_at, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		q.ReferenceID, q.CustomerID, q.QuoteDate, database.NullDate(q.ValidUntil),
		q.Subtotal, q.TaxTotal, q.Total, acceptedAt(q), string(q.Status),
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return writeError(err, q, "creating")
	}

	if err := linestore.Replace(ctx, dbTx, linestore.QuotationLines, q.ID, q.Lines); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) get(ctx context.Context, where string, key any, notFound string) (*quotation.Quotation, error) {
	query := `SELECT ` + selectQuotationColumns + ` FROM quotations WHERE ` + where

	q, err := scanQuotation(s.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("quotation", notFound)
	}

	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	if q.Lines, err = linestore.Load(ctx, s.db, linestore.QuotationLines, q.ID); err != nil {
		return nil, err
	}

	return q, nil
}

func (s *Store) GetQuotation(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	return s.get(ctx, "id = $1", id, id.String())
}

func (s *Store) GetQuotationByReference(ctx context.Context, ref string) (*quotation.Quotation, error) {
	return s.get(ctx, "reference_id = $1", ref, ref)
}

func (s *Store) ListQuotations(ctx context.Context, filter quotation.ListFilter) ([]*quotation.Quotation, error) {
	query := `SELECT ` + selectQuotationColumns + ` FROM quotations WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, string(*filter.Status))
	}

	query += " ORDER BY quote_date ASC, seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}
	defer rows.Close()

	var out []*quotation.Quotation

	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quotation: %w", err)
		}

		out = append(out, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotations: %w", err)
	}

	return out, nil
}

func (s *Store) MutateQuotation(ctx context.Context, id uuid.UUID, fn func(q *quotation.Quotation) error) (*quotation.Quotation, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `SELECT ` + selectQuotationColumns + ` FROM quotations WHERE id = $1 FOR UPDATE`

	q, err := scanQuotation(dbTx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("quotation", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("locking quotation: %w", err)
	}

	if q.Lines, err = linestore.Load(ctx, dbTx, linestore.QuotationLines, q.ID); err != nil {
		return nil, err
	}

	if err := fn(q); err != nil {
		return nil, err
	}

	update := `
		UPDATE quotations
		SET customer_id = $1, quote_date = $2, valid_until = $3,
			subtotal = $4, tax_total = $5, total = $6, accepted_at = $7, status = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err = dbTx.QueryRowContext(ctx, update,
		q.CustomerID, q.QuoteDate, database.NullDate(q.ValidUntil),
		q.Subtotal, q.TaxTotal, q.Total, acceptedAt(q), string(q.Status), q.ID,
	).Scan(&q.UpdatedAt)
	if err != nil {
		return nil, writeError(err, q, "updating")
	}

	if err := linestore.Replace(ctx, dbTx, linestore.QuotationLines, q.ID, q.Lines); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return q, nil
}

func (s *Store) ListStatusInputs(ctx context.Context) ([]quotation.StatusInput, error) {
	query := `SELECT id, valid_until, accepted_at IS NOT NULL, status FROM quotations ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing quotation status inputs: %w", err)
	}
	defer rows.Close()

	var out []quotation.StatusInput

	for rows.Next() {
		var (
			in         quotation.StatusInput
			validUntil sql.NullTime
			status     string
		)

		if err := rows.Scan(&in.ID, &validUntil, &in.Accepted, &status); err != nil {
			return nil, fmt.Errorf("scanning quotation status input: %w", err)
		}

		in.ValidUntil = database.Date(validUntil)
		in.Status = derive.QuoteStatus(status)
		out = append(out, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotation status inputs: %w", err)
	}

	return out, nil
}

func (s *Store) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to derive.QuoteStatus) (bool, error) {
	query := `
		UPDATE quotations
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, string(to), id, string(from))
	if err != nil {
		return false, fmt.Errorf("updating quotation status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return n == 1, nil
}
