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
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectPaymentColumns = `
	id, reference_id, customer_id, target_kind, target_id, amount, received_on, mode, note, created_at
`

func scanPayment(s database.Scanner) (*payment.Payment, error) {
	var (
		p          payment.Payment
		kind, mode string
		receivedOn sql.NullTime
	)

	if err := s.Scan(
		&p.ID, &p.ReferenceID, &p.CustomerID, &kind, &p.TargetID, &p.Amount, &receivedOn, &mode, &p.Note, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.TargetKind = payment.TargetKind(kind)
	p.Mode = payment.Mode(mode)
	p.ReceivedOn = database.Date(receivedOn)

	return &p, nil
}

func (s *Store) CreatePayment(ctx context.Context, q database.Querier, p *payment.Payment) error {
	query := `
		INSERT INTO payments (reference_id, customer_id, target_kind, target_id, amount, received_on, mode, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRowContext(ctx, query,
		p.ReferenceID, p.CustomerID, string(p.TargetKind), p.TargetID, p.Amount, p.ReceivedOn, string(p.Mode), p.Note,
	).Scan(&p.ID, &p.CreatedAt)

	switch {
	case database.IsUniqueViolation(err, "payments_reference_id_key"):
		return &apperr.DuplicateReferenceError{Entity: "payment", Reference: p.ReferenceID}
	case database.IsForeignKeyViolation(err, "payments_customer_id_fkey"):
		return apperr.NotFound("customer", p.CustomerID.String())
	case err != nil:
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("payment", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) GetPaymentByReference(ctx context.Context, ref string) (*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE reference_id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("payment", ref)
	}

	if err != nil {
		return nil, fmt.Errorf("getting payment by reference: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.TargetKind != nil {
		query += fmt.Sprintf(" AND target_kind = $%d", argIdx)

		args = append(args, string(*filter.TargetKind))
		argIdx++
	}

	if filter.TargetID != nil {
		query += fmt.Sprintf(" AND target_id = $%d", argIdx)

		args = append(args, *filter.TargetID)
	}

	query += " ORDER BY received_on ASC, seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var out []*payment.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}

	return out, nil
}

func (s *Store) TotalFor(ctx context.Context, q database.Querier, kind payment.TargetKind, id uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE target_kind = $1 AND target_id = $2`

	var total decimal.Decimal
	if err := q.QueryRowContext(ctx, query, string(kind), id).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("summing payments: %w", err)
	}

	return total, nil
}
