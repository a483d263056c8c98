package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectRequisitionColumns = `id, reference_id, customer_id, amc_id, requested_on, note, created_at`

func scanRequisition(s database.Scanner) (*requisition.Requisition, error) {
	var (
		r           requisition.Requisition
		amcID       uuid.NullUUID
		requestedOn sql.NullTime
	)

	if err := s.Scan(&r.ID, &r.ReferenceID, &r.CustomerID, &amcID, &requestedOn, &r.Note, &r.CreatedAt); err != nil {
		return nil, err
	}

	r.AMCID = database.UUIDPtr(amcID)
	r.RequestedOn = database.Date(requestedOn)

	return &r, nil
}

func (s *Store) CreateRequisition(ctx context.Context, r *requisition.Requisition) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO requisitions (reference_id, customer_id, amc_id, requested_on, note, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		r.ReferenceID, r.CustomerID, database.NullUUID(r.AMCID), r.RequestedOn, r.Note,
	).Scan(&r.ID, &r.CreatedAt)

	switch {
	case database.IsUniqueViolation(err, "requisitions_reference_id_key"):
		return &apperr.DuplicateReferenceError{Entity: "requisition", Reference: r.ReferenceID}
	case database.IsForeignKeyViolation(err, "requisitions_customer_id_fkey"):
		return apperr.NotFound("customer", r.CustomerID.String())
	case database.IsForeignKeyViolation(err, "requisitions_amc_id_fkey"):
		return apperr.NotFound("amc", r.AMCID.String())
	case err != nil:
		return fmt.Errorf("creating requisition: %w", err)
	}

	lineQuery := `
		INSERT INTO requisition_lines (requisition_id, position, item_id, quantity)
		VALUES ($1, $2, $3, $4)
	`

	for i, l := range r.Lines {
		_, err := dbTx.ExecContext(ctx, lineQuery, r.ID, i+1, l.ItemID, l.Quantity)
		if database.IsForeignKeyViolation(err, "requisition_lines_item_id_fkey") {
			return apperr.NotFound("item", l.ItemID.String())
		}

		if err != nil {
			return fmt.Errorf("inserting requisition line: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) loadLines(ctx context.Context, r *requisition.Requisition) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, quantity FROM requisition_lines WHERE requisition_id = $1 ORDER BY position ASC`, r.ID)
	if err != nil {
		return fmt.Errorf("listing requisition lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l requisition.Line
		if err := rows.Scan(&l.ItemID, &l.Quantity); err != nil {
			return fmt.Errorf("scanning requisition line: %w", err)
		}

		r.Lines = append(r.Lines, l)
	}

	return rows.Err()
}

func (s *Store) get(ctx context.Context, where string, key any, notFound string) (*requisition.Requisition, error) {
	query := `SELECT ` + selectRequisitionColumns + ` FROM requisitions WHERE ` + where

	r, err := scanRequisition(s.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("requisition", notFound)
	}

	if err != nil {
		return nil, fmt.Errorf("getting requisition: %w", err)
	}

	if err := s.loadLines(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Store) GetRequisition(ctx context.Context, id uuid.UUID) (*requisition.Requisition, error) {
	return s.get(ctx, "id = $1", id, id.String())
}

func (s *Store) GetRequisitionByReference(ctx context.Context, ref string) (*requisition.Requisition, error) {
	return s.get(ctx, "reference_id = $1", ref, ref)
}

func (s *Store) ListRequisitions(ctx context.Context, filter requisition.ListFilter) ([]*requisition.Requisition, error) {
	query := `SELECT ` + selectRequisitionColumns + ` FROM requisitions WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.AMCID != nil {
		query += fmt.Sprintf(" AND amc_id = $%d", argIdx)

		args = append(args, *filter.AMCID)
	}

	query += " ORDER BY requested_on ASC, seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing requisitions: %w", err)
	}
	defer rows.Close()

	var out []*requisition.Requisition

	for rows.Next() {
		r, err := scanRequisition(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning requisition: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requisitions: %w", err)
	}

	return out, nil
}
