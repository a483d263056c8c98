package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectComplaintColumns = `
	id, reference_id, customer_id, amc_id, subject, description, status, reported_on, resolved_on,
	created_at, updated_at
`

func scanComplaint(s database.Scanner) (*complaint.Complaint, error) {
	var (
		c                      complaint.Complaint
		amcID                  uuid.NullUUID
		status                 string
		reportedOn, resolvedOn sql.NullTime
	)

	if err := s.Scan(
		&c.ID, &c.ReferenceID, &c.CustomerID, &amcID, &c.Subject, &c.Description, &status, &reportedOn, &resolvedOn,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.AMCID = database.UUIDPtr(amcID)
	c.Status = complaint.Status(status)
	c.ReportedOn = database.Date(reportedOn)
	c.ResolvedOn = database.Date(resolvedOn)

	return &c, nil
}

func writeError(err error, c *complaint.Complaint, op string) error {
	switch {
	case database.IsUniqueViolation(err, "complaints_reference_id_key"):
		return &apperr.DuplicateReferenceError{Entity: "complaint", Reference: c.ReferenceID}
	case database.IsForeignKeyViolation(err, "complaints_customer_id_fkey"):
		return apperr.NotFound("customer", c.CustomerID.String())
	case database.IsForeignKeyViolation(err, "complaints_amc_id_fkey"):
		return apperr.NotFound("amc", c.AMCID.String())
	}

	return fmt.Errorf("%s complaint: %w", op, err)
}

func (s *Store) CreateComplaint(ctx context.Context, c *complaint.Complaint) error {
	query := `
		INSERT INTO complaints (
			reference_id, customer_id, amc_id, subject, description, status, reported_on, resolved_on,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ReferenceID, c.CustomerID, database.NullUUID(c.AMCID), c.Subject, c.Description, string(c.Status),
		c.ReportedOn, database.NullDate(c.ResolvedOn),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return writeError(err, c, "creating")
	}

	return nil
}

func (s *Store) GetComplaint(ctx context.Context, id uuid.UUID) (*complaint.Complaint, error) {
	query := `SELECT ` + selectComplaintColumns + ` FROM complaints WHERE id = $1`

	c, err := scanComplaint(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("complaint", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("getting complaint: %w", err)
	}

	return c, nil
}

func (s *Store) GetComplaintByReference(ctx context.Context, ref string) (*complaint.Complaint, error) {
	query := `SELECT ` + selectComplaintColumns + ` FROM complaints WHERE reference_id = $1`

	c, err := scanComplaint(s.db.QueryRowContext(ctx, query, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("complaint", ref)
	}

	if err != nil {
		return nil, fmt.Errorf("getting complaint by reference: %w", err)
	}

	return c, nil
}

func (s *Store) ListComplaints(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error) {
	query := `SELECT ` + selectComplaintColumns + ` FROM complaints WHERE TRUE`

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
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, string(*filter.Status))
	}

	query += " ORDER BY reported_on ASC, seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing complaints: %w", err)
	}
	defer rows.Close()

	var out []*complaint.Complaint

	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning complaint: %w", err)
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating complaints: %w", err)
	}

	return out, nil
}

func (s *Store) MutateComplaint(ctx context.Context, id uuid.UUID, fn func(c *complaint.Complaint) error) (*complaint.Complaint, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `SELECT ` + selectComplaintColumns + ` FROM complaints WHERE id = $1 FOR UPDATE`

	c, err := scanComplaint(dbTx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("complaint", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("locking complaint: %w", err)
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	update := `
		UPDATE complaints
		SET amc_id = $1, subject = $2, description = $3, status = $4, resolved_on = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err = dbTx.QueryRowContext(ctx, update,
		database.NullUUID(c.AMCID), c.Subject, c.Description, string(c.Status), database.NullDate(c.ResolvedOn), c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		return nil, writeError(err, c, "updating")
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return c, nil
}
