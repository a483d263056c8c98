package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectAMCColumns = `
	id, reference_id, customer_id, lift_description, start_date, end_date,
	price, unit_count, gst_percent, generate_contract,
	total, total_paid, amount_due, credit, derived_status, status_override, override_reason,
	created_at, updated_at
`

// scanAMC reads a row in selectAMCColumns order.
func scanAMC(s database.Scanner) (*amc.AMC, error) {
	var (
		a                 amc.AMC
		start, end        sql.NullTime
		price, units, gst decimal.NullDecimal
		derivedStatus     string
		override          sql.NullString
	)

	if err := s.Scan(
		&a.ID, &a.ReferenceID, &a.CustomerID, &a.LiftDescription, &start, &end,
		&price, &units, &gst, &a.GenerateContract,
		&a.Total, &a.TotalPaid, &a.AmountDue, &a.Credit, &derivedStatus, &override, &a.OverrideReason,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.StartDate = database.Date(start)
	a.EndDate = database.Date(end)
	a.Price = database.DecimalPtr(price)
	a.UnitCount = database.DecimalPtr(units)
	a.GSTPercent = database.DecimalPtr(gst)
	a.DerivedStatus = derive.ContractStatus(derivedStatus)

	if override.Valid {
		a.StatusOverride = new(derive.ContractStatus(override.String))
	}

	return &a, nil
}

func nullStatus(s *derive.ContractStatus) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: string(*s), Valid: true}
}

func writeError(err error, a *amc.AMC, op string) error {
	switch {
	case database.IsUniqueViolation(err, "amcs_reference_id_key"):
		return &apperr.DuplicateReferenceError{Entity: "amc", Reference: a.ReferenceID}
	case database.IsForeignKeyViolation(err, "amcs_customer_id_fkey"):
		return apperr.NotFound("customer", a.CustomerID.String())
	}

	return fmt.Errorf("%s amc: %w", op, err)
}

func (s *Store) CreateAMC(ctx context.Context, a *amc.AMC) error {
	query := `
		INSERT INTO amcs (
			reference_id, customer_id, lift_description, start_date, end_date,
			price, unit_count, gst_percent, generate_contract,
			total, total_paid, amount_due, credit, derived_status, status_override, override_reason,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.ReferenceID, a.CustomerID, a.LiftDescription,
		database.NullDate(a.StartDate), database.NullDate(a.EndDate),
		database.NullDecimal(a.Price), database.NullDecimal(a.UnitCount), database.NullDecimal(a.GSTPercent),
		a.GenerateContract,
		a.Total, a.TotalPaid, a.AmountDue, a.Credit, string(a.DerivedStatus),
		nullStatus(a.StatusOverride), a.OverrideReason,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return writeError(err, a, "creating")
	}

	return nil
}

func (s *Store) GetAMC(ctx context.Context, id uuid.UUID) (*amc.AMC, error) {
	query := `SELECT ` + selectAMCColumns + ` FROM amcs WHERE id = $1`

	a, err := scanAMC(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("amc", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("getting amc: %w", err)
	}

	return a, nil
}

func (s *Store) GetAMCByReference(ctx context.Context, ref string) (*amc.AMC, error) {
	query := `SELECT ` + selectAMCColumns + ` FROM amcs WHERE reference_id = $1`

	a, err := scanAMC(s.db.QueryRowContext(ctx, query, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("amc", ref)
	}

	if err != nil {
		return nil, fmt.Errorf("getting amc by reference: %w", err)
	}

	return a, nil
}

func (s *Store) ListAMCs(ctx context.Context, filter amc.ListFilter) ([]*amc.AMC, error) {
	query := `SELECT ` + selectAMCColumns + ` FROM amcs WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND COALESCE(status_override, derived_status) = $%d", argIdx)

		args = append(args, string(*filter.Status))
	}

	query += " ORDER BY seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing amcs: %w", err)
	}
	defer rows.Close()

	var out []*amc.AMC

	for rows.Next() {
		a, err := scanAMC(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning amc: %w", err)
		}

		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating amcs: %w", err)
	}

	return out, nil
}

func (s *Store) MutateAMC(ctx context.Context, id uuid.UUID, fn func(q database.Querier, a *amc.AMC) error) (*amc.AMC, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `SELECT ` + selectAMCColumns + ` FROM amcs WHERE id = $1 FOR UPDATE`

	a, err := scanAMC(dbTx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("amc", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("locking amc: %w", err)
	}

	if err := fn(dbTx, a); err != nil {
		return nil, err
	}

	update := `
		UPDATE amcs
		SET customer_id = $1, lift_description = $2, start_date = $3, end_date = $4,
			price = $5, unit_count = $6, gst_percent = $7, generate_contract = $8,
			total = $9, total_paid = $10, amount_due = $11, credit = $12, derived_status = $13,
			status_override = $14, override_reason = $15, updated_at = NOW()
		WHERE id = $16
		RETURNING updated_at
	`

	err = dbTx.QueryRowContext(ctx, update,
		a.CustomerID, a.LiftDescription, database.NullDate(a.StartDate), database.NullDate(a.EndDate),
		database.NullDecimal(a.Price), database.NullDecimal(a.UnitCount), database.NullDecimal(a.GSTPercent),
		a.GenerateContract,
		a.Total, a.TotalPaid, a.AmountDue, a.Credit, string(a.DerivedStatus),
		nullStatus(a.StatusOverride), a.OverrideReason, a.ID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		return nil, writeError(err, a, "updating")
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return a, nil
}

func (s *Store) ListStatusInputs(ctx context.Context) ([]amc.StatusInput, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, start_date, end_date, derived_status FROM amcs ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing amc status inputs: %w", err)
	}
	defer rows.Close()

	var out []amc.StatusInput

	for rows.Next() {
		var (
			in         amc.StatusInput
			start, end sql.NullTime
			status     string
		)

		if err := rows.Scan(&in.ID, &start, &end, &status); err != nil {
			return nil, fmt.Errorf("scanning amc status input: %w", err)
		}

		in.StartDate = database.Date(start)
		in.EndDate = database.Date(end)
		in.DerivedStatus = derive.ContractStatus(status)
		out = append(out, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating amc status inputs: %w", err)
	}

	return out, nil
}

func (s *Store) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to derive.ContractStatus) (bool, error) {
	query := `
		UPDATE amcs
		SET derived_status = $1, updated_at = NOW()
		WHERE id = $2 AND derived_status = $3
	`

	res, err := s.db.ExecContext(ctx, query, string(to), id, string(from))
	if err != nil {
		return false, fmt.Errorf("updating amc status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return n == 1, nil
}
