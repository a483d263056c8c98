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
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
	linestore "github.com/MrJamesThe3rd/liftdesk/internal/lineitem/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectInvoiceColumns = `
	id, reference_id, customer_id, amc_id, issue_date, due_date,
	subtotal, tax_total, total, total_paid, amount_due, credit, status,
	created_at, updated_at
`

func scanInvoice(s database.Scanner) (*invoice.Invoice, error) {
	var (
		inv                invoice.Invoice
		amcID              uuid.NullUUID
		issueDate, dueDate sql.NullTime
		status             string
	)

	if err := s.Scan(
		&inv.ID, &inv.ReferenceID, &inv.CustomerID, &amcID, &issueDate, &dueDate,
		&inv.Subtotal, &inv.TaxTotal, &inv.Total, &inv.TotalPaid, &inv.AmountDue, &inv.Credit, &status,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.AMCID = database.UUIDPtr(amcID)
	inv.IssueDate = database.Date(issueDate)
	inv.DueDate = database.Date(dueDate)
	inv.Status = derive.PaymentStatus(status)

	return &inv, nil
}

func writeError(err error, inv *invoice.Invoice, op string) error {
	switch {
	case database.IsUniqueViolation(err, "invoices_reference_id_key"):
		return &apperr.DuplicateReferenceError{Entity: "invoice", Reference: inv.ReferenceID}
	case database.IsForeignKeyViolation(err, "invoices_customer_id_fkey"):
		return apperr.NotFound("customer", inv.CustomerID.String())
	case database.IsForeignKeyViolation(err, "invoices_amc_id_fkey"):
		return apperr.NotFound("amc", inv.AMCID.String())
	}

	return fmt.Errorf("%s invoice: %w", op, err)
}

// CreateInvoice inserts the header and its lines in one transaction.
func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO invoices (
			reference_id, customer_id, amc_id, issue_date, due_date,
			subtotal, tax_total, total, total_paid, amount_due, credit, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		inv.ReferenceID, inv.CustomerID, database.NullUUID(inv.AMCID), inv.IssueDate, database.NullDate(inv.DueDate),
		inv.Subtotal, inv.TaxTotal, inv.Total, inv.TotalPaid, inv.AmountDue, inv.Credit, string(inv.Status),
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return writeError(err, inv, "creating")
	}

	if err := linestore.Replace(ctx, dbTx, linestore.InvoiceLines, inv.ID, inv.Lines); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) get(ctx context.Context, where string, key any, notFound string) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE ` + where

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("invoice", notFound)
	}

	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if inv.Lines, err = linestore.Load(ctx, s.db, linestore.InvoiceLines, inv.ID); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	return s.get(ctx, "id = $1", id, id.String())
}

func (s *Store) GetInvoiceByReference(ctx context.Context, ref string) (*invoice.Invoice, error) {
	return s.get(ctx, "reference_id = $1", ref, ref)
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE TRUE`

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
		argIdx++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND issue_date >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND issue_date <= $%d", argIdx)

		args = append(args, *filter.To)
	}

	query += " ORDER BY issue_date ASC, seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var out []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		out = append(out, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return out, nil
}

func (s *Store) MutateInvoice(ctx context.Context, id uuid.UUID, fn func(q database.Querier, inv *invoice.Invoice) error) (*invoice.Invoice, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`

	inv, err := scanInvoice(dbTx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("invoice", id.String())
	}

	if err != nil {
		return nil, fmt.Errorf("locking invoice: %w", err)
	}

	if inv.Lines, err = linestore.Load(ctx, dbTx, linestore.InvoiceLines, inv.ID); err != nil {
		return nil, err
	}

	if err := fn(dbTx, inv); err != nil {
		return nil, err
	}

	update := `
		UPDATE invoices
		SET customer_id = $1, amc_id = $2, issue_date = $3, due_date = $4,
			subtotal = $5, tax_total = $6, total = $7, total_paid = $8, amount_due = $9, credit = $10,
			status = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	err = dbTx.QueryRowContext(ctx, update,
		inv.CustomerID, database.NullUUID(inv.AMCID), inv.IssueDate, database.NullDate(inv.DueDate),
		inv.Subtotal, inv.TaxTotal, inv.Total, inv.TotalPaid, inv.AmountDue, inv.Credit,
		string(inv.Status), inv.ID,
	).Scan(&inv.UpdatedAt)
	if err != nil {
		return nil, writeError(err, inv, "updating")
	}

	if err := linestore.Replace(ctx, dbTx, linestore.InvoiceLines, inv.ID, inv.Lines); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return inv, nil
}

func (s *Store) ListStatusInputs(ctx context.Context) ([]invoice.StatusInput, error) {
	query := `SELECT id, due_date, total, total_paid, status FROM invoices ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoice status inputs: %w", err)
	}
	defer rows.Close()

	var out []invoice.StatusInput

	for rows.Next() {
		var (
			in      invoice.StatusInput
			dueDate sql.NullTime
			status  string
		)

		if err := rows.Scan(&in.ID, &dueDate, &in.Total, &in.TotalPaid, &status); err != nil {
			return nil, fmt.Errorf("scanning invoice status input: %w", err)
		}

		in.DueDate = database.Date(dueDate)
		in.Status = derive.PaymentStatus(status)
		out = append(out, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice status inputs: %w", err)
	}

	return out, nil
}

func (s *Store) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to derive.PaymentStatus) (bool, error) {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, string(to), id, string(from))
	if err != nil {
		return false, fmt.Errorf("updating invoice status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return n == 1, nil
}
