package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

// tables maps each sequenced entity to the table holding its records.
var tables = map[reference.Entity]string{
	reference.EntityCustomer:    "customers",
	reference.EntityItem:        "items",
	reference.EntityAMC:         "amcs",
	reference.EntityInvoice:     "invoices",
	reference.EntityQuotation:   "quotations",
	reference.EntityRequisition: "requisitions",
	reference.EntityPayment:     "payments",
	reference.EntityComplaint:   "complaints",
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func allocationLockKey(entity reference.Entity) int64 {
	h := fnv.New64a()
	h.Write([]byte("reference:"))
	h.Write([]byte(entity))

	return int64(h.Sum64())
}

type allocationTx struct {
	tx     *sql.Tx
	entity reference.Entity
}

// BeginAllocation takes a transaction-scoped advisory lock for the entity, so
// concurrent allocations for the same entity queue behind each other.
func (s *Store) BeginAllocation(ctx context.Context, entity reference.Entity) (reference.AllocationTx, error) {
	if _, ok := tables[entity]; !ok {
		return nil, fmt.Errorf("%w: %q", reference.ErrUnknownEntity, entity)
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning allocation tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", allocationLockKey(entity)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring allocation lock: %w", err)
	}

	return &allocationTx{tx: dbTx, entity: entity}, nil
}

func (atx *allocationTx) Commit() error   { return atx.tx.Commit() }
func (atx *allocationTx) Rollback() error { return atx.tx.Rollback() }

func (atx *allocationTx) Counter(ctx context.Context) (int64, bool, error) {
	query := `SELECT last_value FROM reference_counters WHERE entity = $1 FOR UPDATE`

	var value int64

	err := atx.tx.QueryRowContext(ctx, query, string(atx.entity)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("reading counter: %w", err)
	}

	return value, true, nil
}

func (atx *allocationTx) LastReference(ctx context.Context) (string, bool, error) {
	return lastReference(ctx, atx.tx, atx.entity)
}

func (atx *allocationTx) SetCounter(ctx context.Context, value int64) error {
	query := `
		INSERT INTO reference_counters (entity, last_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (entity) DO UPDATE SET last_value = EXCLUDED.last_value, updated_at = NOW()
	`

	if _, err := atx.tx.ExecContext(ctx, query, string(atx.entity), value); err != nil {
		return fmt.Errorf("storing counter: %w", err)
	}

	return nil
}

// LastReference returns the reference of the most recently inserted record of entity.
func (s *Store) LastReference(ctx context.Context, entity reference.Entity) (string, bool, error) {
	return lastReference(ctx, s.db, entity)
}

// Counters lists the current value of every counter that has been initialised.
func (s *Store) Counters(ctx context.Context) (map[reference.Entity]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT entity, last_value FROM reference_counters`)
	if err != nil {
		return nil, fmt.Errorf("listing counters: %w", err)
	}
	defer rows.Close()

	out := make(map[reference.Entity]int64)

	for rows.Next() {
		var (
			entity string
			value  int64
		)

		if err := rows.Scan(&entity, &value); err != nil {
			return nil, fmt.Errorf("scanning counter: %w", err)
		}

		out[reference.Entity(entity)] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counters: %w", err)
	}

	return out, nil
}

// lastReference orders by the identity column, i.e. insertion order, never by
// the reference text itself.
func lastReference(ctx context.Context, q database.Querier, entity reference.Entity) (string, bool, error) {
	table, ok := tables[entity]
	if !ok {
		return "", false, fmt.Errorf("%w: %q", reference.ErrUnknownEntity, entity)
	}

	query := fmt.Sprintf(`SELECT reference_id FROM %s ORDER BY seq DESC LIMIT 1`, table)

	var ref string

	err := q.QueryRowContext(ctx, query).Scan(&ref)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("finding last %s reference: %w", entity, err)
	}

	return ref, true, nil
}
