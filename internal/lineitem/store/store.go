// Package store persists line items for any parent document table.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
)

// Table names a line table and the column pointing at its parent document.
type Table struct {
	Name   string
	Parent string
}

var (
	InvoiceLines   = Table{Name: "invoice_lines", Parent: "invoice_id"}
	QuotationLines = Table{Name: "quotation_lines", Parent: "quotation_id"}
)

// Replace deletes the parent's lines and inserts lines in order. Run it inside the
// transaction that writes the parent.
func Replace(ctx context.Context, q database.Querier, t Table, parentID uuid.UUID, lines []lineitem.Line) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM `+t.Name+` WHERE `+t.Parent+` = $1`, parentID); err != nil {
		return fmt.Errorf("deleting %s: %w", t.Name, err)
	}

	query := `
		INSERT INTO ` + t.Name + ` (` + t.Parent + `, position, item_id, description, rate, quantity, tax_percent, net, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for i, l := range lines {
		_, err := q.ExecContext(ctx, query,
			parentID, i+1, database.NullUUID(l.ItemID), l.Description,
			database.NullDecimal(l.Rate), database.NullDecimal(l.Quantity), database.NullDecimal(l.TaxPercent),
			l.Net, l.Tax, l.Total,
		)
		if database.IsForeignKeyViolation(err, t.Name+"_item_id_fkey") {
			return apperr.NotFound("item", l.ItemID.String())
		}

		if err != nil {
			return fmt.Errorf("inserting %s: %w", t.Name, err)
		}
	}

	return nil
}

func Load(ctx context.Context, q database.Querier, t Table, parentID uuid.UUID) ([]lineitem.Line, error) {
	query := `
		SELECT item_id, description, rate, quantity, tax_percent, net, tax, total
		FROM ` + t.Name + `
		WHERE ` + t.Parent + ` = $1
		ORDER BY position ASC
	`

	rows, err := q.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.Name, err)
	}
	defer rows.Close()

	var out []lineitem.Line

	for rows.Next() {
		var (
			l                  lineitem.Line
			itemID             uuid.NullUUID
			rate, qty, taxRate decimal.NullDecimal
		)

		if err := rows.Scan(&itemID, &l.Description, &rate, &qty, &taxRate, &l.Net, &l.Tax, &l.Total); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", t.Name, err)
		}

		l.ItemID = database.UUIDPtr(itemID)
		l.Rate = database.DecimalPtr(rate)
		l.Quantity = database.DecimalPtr(qty)
		l.TaxPercent = database.DecimalPtr(taxRate)
		out = append(out, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", t.Name, err)
	}

	return out, nil
}
