package item

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a catalogue entry: a spare part, consumable or service charge.
// Rate and TaxPercent are optional defaults for invoice and quotation lines.
type Item struct {
	ID          uuid.UUID
	ReferenceID string
	Code        string
	Name        string
	Unit        string
	Rate        *decimal.Decimal
	TaxPercent  *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
