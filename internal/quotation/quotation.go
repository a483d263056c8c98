package quotation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
)

type Quotation struct {
	ID          uuid.UUID
	ReferenceID string
	CustomerID  uuid.UUID
	QuoteDate   time.Time
	ValidUntil  time.Time
	Lines       []lineitem.Line

	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	Total      decimal.Decimal
	AcceptedAt *time.Time
	Status     derive.QuoteStatus

	Defaulted []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Quotation) Recompute(calc *derive.Calculator, today time.Time) {
	totals := lineitem.Recompute(calc, q.Lines)

	q.Subtotal = totals.Subtotal
	q.TaxTotal = totals.TaxTotal
	q.Total = totals.Total
	q.Status = derive.QuoteStatusOn(today, q.ValidUntil, q.AcceptedAt != nil)
	q.Defaulted = totals.Defaulted
}

type StatusInput struct {
	ID         uuid.UUID
	ValidUntil time.Time
	Accepted   bool
	Status     derive.QuoteStatus
}
