package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
)

type Invoice struct {
	ID          uuid.UUID
	ReferenceID string
	CustomerID  uuid.UUID
	AMCID       *uuid.UUID
	IssueDate   time.Time
	DueDate     time.Time
	Lines       []lineitem.Line

	Subtotal  decimal.Decimal
	TaxTotal  decimal.Decimal
	Total     decimal.Decimal
	TotalPaid decimal.Decimal
	AmountDue decimal.Decimal
	Credit    decimal.Decimal
	Status    derive.PaymentStatus

	// Defaulted lists line inputs counted as zero by the last recompute. Not persisted.
	Defaulted []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recompute refreshes line amounts, document totals, amount due and status.
func (inv *Invoice) Recompute(calc *derive.Calculator, today time.Time) {
	totals := lineitem.Recompute(calc, inv.Lines)
	due := calc.Due(totals.Total, inv.TotalPaid)

	inv.Subtotal = totals.Subtotal
	inv.TaxTotal = totals.TaxTotal
	inv.Total = totals.Total
	inv.AmountDue = due.AmountDue
	inv.Credit = due.Credit
	inv.Status = derive.PaymentStatusOn(today, inv.DueDate, inv.Total, inv.TotalPaid)
	inv.Defaulted = totals.Defaulted
}

// StatusInput is what the sweep needs to re-derive an invoice's status.
type StatusInput struct {
	ID        uuid.UUID
	DueDate   time.Time
	Total     decimal.Decimal
	TotalPaid decimal.Decimal
	Status    derive.PaymentStatus
}
