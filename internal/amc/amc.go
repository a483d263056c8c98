package amc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
)

// AMC is an annual maintenance contract for one or more lifts at a customer site.
type AMC struct {
	ID               uuid.UUID
	ReferenceID      string
	CustomerID       uuid.UUID
	LiftDescription  string
	StartDate        time.Time
	EndDate          time.Time
	Price            *decimal.Decimal
	UnitCount        *decimal.Decimal
	GSTPercent       *decimal.Decimal
	GenerateContract bool

	// Derived on every save.
	Total         decimal.Decimal
	TotalPaid     decimal.Decimal
	AmountDue     decimal.Decimal
	Credit        decimal.Decimal
	DerivedStatus derive.ContractStatus

	StatusOverride *derive.ContractStatus
	OverrideReason string

	// Defaulted lists inputs that were missing and counted as zero by the last recompute.
	// It is not persisted.
	Defaulted []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status is the status shown to users: a manual override wins over the derived value.
func (a *AMC) Status() derive.ContractStatus {
	if a.StatusOverride != nil {
		return *a.StatusOverride
	}

	return a.DerivedStatus
}

// Recompute refreshes every derived field from the current inputs.
func (a *AMC) Recompute(calc *derive.Calculator, today time.Time) {
	contract := calc.Contract(derive.ContractInput{
		Price:            a.Price,
		Units:            a.UnitCount,
		GSTPercent:       a.GSTPercent,
		GenerateContract: a.GenerateContract,
	})

	due := calc.Due(contract.Total, a.TotalPaid)

	a.Total = contract.Total
	a.AmountDue = due.AmountDue
	a.Credit = due.Credit
	a.DerivedStatus = derive.ContractStatusOn(today, a.StartDate, a.EndDate)
	a.Defaulted = contract.Defaulted
}

// StatusInput is the slice of an AMC the status sweep needs.
type StatusInput struct {
	ID            uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	DerivedStatus derive.ContractStatus
}
