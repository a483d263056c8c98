package derive

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractActive  ContractStatus = "active"
	ContractExpired ContractStatus = "expired"
	ContractOnHold  ContractStatus = "on_hold"
)

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractActive, ContractExpired, ContractOnHold:
		return true
	}

	return false
}

// ContractStatusOn derives a contract's status for the calendar date today.
// Both boundary days count as active. A zero start or end date is open-ended.
func ContractStatusOn(today, start, end time.Time) ContractStatus {
	if !end.IsZero() && today.After(end) {
		return ContractExpired
	}

	if !start.IsZero() && start.After(today) {
		return ContractOnHold
	}

	return ContractActive
}

type PaymentStatus string

const (
	PaymentOpen          PaymentStatus = "open"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentOverdue       PaymentStatus = "overdue"
)

// PaymentStatusOn derives an invoice's status. Settled wins over overdue, and overdue
// wins over partially paid. A zero total is never considered paid.
func PaymentStatusOn(today, dueDate time.Time, total, paid decimal.Decimal) PaymentStatus {
	if total.IsPositive() && paid.GreaterThanOrEqual(total) {
		return PaymentPaid
	}

	if !dueDate.IsZero() && today.After(dueDate) {
		return PaymentOverdue
	}

	if paid.IsPositive() {
		return PaymentPartiallyPaid
	}

	return PaymentOpen
}

type QuoteStatus string

const (
	QuoteOpen     QuoteStatus = "open"
	QuoteExpired  QuoteStatus = "expired"
	QuoteAccepted QuoteStatus = "accepted"
)

// QuoteStatusOn treats acceptance as terminal; otherwise a quote lapses after validUntil.
func QuoteStatusOn(today, validUntil time.Time, accepted bool) QuoteStatus {
	if accepted {
		return QuoteAccepted
	}

	if !validUntil.IsZero() && today.After(validUntil) {
		return QuoteExpired
	}

	return QuoteOpen
}
