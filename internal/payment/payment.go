package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TargetKind names the ledger a payment settles.
type TargetKind string

const (
	TargetInvoice TargetKind = "invoice"
	TargetAMC     TargetKind = "amc"
)

func (k TargetKind) IsValid() bool {
	return k == TargetInvoice || k == TargetAMC
}

type Mode string

const (
	ModeCash         Mode = "cash"
	ModeCheque       Mode = "cheque"
	ModeBankTransfer Mode = "bank_transfer"
	ModeUPI          Mode = "upi"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeCash, ModeCheque, ModeBankTransfer, ModeUPI:
		return true
	}

	return false
}

type Payment struct {
	ID          uuid.UUID
	ReferenceID string
	CustomerID  uuid.UUID
	TargetKind  TargetKind
	TargetID    uuid.UUID
	Amount      decimal.Decimal
	ReceivedOn  time.Time
	Mode        Mode
	Note        string
	CreatedAt   time.Time
}
