package requisition

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Requisition asks the store for material to be sent to a customer site.
type Requisition struct {
	ID          uuid.UUID
	ReferenceID string
	CustomerID  uuid.UUID
	AMCID       *uuid.UUID
	RequestedOn time.Time
	Note        string
	Lines       []Line
	CreatedAt   time.Time
}

type Line struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
}
