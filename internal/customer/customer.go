package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a lift owner or site the company services.
type Customer struct {
	ID          uuid.UUID
	ReferenceID string
	Name        string
	Phone       string // E.164
	Email       string
	Address     string
	GSTIN       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
