// Package alias learns how spreadsheets name catalogue items, so an import row
// saying "8mm wire rope (Usha)" can still land on item ROPE-8MM.
package alias

import (
	"time"

	"github.com/google/uuid"
)

type Alias struct {
	ID        uuid.UUID
	Pattern   string
	ItemCode  string
	CreatedAt time.Time
}
