package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const dbTimeout = 5 * time.Second

// FormatMoney renders an amount with two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatOptionalMoney renders "-" for a missing amount.
func FormatOptionalMoney(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}

	return FormatMoney(*d)
}

// FormatDate formats a date as DD-MM-YYYY, or "-" when unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("02-01-2006")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
